package wizard

import (
	"fmt"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// Next returns the step that follows stepID given the answers. submit is
// true when leaving stepID ends the wizard.
func (d *Definition) Next(stepID int, answers Answers) (next int, submit bool, err error) {
	if _, ok := d.Step(stepID); !ok {
		return 0, false, fmt.Errorf("wizard %s: step %d: %w: %w", d.Name, stepID, ErrUnknownStep, domain.ErrNotFound)
	}

	next = stepID + 1
	for _, e := range d.Edges {
		if e.From != stepID {
			continue
		}
		if e.When == nil || e.When(answers) {
			next = e.To
			break
		}
	}

	if next == Submit || next > d.Last() {
		return 0, true, nil
	}
	return next, false, nil
}

// Path returns the steps visited from the first step to submission for the
// given answers.
func (d *Definition) Path(answers Answers) []int {
	path := make([]int, 0, len(d.Steps))
	for id := 1; ; {
		path = append(path, id)
		next, submit, err := d.Next(id, answers)
		if err != nil || submit || len(path) > len(d.Steps) {
			return path
		}
		id = next
	}
}
