package wizard

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Submit is the edge target that ends a wizard with a submission.
const Submit = 0

var (
	ErrUnknownStep   = errors.New("unknown step")
	ErrUnknownWizard = errors.New("unknown wizard")
)

// Kind is the input type of a field.
type Kind string

const (
	KindText      Kind = "text"
	KindEmail     Kind = "email"
	KindURL       Kind = "url"
	KindEnum      Kind = "enum"
	KindMultiEnum Kind = "multi-enum"
	KindNumber    Kind = "number"
	KindDate      Kind = "date"
	KindTime      Kind = "time"
	KindFiles     Kind = "files"
	KindPassword  Kind = "password"
)

// Answers maps field names to the values collected so far. Values are what
// a JSON decoder produces: strings, numbers, bools or slices.
type Answers map[string]any

// String returns the answer as text; numbers and bools are formatted.
func (a Answers) String(name string) string {
	switch v := a[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// Strings returns a multi-valued answer. A single string is one value.
func (a Answers) Strings(name string) []string {
	switch v := a[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// Files maps file slots to the ordered references (usually filenames)
// selected for them.
type Files map[string][]string

// Condition is a predicate over collected answers.
type Condition func(Answers) bool

// Equals holds when the answer to field is exactly value.
func Equals(field, value string) Condition {
	return func(a Answers) bool { return a.String(field) == value }
}

// In holds when the answer to field is one of values.
func In(field string, values ...string) Condition {
	return func(a Answers) bool { return slices.Contains(values, a.String(field)) }
}

// Not negates c.
func Not(c Condition) Condition {
	return func(a Answers) bool { return !c(a) }
}

// And holds when every condition holds.
func And(cs ...Condition) Condition {
	return func(a Answers) bool {
		for _, c := range cs {
			if !c(a) {
				return false
			}
		}
		return true
	}
}

// Field is one input of a step. Name is the store column name.
type Field struct {
	Name    string
	Label   string
	Kind    Kind
	Options []string
	// Required fields must be non-blank; RequiredWhen makes the field
	// required only while the condition holds.
	Required     bool
	RequiredWhen Condition
	MinLength    int
	// Check runs after the built-in checks on non-blank values and returns
	// a message when the value is rejected.
	Check func(value string, answers Answers) string
	// Message replaces the default "required" message.
	Message string
}

// IsRequired reports whether the field must be answered given answers.
func (f Field) IsRequired(answers Answers) bool {
	return f.Required || (f.RequiredWhen != nil && f.RequiredWhen(answers))
}

// Step is one page of a wizard.
type Step struct {
	ID     int
	Title  string
	Fields []Field
}

// Edge overrides the default step+1 transition. The first edge from a step
// whose When holds (nil always holds) decides the next step.
type Edge struct {
	From int
	When Condition
	To   int
}

// Definition is a wizard: ordered steps numbered from 1 plus branching edges.
type Definition struct {
	Name  string
	Title string
	Steps []Step
	Edges []Edge
}

// Step returns the step with the given id.
func (d *Definition) Step(id int) (Step, bool) {
	if id < 1 || id > len(d.Steps) {
		return Step{}, false
	}
	return d.Steps[id-1], true
}

// Last returns the id of the final step.
func (d *Definition) Last() int { return len(d.Steps) }

// Field finds a field by name on any step.
func (d *Definition) Field(name string) (Field, bool) {
	for _, s := range d.Steps {
		for _, f := range s.Fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

// check verifies the definition is well formed: steps numbered 1..N, unique
// field names, enum options present and every edge moving forward.
func (d *Definition) check() error {
	if d.Name == "" {
		return fmt.Errorf("wizard: name is required")
	}
	if len(d.Steps) == 0 {
		return fmt.Errorf("wizard %s: at least one step is required", d.Name)
	}

	seen := make(map[string]bool)
	for i, s := range d.Steps {
		if s.ID != i+1 {
			return fmt.Errorf("wizard %s: step %d has id %d", d.Name, i+1, s.ID)
		}
		for _, f := range s.Fields {
			if f.Name == "" {
				return fmt.Errorf("wizard %s: step %d: field without name", d.Name, s.ID)
			}
			if seen[f.Name] {
				return fmt.Errorf("wizard %s: duplicate field %q", d.Name, f.Name)
			}
			seen[f.Name] = true
			if (f.Kind == KindEnum || f.Kind == KindMultiEnum) && len(f.Options) == 0 {
				return fmt.Errorf("wizard %s: field %q: enum without options", d.Name, f.Name)
			}
		}
	}

	for _, e := range d.Edges {
		if _, ok := d.Step(e.From); !ok {
			return fmt.Errorf("wizard %s: edge from unknown step %d", d.Name, e.From)
		}
		if e.To == Submit {
			continue
		}
		if _, ok := d.Step(e.To); !ok || e.To <= e.From {
			return fmt.Errorf("wizard %s: edge %d -> %d must move forward", d.Name, e.From, e.To)
		}
	}
	return nil
}
