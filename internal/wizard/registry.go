package wizard

import (
	"fmt"

	"github.com/heartmarshall/fieldforms-backend/internal/domain"
)

// Registry holds the wizards served by the application.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry checks and registers the given definitions.
func NewRegistry(defs ...*Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if err := d.check(); err != nil {
			return nil, err
		}
		if _, dup := r.defs[d.Name]; dup {
			return nil, fmt.Errorf("wizard %s: registered twice", d.Name)
		}
		r.defs[d.Name] = d
		r.order = append(r.order, d.Name)
	}
	return r, nil
}

// DefaultRegistry registers the onboarding, work order, support and booking
// wizards.
func DefaultRegistry(isSlot SlotCheck) (*Registry, error) {
	return NewRegistry(
		OnboardingDefinition(),
		WorkOrderDefinition(),
		SupportDefinition(),
		BookingDefinition(isSlot),
	)
}

// Get returns a wizard by name. Unknown names wrap domain.ErrNotFound.
func (r *Registry) Get(name string) (*Definition, error) {
	d, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("wizard %q: %w: %w", name, ErrUnknownWizard, domain.ErrNotFound)
	}
	return d, nil
}

// Names lists registered wizards in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
