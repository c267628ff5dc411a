package wizard

// Outcome is the result of moving a session forward.
type Outcome int

const (
	// Invalid means the current step failed validation; the session stays put.
	Invalid Outcome = iota
	// Advanced means the session moved to the next step.
	Advanced
	// Submitted means the current step was the last one on the path and the
	// collected answers are ready to be sent.
	Submitted
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Submitted:
		return "submit"
	default:
		return "invalid"
	}
}

// Session is the transient state of one wizard run. It is not safe for
// concurrent use.
type Session struct {
	def     *Definition
	Current int
	Answers Answers
	Files   Files
	Errors  map[string]string
	history []int
}

// NewSession starts a session at the first step.
func NewSession(def *Definition) *Session {
	s := &Session{def: def}
	s.Reset()
	return s
}

// Definition returns the wizard the session runs.
func (s *Session) Definition() *Definition { return s.def }

// Set records an answer.
func (s *Session) Set(field string, value any) {
	s.Answers[field] = value
	delete(s.Errors, field)
}

// SetFiles replaces the files selected for a slot.
func (s *Session) SetFiles(slot string, refs ...string) {
	s.Files[slot] = refs
	delete(s.Errors, slot)
}

// Forward validates the current step and moves to the next one. On failure
// Errors is filled and Current is unchanged.
func (s *Session) Forward() (Outcome, error) {
	errs, err := s.def.ValidateStep(s.Current, s.Answers, s.Files)
	if err != nil {
		return Invalid, err
	}

	s.Errors = make(map[string]string, len(errs))
	if len(errs) > 0 {
		for _, fe := range errs {
			s.Errors[fe.Field] = fe.Message
		}
		return Invalid, nil
	}

	next, submit, err := s.def.Next(s.Current, s.Answers)
	if err != nil {
		return Invalid, err
	}
	if submit {
		return Submitted, nil
	}

	s.history = append(s.history, s.Current)
	s.Current = next
	return Advanced, nil
}

// Back returns to the previously visited step. It reports false on the
// first step.
func (s *Session) Back() bool {
	if len(s.history) == 0 {
		return false
	}
	s.Current = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.Errors = map[string]string{}
	return true
}

// Reset discards all answers and returns to the first step.
func (s *Session) Reset() {
	s.Current = 1
	s.Answers = Answers{}
	s.Files = Files{}
	s.Errors = map[string]string{}
	s.history = nil
}
