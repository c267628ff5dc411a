package wizard

import "github.com/heartmarshall/fieldforms-backend/internal/domain"

// Submission is a completed wizard run as sent by a client: the answers plus
// the attachment descriptors of every file slot.
type Submission struct {
	Answers     Answers
	Attachments map[string][]domain.Attachment
}

// Files returns the filenames per slot, the form validation works on.
func (s Submission) Files() Files {
	files := make(Files, len(s.Attachments))
	for slot, atts := range s.Attachments {
		refs := make([]string, 0, len(atts))
		for _, a := range atts {
			refs = append(refs, a.Filename)
		}
		files[slot] = refs
	}
	return files
}

// Validate runs ValidateAll for the submission against d.
func (s Submission) Validate(d *Definition) error {
	return d.ValidateAll(s.Answers, s.Files())
}

// Text returns the normalized text answer for a field.
func (s Submission) Text(field string) string {
	return domain.NormalizeAnswer(s.Answers.String(field))
}
