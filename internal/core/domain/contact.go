package domain

import "strings"

// ContactMessage is a contact-form submission. It is mailed to the operator
// and never stored.
type ContactMessage struct {
	Name     string
	Email    string
	Question string
}

// Validate requires all three fields to be non-blank.
func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Question) == "" {
		return NewValidationError("name, email and question are required fields")
	}
	return nil
}
