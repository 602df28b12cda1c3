// Package forms validates the site's one-shot contact and newsletter forms.
// Both are stateless: a submission produces a result with per-field flags
// and the caller handles the transient feedback display.
package forms

import "strings"

// ContactForm is a contact submission as entered.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactErrors marks each failed contact field independently.
type ContactErrors struct {
	Name    bool
	Email   bool
	Subject bool
	Message bool
}

// Any reports whether any field failed.
func (e ContactErrors) Any() bool {
	return e.Name || e.Email || e.Subject || e.Message
}

// ValidateContact checks every field and returns all failures at once.
// The email check is deliberately loose: non-empty and containing "@".
func ValidateContact(form ContactForm) ContactErrors {
	var errs ContactErrors

	if strings.TrimSpace(form.Name) == "" {
		errs.Name = true
	}
	if !validEmail(form.Email) {
		errs.Email = true
	}
	if strings.TrimSpace(form.Subject) == "" {
		errs.Subject = true
	}
	if strings.TrimSpace(form.Message) == "" {
		errs.Message = true
	}

	return errs
}

// ValidateNewsletter checks a newsletter signup email.
func ValidateNewsletter(email string) bool {
	return validEmail(email)
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.Contains(email, "@")
}
