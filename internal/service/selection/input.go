package selection

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kikiarya/hsc-planner/internal/domain"
)

const (
	maxCodeLen   = 20
	maxNameLen   = 200
	maxReasonLen = 1000
)

// CreateSelectionInput holds the parameters for selecting a subject.
type CreateSelectionInput struct {
	SubjectCode string
	SubjectName string
	Category    *string
	Reason      *string
}

// Validate checks all fields and collects all errors.
func (i CreateSelectionInput) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.SubjectCode)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "subject_code", Message: "required"})
	}
	if utf8.RuneCountInString(code) > maxCodeLen {
		errs = append(errs, domain.FieldError{Field: "subject_code", Message: "max 20 characters"})
	}

	name := strings.TrimSpace(i.SubjectName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "subject_name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "subject_name", Message: "max 200 characters"})
	}

	if c := trimOrNil(i.Category); c != nil && !domain.SubjectCategory(*c).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if i.Reason != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Reason)) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteSelectionInput holds the parameters for removing a selection.
type DeleteSelectionInput struct {
	SelectionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteSelectionInput) Validate() error {
	if i.SelectionID == uuid.Nil {
		return domain.NewValidationError("selection_id", "required")
	}
	return nil
}

// ListSubjectsInput filters the catalog.
type ListSubjectsInput struct {
	Category *string
}

// Validate checks all fields and collects all errors.
func (i ListSubjectsInput) Validate() error {
	if c := trimOrNil(i.Category); c != nil && !domain.SubjectCategory(*c).IsValid() {
		return domain.NewValidationError("category", "unknown category")
	}
	return nil
}
