package selection

import (
	"context"
	"fmt"

	"github.com/kikiarya/hsc-planner/internal/domain"
)

// ListSubjects returns the HSC catalog, optionally filtered by category.
func (s *Service) ListSubjects(ctx context.Context, input ListSubjectsInput) ([]domain.Subject, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var category *domain.SubjectCategory
	if c := trimOrNil(input.Category); c != nil {
		sc := domain.SubjectCategory(*c)
		category = &sc
	}

	subjects, err := s.subjects.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}
