package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kikiarya/hsc-planner/internal/domain"
)

// CreateSelection adds a subject to the authenticated user's selection.
// A duplicate (code, name) pair returns domain.ErrAlreadyExists, also when
// the user is at the cap. Creates for one user are serialized by a
// transaction-scoped lock so the cap holds under concurrency. When no
// category is given and the code is in the catalog, the catalog's category
// is stored.
func (s *Service) CreateSelection(ctx context.Context, input CreateSelectionInput) (*domain.Selection, error) {
	userID, err := selector(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	sel := domain.Selection{
		UserID:      userID,
		SubjectCode: strings.TrimSpace(input.SubjectCode),
		SubjectName: strings.TrimSpace(input.SubjectName),
		Reason:      trimOrNil(input.Reason),
	}
	if c := trimOrNil(input.Category); c != nil {
		category := domain.SubjectCategory(*c)
		sel.Category = &category
	} else {
		subject, lookupErr := s.subjects.GetByCode(ctx, sel.SubjectCode)
		switch {
		case lookupErr == nil:
			sel.Category = &subject.Category
		case !errors.Is(lookupErr, domain.ErrNotFound):
			return nil, fmt.Errorf("lookup subject: %w", lookupErr)
		}
	}

	var created *domain.Selection
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if lockErr := s.selections.LockUser(txCtx, userID); lockErr != nil {
			return fmt.Errorf("lock selections: %w", lockErr)
		}

		count, countErr := s.selections.CountByUser(txCtx, userID)
		if countErr != nil {
			return fmt.Errorf("count selections: %w", countErr)
		}
		if count >= s.maxPerUser {
			// A pair the user already holds is a duplicate, not a new slot.
			exists, existsErr := s.selections.ExistsByKey(txCtx, userID, sel.SubjectCode, sel.SubjectName)
			if existsErr != nil {
				return fmt.Errorf("check selection: %w", existsErr)
			}
			if exists {
				return fmt.Errorf("selection %s/%s: %w", sel.SubjectCode, sel.SubjectName, domain.ErrAlreadyExists)
			}
			return domain.NewValidationError("selections", fmt.Sprintf("limit reached (max %d)", s.maxPerUser))
		}

		var createErr error
		created, createErr = s.selections.Create(txCtx, sel)
		if createErr != nil {
			return fmt.Errorf("create selection: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "selection created",
		slog.String("user_id", userID.String()),
		slog.String("selection_id", created.ID.String()),
		slog.String("subject_code", created.SubjectCode),
	)

	return created, nil
}
