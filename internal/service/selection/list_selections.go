package selection

import (
	"context"
	"fmt"

	"github.com/kikiarya/hsc-planner/internal/domain"
	"github.com/kikiarya/hsc-planner/pkg/ctxutil"
)

// ListSelections returns the authenticated user's selections in creation order.
func (s *Service) ListSelections(ctx context.Context) ([]domain.Selection, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	selections, err := s.selections.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return selections, nil
}
