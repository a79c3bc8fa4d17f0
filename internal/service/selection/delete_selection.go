package selection

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteSelection removes one of the authenticated user's selections.
// Returns domain.ErrNotFound for missing or foreign selections.
func (s *Service) DeleteSelection(ctx context.Context, input DeleteSelectionInput) error {
	userID, err := selector(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.selections.Delete(ctx, userID, input.SelectionID); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}

	s.log.InfoContext(ctx, "selection deleted",
		slog.String("user_id", userID.String()),
		slog.String("selection_id", input.SelectionID.String()),
	)

	return nil
}
