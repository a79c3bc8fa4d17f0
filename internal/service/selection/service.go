package selection

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kikiarya/hsc-planner/internal/domain"
	"github.com/kikiarya/hsc-planner/pkg/ctxutil"
)

type selectionRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Selection, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	ExistsByKey(ctx context.Context, userID uuid.UUID, code, name string) (bool, error)
	LockUser(ctx context.Context, userID uuid.UUID) error
	Create(ctx context.Context, sel domain.Selection) (*domain.Selection, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type subjectRepo interface {
	List(ctx context.Context, category *domain.SubjectCategory) ([]domain.Subject, error)
	GetByCode(ctx context.Context, code string) (*domain.Subject, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultMaxSelectionsPerUser applies when NewService is given a non-positive cap.
const DefaultMaxSelectionsPerUser = 12

// Service manages a user's subject selections and exposes the subject catalog.
type Service struct {
	selections selectionRepo
	subjects   subjectRepo
	tx         txManager
	maxPerUser int
	log        *slog.Logger
}

// NewService creates a new selection service.
func NewService(
	log *slog.Logger,
	selections selectionRepo,
	subjects subjectRepo,
	tx txManager,
	maxPerUser int,
) *Service {
	if maxPerUser <= 0 {
		maxPerUser = DefaultMaxSelectionsPerUser
	}
	return &Service{
		selections: selections,
		subjects:   subjects,
		tx:         tx,
		maxPerUser: maxPerUser,
		log:        log.With("service", "selection"),
	}
}

// selector returns the caller's user ID if their role may own selections.
func selector(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !domain.Role(ctxutil.UserRoleFromCtx(ctx)).CanSelectSubjects() {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
