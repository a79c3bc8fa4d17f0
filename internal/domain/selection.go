package domain

import (
	"time"

	"github.com/google/uuid"
)

// Selection records that a user has chosen a subject for their study plan.
// (UserID, SubjectCode, SubjectName) is unique.
type Selection struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	SubjectCode string
	SubjectName string
	Category    *SubjectCategory
	Reason      *string
	CreatedAt   time.Time
}
