package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeLogEntry records one status transition of a keyword. Entries are
// append-only.
type ChangeLogEntry struct {
	ID        uuid.UUID `json:"id"`
	KeywordID uuid.UUID `json:"keywordId"`
	OldStatus Status    `json:"oldStatus"`
	NewStatus Status    `json:"newStatus"`
	Timestamp time.Time `json:"timestamp"`
}
