package shared

import (
	"time"

	"museum-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// ExhibitSnapshot is the read-side projection of a catalog record,
// including the reservation map keyed by calendar day.
type ExhibitSnapshot struct {
	ID           uuid.UUID
	Name         string
	Gallery      string
	About        string
	UnitFeeCents int64
	Reserved     schedule.ReservedWindows
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
