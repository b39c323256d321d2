package request

import (
	"github.com/google/uuid"
)

// The upper bound of day_index depends on the configured horizon, so
// the usecase owns that check and binding only rejects negatives.
type SubmitBookingRequest struct {
	ExhibitID uuid.UUID `json:"exhibit_id" binding:"required"`
	DayIndex  int       `json:"day_index" binding:"min=0"`
	TimeLabel string    `json:"time_label" binding:"required"`
	Quantity  int       `json:"quantity"`
}
