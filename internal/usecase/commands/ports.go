package commands

import (
	"context"

	"museum-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExhibitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.ExhibitSnapshot, error)
}

// SubmissionRequest is the tuple handed to the remote booking endpoint.
// SlotDate keeps the legacy "day_month_year" wire format the endpoint
// indexes reservations by.
type SubmissionRequest struct {
	ResourceID    uuid.UUID
	SlotDate      string
	SlotTime      string
	Quantity      int
	TotalFeeCents int64
}

type SubmissionResult struct {
	Success bool
	Message string
}

// SubmissionGateway performs the booking remotely. One call per
// submission, fire-and-wait, no retry; conflict detection at booking
// time is the gateway's side of the contract.
type SubmissionGateway interface {
	Submit(ctx context.Context, req SubmissionRequest) (SubmissionResult, error)
}
