package response

import (
	"museum-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	ExhibitID     uuid.UUID `json:"exhibitId"`
	SlotDate      string    `json:"slotDate"`
	SlotTime      string    `json:"slotTime"`
	Quantity      int       `json:"quantity"`
	TotalFeeCents int64     `json:"totalFeeCents"`
}

func FromSubmitBookingResult(rm *commands.SubmitBookingResult) *BookingResponse {
	return &BookingResponse{
		Success:       rm.Success,
		Message:       rm.Message,
		ExhibitID:     rm.ExhibitID,
		SlotDate:      rm.SlotDate,
		SlotTime:      rm.SlotTime,
		Quantity:      rm.Quantity,
		TotalFeeCents: rm.TotalFeeCents,
	}
}
