package response

import (
	"time"

	"museum-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExhibitResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Gallery      string    `json:"gallery"`
	About        string    `json:"about"`
	UnitFeeCents int64     `json:"unitFeeCents"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type WindowResponse struct {
	Instant time.Time `json:"instant"`
	Label   string    `json:"label"`
}

type DayScheduleResponse struct {
	DayIndex int              `json:"dayIndex"`
	Date     string           `json:"date"`
	Windows  []WindowResponse `json:"windows"`
}

type AvailabilityResponse struct {
	Exhibit ExhibitResponse       `json:"exhibit"`
	Days    []DayScheduleResponse `json:"days"`
}

type FeeQuoteResponse struct {
	ExhibitID     uuid.UUID `json:"exhibitId"`
	UnitFeeCents  int64     `json:"unitFeeCents"`
	Quantity      int       `json:"quantity"`
	TotalFeeCents int64     `json:"totalFeeCents"`
}

func FromExhibitView(rm *queries.ExhibitView) *ExhibitResponse {
	return &ExhibitResponse{
		ID:           rm.ID,
		Name:         rm.Name,
		Gallery:      rm.Gallery,
		About:        rm.About,
		UnitFeeCents: rm.UnitFeeCents,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	days := make([]DayScheduleResponse, len(rm.Days))
	for i, day := range rm.Days {
		windows := make([]WindowResponse, len(day.Windows))
		for j, w := range day.Windows {
			windows[j] = WindowResponse{Instant: w.Instant, Label: w.Label}
		}
		days[i] = DayScheduleResponse{
			DayIndex: day.DayIndex,
			Date:     day.Date,
			Windows:  windows,
		}
	}
	return &AvailabilityResponse{
		Exhibit: *FromExhibitView(&rm.Exhibit),
		Days:    days,
	}
}

func FromFeeQuoteView(rm *queries.FeeQuoteView) *FeeQuoteResponse {
	return &FeeQuoteResponse{
		ExhibitID:     rm.ExhibitID,
		UnitFeeCents:  rm.UnitFeeCents,
		Quantity:      rm.Quantity,
		TotalFeeCents: rm.TotalFeeCents,
	}
}
