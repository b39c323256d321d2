package queries

import (
	"context"
	"time"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/exhibit"
	"museum-booking/internal/domain/schedule"
	"museum-booking/internal/infra"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"
	"museum-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrExhibitNotFound = errs.New("exhibit not found")

// Read models (DTO for read side)
type ExhibitView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Gallery      string    `json:"gallery"`
	About        string    `json:"about"`
	UnitFeeCents int64     `json:"unit_fee_cents"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CandidateWindowView struct {
	Instant time.Time `json:"instant"`
	Label   string    `json:"label"`
}

type DayScheduleView struct {
	DayIndex int                   `json:"day_index"`
	Date     string                `json:"date"`
	Windows  []CandidateWindowView `json:"windows"`
}

type AvailabilityView struct {
	Exhibit ExhibitView       `json:"exhibit"`
	Days    []DayScheduleView `json:"days"`
}

type FeeQuoteView struct {
	ExhibitID     uuid.UUID `json:"exhibit_id"`
	UnitFeeCents  int64     `json:"unit_fee_cents"`
	Quantity      int       `json:"quantity"`
	TotalFeeCents int64     `json:"total_fee_cents"`
}

type ExhibitReadStore interface {
	FindAll(ctx context.Context) ([]*shared.ExhibitSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*shared.ExhibitSnapshot, error)
}

type ExhibitQueries interface {
	ListExhibits(ctx context.Context) ([]*ExhibitView, error)
	GetExhibit(ctx context.Context, id uuid.UUID) (*ExhibitView, error)
	GetExhibitSlots(ctx context.Context, id uuid.UUID) (*AvailabilityView, error)
	QuoteFee(ctx context.Context, id uuid.UUID, rawQuantity string) (*FeeQuoteView, error)
}

type exhibitQueriesImpl struct {
	store     ExhibitReadStore
	generator *schedule.Generator
	feeCalc   booking.FeeCalculator
	clock     clock.Clock
}

func NewExhibitQueries(
	store ExhibitReadStore,
	generator *schedule.Generator,
	feeCalc booking.FeeCalculator,
	clk clock.Clock,
) ExhibitQueries {
	return &exhibitQueriesImpl{
		store:     store,
		generator: generator,
		feeCalc:   feeCalc,
		clock:     clk,
	}
}

func (q *exhibitQueriesImpl) ListExhibits(ctx context.Context) ([]*ExhibitView, error) {
	snaps, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list exhibits")
	}

	views := make([]*ExhibitView, len(snaps))
	for i, snap := range snaps {
		views[i] = toExhibitView(snap)
	}
	return views, nil
}

func (q *exhibitQueriesImpl) GetExhibit(ctx context.Context, id uuid.UUID) (*ExhibitView, error) {
	snap, err := q.findSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	return toExhibitView(snap), nil
}

func (q *exhibitQueriesImpl) GetExhibitSlots(ctx context.Context, id uuid.UUID) (*AvailabilityView, error) {
	snap, err := q.findSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	days := q.generator.Generate(snap.Reserved, q.clock.Now())

	dayViews := make([]DayScheduleView, len(days))
	for i, day := range days {
		windows := make([]CandidateWindowView, len(day.Windows))
		for j, w := range day.Windows {
			windows[j] = CandidateWindowView{Instant: w.Instant, Label: w.Label}
		}
		dayViews[i] = DayScheduleView{
			DayIndex: i,
			Date:     day.Date.String(),
			Windows:  windows,
		}
	}

	return &AvailabilityView{
		Exhibit: *toExhibitView(snap),
		Days:    dayViews,
	}, nil
}

func (q *exhibitQueriesImpl) QuoteFee(ctx context.Context, id uuid.UUID, rawQuantity string) (*FeeQuoteView, error) {
	snap, err := q.findSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	quantity := booking.ParseQuantity(rawQuantity)
	total := q.feeCalc.Recompute(exhibit.NewMoney(snap.UnitFeeCents), quantity)

	return &FeeQuoteView{
		ExhibitID:     snap.ID,
		UnitFeeCents:  snap.UnitFeeCents,
		Quantity:      quantity.Value(),
		TotalFeeCents: total.Cents(),
	}, nil
}

func (q *exhibitQueriesImpl) findSnapshot(ctx context.Context, id uuid.UUID) (*shared.ExhibitSnapshot, error) {
	snap, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrExhibitNotFound)
		}
		return nil, errs.Wrap(err, "failed to load exhibit")
	}
	return snap, nil
}

func toExhibitView(snap *shared.ExhibitSnapshot) *ExhibitView {
	return &ExhibitView{
		ID:           snap.ID,
		Name:         snap.Name,
		Gallery:      snap.Gallery,
		About:        snap.About,
		UnitFeeCents: snap.UnitFeeCents,
		CreatedAt:    snap.CreatedAt,
		UpdatedAt:    snap.UpdatedAt,
	}
}
