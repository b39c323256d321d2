//go:build unit || e2e

package builder

import (
	"time"

	"museum-booking/internal/domain/exhibit"
	"museum-booking/internal/domain/schedule"
	reqdto "museum-booking/internal/handler/dto/request"
	"museum-booking/internal/infra/catalogdb"
	"museum-booking/internal/usecase/queries"
	"museum-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExhibitBuilder struct {
	ID           uuid.UUID
	Name         string
	Gallery      string
	About        string
	UnitFeeCents int64
	Reserved     schedule.ReservedWindows
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewExhibitBuilder() *ExhibitBuilder {
	now := time.Now()
	return &ExhibitBuilder{
		ID:           uuid.New(),
		Name:         "Impressionist Masters",
		Gallery:      "East Wing",
		About:        "A curated walk through late 19th century painting.",
		UnitFeeCents: 5000,
		Reserved:     schedule.NewReservedWindows(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ExhibitBuilder) With(mutate func(*ExhibitBuilder)) *ExhibitBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ExhibitBuilder) BuildDomain() (*exhibit.Exhibit, error) {
	return exhibit.NewExhibit(b.ID, b.Name, b.Gallery, b.About, exhibit.NewMoney(b.UnitFeeCents), b.Reserved, b.CreatedAt, b.UpdatedAt)
}

func (b *ExhibitBuilder) BuildRow() catalogdb.Exhibits {
	return catalogdb.Exhibits{
		ID:           b.ID,
		Name:         b.Name,
		Gallery:      b.Gallery,
		About:        b.About,
		UnitFeeCents: b.UnitFeeCents,
		CreatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *ExhibitBuilder) BuildBookedSlotRow(slotDate time.Time, slotTime string) catalogdb.ExhibitBookedSlots {
	return catalogdb.ExhibitBookedSlots{
		ExhibitID: b.ID,
		SlotDate:  pgtype.Date{Time: slotDate, Valid: true},
		SlotTime:  pgtype.Text{String: slotTime, Valid: true},
	}
}

func (b *ExhibitBuilder) BuildSnapshot() *shared.ExhibitSnapshot {
	return &shared.ExhibitSnapshot{
		ID:           b.ID,
		Name:         b.Name,
		Gallery:      b.Gallery,
		About:        b.About,
		UnitFeeCents: b.UnitFeeCents,
		Reserved:     b.Reserved,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *ExhibitBuilder) BuildView() *queries.ExhibitView {
	return &queries.ExhibitView{
		ID:           b.ID,
		Name:         b.Name,
		Gallery:      b.Gallery,
		About:        b.About,
		UnitFeeCents: b.UnitFeeCents,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *ExhibitBuilder) BuildSubmitRequestDTO(dayIndex int, timeLabel string, quantity int) reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		ExhibitID: b.ID,
		DayIndex:  dayIndex,
		TimeLabel: timeLabel,
		Quantity:  quantity,
	}
}

// Fluent builder methods
func (b *ExhibitBuilder) WithID(id uuid.UUID) *ExhibitBuilder {
	b.ID = id
	return b
}

func (b *ExhibitBuilder) WithName(name string) *ExhibitBuilder {
	b.Name = name
	return b
}

func (b *ExhibitBuilder) WithGallery(gallery string) *ExhibitBuilder {
	b.Gallery = gallery
	return b
}

func (b *ExhibitBuilder) WithUnitFeeCents(cents int64) *ExhibitBuilder {
	b.UnitFeeCents = cents
	return b
}

func (b *ExhibitBuilder) WithReservedWindow(key schedule.DateKey, label string) *ExhibitBuilder {
	if b.Reserved == nil {
		b.Reserved = schedule.NewReservedWindows()
	}
	b.Reserved.Add(key, label)
	return b
}

func (b *ExhibitBuilder) WithCreatedAt(createdAt time.Time) *ExhibitBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *ExhibitBuilder) WithUpdatedAt(updatedAt time.Time) *ExhibitBuilder {
	b.UpdatedAt = updatedAt
	return b
}
