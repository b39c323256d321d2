package readstore

import (
	"context"
	"log/slog"

	"museum-booking/internal/domain/exhibit"
	"museum-booking/internal/domain/schedule"
	"museum-booking/internal/infra"
	"museum-booking/internal/infra/catalogdb"
	"museum-booking/internal/pkg/pgconv"
	"museum-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ExhibitReadQueries interface {
	GetAllExhibits(ctx context.Context, db catalogdb.DBTX) ([]catalogdb.Exhibits, error)
	GetExhibitByID(ctx context.Context, db catalogdb.DBTX, id uuid.UUID) (catalogdb.Exhibits, error)
	GetBookedSlotsByExhibitID(ctx context.Context, db catalogdb.DBTX, exhibitID uuid.UUID) ([]catalogdb.ExhibitBookedSlots, error)
}

type ExhibitReadStore struct {
	queries ExhibitReadQueries
	db      catalogdb.DBTX
}

func NewExhibitReadStore(queries ExhibitReadQueries, db catalogdb.DBTX) *ExhibitReadStore {
	return &ExhibitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExhibitReadStore) FindAll(ctx context.Context) ([]*shared.ExhibitSnapshot, error) {
	rows, err := r.queries.GetAllExhibits(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all exhibits", err)
	}

	result := make([]*shared.ExhibitSnapshot, len(rows))
	for i, row := range rows {
		snapshot, err := toExhibitSnapshotFromRow(row, nil)
		if err != nil {
			return nil, err
		}
		result[i] = snapshot
	}
	return result, nil
}

func (r *ExhibitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ExhibitSnapshot, error) {
	row, err := r.queries.GetExhibitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("exhibit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find exhibit by ID", err)
	}

	slots, err := r.queries.GetBookedSlotsByExhibitID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load booked slots", err)
	}

	return toExhibitSnapshotFromRow(row, toReservedWindows(slots))
}

// toExhibitSnapshotFromRow reconstructs the domain entity so a catalog
// record never reaches the usecases without passing its validation.
func toExhibitSnapshotFromRow(row catalogdb.Exhibits, reserved schedule.ReservedWindows) (*shared.ExhibitSnapshot, error) {
	ent, err := exhibit.NewExhibit(
		row.ID,
		row.Name,
		row.Gallery,
		row.About,
		exhibit.NewMoney(row.UnitFeeCents),
		reserved,
		pgconv.TimeFromTimestamptz(row.CreatedAt),
		pgconv.TimeFromTimestamptz(row.UpdatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid exhibit record", err, infra.KindBadData)
	}
	return &shared.ExhibitSnapshot{
		ID:           ent.ID(),
		Name:         ent.Name(),
		Gallery:      ent.Gallery(),
		About:        ent.About(),
		UnitFeeCents: ent.UnitFee().Cents(),
		Reserved:     ent.ReservedWindows(),
		CreatedAt:    ent.CreatedAt(),
		UpdatedAt:    ent.UpdatedAt(),
	}, nil
}

// toReservedWindows tolerates malformed rows: a slot with an invalid
// date or an empty label is skipped, never blocks a day's schedule.
func toReservedWindows(rows []catalogdb.ExhibitBookedSlots) schedule.ReservedWindows {
	reserved := schedule.NewReservedWindows()
	for _, row := range rows {
		if !row.SlotDate.Valid {
			slog.Warn("skipping booked slot with invalid date", "exhibit_id", row.ExhibitID)
			continue
		}
		label := pgconv.TextOrEmpty(row.SlotTime)
		if label == "" {
			slog.Warn("skipping booked slot with empty time label", "exhibit_id", row.ExhibitID)
			continue
		}
		day := row.SlotDate.Time
		key := schedule.DateKey{Day: day.Day(), Month: int(day.Month()), Year: day.Year()}
		reserved.Add(key, label)
	}
	return reserved
}
