package catalogdb

import (
	"context"

	"github.com/google/uuid"
)

const getAllExhibits = `
SELECT id, name, gallery, about, unit_fee_cents, created_at, updated_at
FROM exhibits
ORDER BY name
`

func (q *Queries) GetAllExhibits(ctx context.Context, db DBTX) ([]Exhibits, error) {
	rows, err := db.Query(ctx, getAllExhibits)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Exhibits
	for rows.Next() {
		var e Exhibits
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Gallery,
			&e.About,
			&e.UnitFeeCents,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const getExhibitByID = `
SELECT id, name, gallery, about, unit_fee_cents, created_at, updated_at
FROM exhibits
WHERE id = $1
`

func (q *Queries) GetExhibitByID(ctx context.Context, db DBTX, id uuid.UUID) (Exhibits, error) {
	row := db.QueryRow(ctx, getExhibitByID, id)
	var e Exhibits
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Gallery,
		&e.About,
		&e.UnitFeeCents,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

const getBookedSlotsByExhibitID = `
SELECT exhibit_id, slot_date, slot_time
FROM exhibit_booked_slots
WHERE exhibit_id = $1
ORDER BY slot_date, slot_time
`

func (q *Queries) GetBookedSlotsByExhibitID(ctx context.Context, db DBTX, exhibitID uuid.UUID) ([]ExhibitBookedSlots, error) {
	rows, err := db.Query(ctx, getBookedSlotsByExhibitID, exhibitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ExhibitBookedSlots
	for rows.Next() {
		var s ExhibitBookedSlots
		if err := rows.Scan(&s.ExhibitID, &s.SlotDate, &s.SlotTime); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
