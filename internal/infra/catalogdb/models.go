package catalogdb

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Exhibits struct {
	ID           uuid.UUID
	Name         string
	Gallery      string
	About        string
	UnitFeeCents int64
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type ExhibitBookedSlots struct {
	ExhibitID uuid.UUID
	SlotDate  pgtype.Date
	SlotTime  pgtype.Text
}
