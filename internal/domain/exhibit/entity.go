package exhibit

import (
	"errors"
	"strings"
	"time"

	"museum-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyExhibitName   = errors.New("exhibit name cannot be empty")
	ErrExhibitNameTooLong = errors.New("exhibit name is too long (max 255 characters)")
	ErrNonPositiveFee     = errors.New("unit fee must be positive")
)

const (
	MaxExhibitNameLength = 255
)

// Exhibit is the bookable catalog entity: a museum exhibit slot product
// with a per-visitor fee and the windows already reserved. The catalog
// owns the record; this core only reads it.
type Exhibit struct {
	id              uuid.UUID
	name            string
	gallery         string
	about           string
	unitFee         Money
	reservedWindows schedule.ReservedWindows
	createdAt       time.Time
	updatedAt       time.Time
}

// NewExhibit validates a catalog record on the way in. The catalog is
// an external collaborator, so a record that fails validation here is
// bad stored data, not a caller bug.
func NewExhibit(
	id uuid.UUID,
	name, gallery, about string,
	unitFee Money,
	reserved schedule.ReservedWindows,
	createdAt, updatedAt time.Time,
) (*Exhibit, error) {
	if err := validateExhibitName(name); err != nil {
		return nil, err
	}
	if !unitFee.IsPositive() {
		return nil, ErrNonPositiveFee
	}
	if reserved == nil {
		reserved = schedule.NewReservedWindows()
	}

	return &Exhibit{
		id:              id,
		name:            strings.TrimSpace(name),
		gallery:         gallery,
		about:           about,
		unitFee:         unitFee,
		reservedWindows: reserved,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func validateExhibitName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyExhibitName
	}
	if len(name) > MaxExhibitNameLength {
		return ErrExhibitNameTooLong
	}
	return nil
}

func (e *Exhibit) ID() uuid.UUID                              { return e.id }
func (e *Exhibit) Name() string                               { return e.name }
func (e *Exhibit) Gallery() string                            { return e.gallery }
func (e *Exhibit) About() string                              { return e.about }
func (e *Exhibit) UnitFee() Money                             { return e.unitFee }
func (e *Exhibit) ReservedWindows() schedule.ReservedWindows  { return e.reservedWindows }
func (e *Exhibit) CreatedAt() time.Time                       { return e.createdAt }
func (e *Exhibit) UpdatedAt() time.Time                       { return e.updatedAt }
