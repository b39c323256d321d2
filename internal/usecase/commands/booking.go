package commands

import (
	"context"
	"errors"
	"log/slog"

	"museum-booking/internal/domain/booking"
	"museum-booking/internal/domain/exhibit"
	"museum-booking/internal/domain/schedule"
	"museum-booking/internal/infra"
	"museum-booking/internal/pkg/clock"
	"museum-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExhibitNotFound     = errs.New("exhibit not found")
	ErrDayOutOfRange       = errs.New("day index out of range")
	ErrSlotUnavailable     = errs.New("slot unavailable")
	ErrSelectionIncomplete = errs.New("selection incomplete")
	ErrGatewayUnavailable  = errs.New("submission gateway unavailable")
)

type SubmitBookingParams struct {
	ExhibitID uuid.UUID
	DayIndex  int
	TimeLabel string
	Quantity  int
}

type SubmitBookingResult struct {
	Success       bool
	Message       string
	ExhibitID     uuid.UUID
	SlotDate      string
	SlotTime      string
	Quantity      int
	TotalFeeCents int64
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, params SubmitBookingParams) (*SubmitBookingResult, error)
}

type bookingCommandsImpl struct {
	exhibitStore ExhibitReadStore
	gateway      SubmissionGateway
	generator    *schedule.Generator
	feeCalc      booking.FeeCalculator
	clock        clock.Clock
}

func NewBookingCommands(
	exhibitStore ExhibitReadStore,
	gateway SubmissionGateway,
	generator *schedule.Generator,
	feeCalc booking.FeeCalculator,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		exhibitStore: exhibitStore,
		gateway:      gateway,
		generator:    generator,
		feeCalc:      feeCalc,
		clock:        clk,
	}
}

// SubmitBooking re-validates the chosen (day, time) against a freshly
// generated grid, recomputes the total server-side and forwards the
// tuple to the gateway. A rejected or failed submission leaves no local
// state behind; the caller's selection stays valid for a retry.
func (c *bookingCommandsImpl) SubmitBooking(ctx context.Context, params SubmitBookingParams) (*SubmitBookingResult, error) {
	snap, err := c.exhibitStore.FindByID(ctx, params.ExhibitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrExhibitNotFound)
		}
		return nil, errs.Wrap(err, "failed to load exhibit for booking")
	}

	days := c.generator.Generate(snap.Reserved, c.clock.Now())

	selection, err := c.buildSelection(days, params)
	if err != nil {
		return nil, err
	}

	quantity := booking.NewQuantity(params.Quantity)
	total := c.feeCalc.Recompute(exhibit.NewMoney(snap.UnitFeeCents), quantity)

	day := days[selection.DayIndex()]
	req := SubmissionRequest{
		ResourceID:    snap.ID,
		SlotDate:      day.Date.String(),
		SlotTime:      selection.TimeLabel(),
		Quantity:      quantity.Value(),
		TotalFeeCents: total.Cents(),
	}

	result, err := c.gateway.Submit(ctx, req)
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayUnavailable)
	}

	if !result.Success {
		slog.Warn("booking submission rejected",
			"exhibit_id", snap.ID,
			"slot_date", req.SlotDate,
			"slot_time", req.SlotTime,
			"message", result.Message)
	}

	return &SubmitBookingResult{
		Success:       result.Success,
		Message:       result.Message,
		ExhibitID:     snap.ID,
		SlotDate:      req.SlotDate,
		SlotTime:      req.SlotTime,
		Quantity:      req.Quantity,
		TotalFeeCents: req.TotalFeeCents,
	}, nil
}

func (c *bookingCommandsImpl) buildSelection(days []schedule.DaySchedule, params SubmitBookingParams) (*booking.Selection, error) {
	selection := booking.NewSelection()

	if err := selection.SelectDay(params.DayIndex, c.generator.HorizonDays()); err != nil {
		return nil, errs.Mark(err, ErrDayOutOfRange)
	}

	if err := selection.SelectTime(days[selection.DayIndex()], params.TimeLabel); err != nil {
		if errors.Is(err, booking.ErrTimeNotInSchedule) {
			return nil, errs.Mark(err, ErrSlotUnavailable)
		}
		return nil, errs.Mark(err, ErrSelectionIncomplete)
	}

	if !selection.CanSubmit() {
		return nil, ErrSelectionIncomplete
	}
	return selection, nil
}
