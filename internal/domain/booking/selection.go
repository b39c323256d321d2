package booking

import (
	"errors"

	"museum-booking/internal/domain/schedule"
)

var (
	ErrDayOutOfRange      = errors.New("day index out of horizon range")
	ErrNoDaySelected      = errors.New("no day selected")
	ErrTimeNotInSchedule  = errors.New("time label not in day schedule")
	ErrSubmissionNotReady = errors.New("selection incomplete for submission")
)

type SelectionState string

const (
	StateNoDay              SelectionState = "no_day"
	StateDaySelected        SelectionState = "day_selected"
	StateDayAndTimeSelected SelectionState = "day_and_time_selected"
)

// Selection tracks the user's day/time choice against a generated
// schedule. Picking a day always drops any previously chosen time, so
// a stale label can never survive a day change.
type Selection struct {
	state     SelectionState
	dayIndex  int
	timeLabel string
}

func NewSelection() *Selection {
	return &Selection{state: StateNoDay}
}

func (s *Selection) SelectDay(dayIndex, horizonDays int) error {
	if dayIndex < 0 || dayIndex >= horizonDays {
		return ErrDayOutOfRange
	}
	s.dayIndex = dayIndex
	s.timeLabel = ""
	s.state = StateDaySelected
	return nil
}

func (s *Selection) SelectTime(day schedule.DaySchedule, label string) error {
	if s.state == StateNoDay {
		return ErrNoDaySelected
	}
	if !day.Contains(label) {
		return ErrTimeNotInSchedule
	}
	s.timeLabel = label
	s.state = StateDayAndTimeSelected
	return nil
}

func (s *Selection) CanSubmit() bool {
	return s.state == StateDayAndTimeSelected
}

func (s *Selection) State() SelectionState {
	return s.state
}

func (s *Selection) DayIndex() int {
	return s.dayIndex
}

func (s *Selection) TimeLabel() string {
	return s.timeLabel
}
