package schedule

import "time"

const (
	DefaultOpeningHour = 10
	DefaultClosingHour = 21
	DefaultSlotStep    = 30 * time.Minute
	DefaultHorizonDays = 7
)

// Generator produces the rolling grid of reservable windows. It holds
// only visiting-hour parameters; "now" is passed in per call so
// generation stays deterministic under an injected clock.
type Generator struct {
	openingHour int
	closingHour int
	step        time.Duration
	horizonDays int
}

func NewGenerator(openingHour, closingHour int, step time.Duration, horizonDays int) *Generator {
	if openingHour <= 0 || openingHour >= 24 {
		openingHour = DefaultOpeningHour
	}
	if closingHour <= openingHour || closingHour > 24 {
		closingHour = DefaultClosingHour
	}
	if step <= 0 {
		step = DefaultSlotStep
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return &Generator{
		openingHour: openingHour,
		closingHour: closingHour,
		step:        step,
		horizonDays: horizonDays,
	}
}

func NewDefaultGenerator() *Generator {
	return NewGenerator(DefaultOpeningHour, DefaultClosingHour, DefaultSlotStep, DefaultHorizonDays)
}

func (g *Generator) HorizonDays() int {
	return g.horizonDays
}

// Generate returns one DaySchedule per horizon day, index 0 = today.
// Windows already present in reserved are excluded. Days whose visiting
// hours have elapsed come back empty rather than erroring.
func (g *Generator) Generate(reserved ReservedWindows, now time.Time) []DaySchedule {
	days := make([]DaySchedule, 0, g.horizonDays)
	for i := 0; i < g.horizonDays; i++ {
		days = append(days, g.generateDay(reserved, now, i))
	}
	return days
}

func (g *Generator) generateDay(reserved ReservedWindows, now time.Time, offset int) DaySchedule {
	dayStart := now.AddDate(0, 0, offset)
	loc := dayStart.Location()
	windowEnd := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(),
		g.closingHour, 0, 0, 0, loc)

	cursor := g.dayCursor(dayStart, now, offset == 0)
	key := NewDateKey(dayStart)

	day := DaySchedule{Date: key}
	for cursor.Before(windowEnd) {
		label := cursor.Format(TimeLabelLayout)
		if !reserved.IsReserved(key, label) {
			day.Windows = append(day.Windows, CandidateWindow{Instant: cursor, Label: label})
		}
		cursor = cursor.Add(g.step)
	}
	return day
}

// dayCursor places the first candidate instant of a day. Future days
// always open at the fixed opening hour. For today the current moment
// is pushed to the next half-hour boundary with at least an hour of
// lead time, never before opening:
//
//	hour   = now.hour + 1  if now.hour > opening, else opening
//	minute = 30            if now.minute > 30,    else 0
//
// The rule is kept exactly as the booking page always applied it; it is
// coarser than "round up to the nearest half hour" at hour boundaries.
func (g *Generator) dayCursor(dayStart, now time.Time, today bool) time.Time {
	hour := g.openingHour
	minute := 0
	if today {
		if now.Hour() > g.openingHour {
			hour = now.Hour() + 1
		}
		if now.Minute() > 30 {
			minute = 30
		}
	}
	return time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(),
		hour, minute, 0, 0, dayStart.Location())
}
