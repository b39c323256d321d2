package schedule

import "time"

// TimeLabelLayout is the clock-face format reservations are recorded
// with. Availability comparison is by exact label string, so the
// generator and the reservation records must share this layout.
const TimeLabelLayout = "03:04 PM"

// CandidateWindow is one reservable 30-minute time point. Windows are
// ephemeral: regenerated on every pass, never persisted.
type CandidateWindow struct {
	Instant time.Time
	Label   string
}

// DaySchedule holds the available windows of one calendar day in
// chronological order. A day past its visiting hours has an empty
// window list but keeps its date identity.
type DaySchedule struct {
	Date    DateKey
	Windows []CandidateWindow
}

func (d DaySchedule) IsEmpty() bool {
	return len(d.Windows) == 0
}

func (d DaySchedule) Contains(label string) bool {
	_, ok := d.WindowAt(label)
	return ok
}

// WindowAt returns the window carrying the given label.
func (d DaySchedule) WindowAt(label string) (CandidateWindow, bool) {
	for _, w := range d.Windows {
		if w.Label == label {
			return w, true
		}
	}
	return CandidateWindow{}, false
}
