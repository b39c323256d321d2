package schedule

// ReservedWindows maps a calendar day to the set of time labels already
// reserved on that day. A day absent from the map has no reservations.
type ReservedWindows map[DateKey]map[string]struct{}

func NewReservedWindows() ReservedWindows {
	return make(ReservedWindows)
}

func (r ReservedWindows) Add(key DateKey, label string) {
	if label == "" || key.IsZero() {
		return
	}
	set, ok := r[key]
	if !ok {
		set = make(map[string]struct{})
		r[key] = set
	}
	set[label] = struct{}{}
}

func (r ReservedWindows) IsReserved(key DateKey, label string) bool {
	if r == nil {
		return false
	}
	set, ok := r[key]
	if !ok {
		return false
	}
	_, reserved := set[label]
	return reserved
}

func (r ReservedWindows) CountOn(key DateKey) int {
	return len(r[key])
}
