package event

// Status reports whether a widget handled an event.
type Status int

const (
	// Ignored means the event was not handled.
	Ignored Status = iota

	// Captured means a widget handled the event. Other widgets must not
	// treat it as new input.
	Captured
)

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Merge combines two statuses. Captured absorbs Ignored, so Merge is
// commutative and associative.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}

// MergeAll combines any number of statuses.
func MergeAll(statuses ...Status) Status {
	out := Ignored
	for _, s := range statuses {
		out = out.Merge(s)
	}
	return out
}
