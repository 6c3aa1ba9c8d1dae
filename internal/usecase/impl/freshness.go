package impl

import "time"

// freshnessWindow decides whether an "added" event is news or replayed history.
//
// Subscribing to a live query delivers the current result set as a batch of
// added events, so a record counts as new only while its age is strictly
// below the threshold. This is a wall-clock heuristic: clock skew between the
// writer and this process shifts the boundary by the skew, and a record that
// is replayed within the window of its creation alerts again after a reconnect.
type freshnessWindow struct {
	threshold time.Duration
	now       func() time.Time
}

func newFreshnessWindow(threshold time.Duration, now func() time.Time) freshnessWindow {
	if now == nil {
		now = time.Now
	}

	return freshnessWindow{threshold: threshold, now: now}
}

// age returns how old a record is; a missing timestamp means it was just written.
func (w freshnessWindow) age(createdAt time.Time) time.Duration {
	if createdAt.IsZero() {
		return 0
	}

	return w.now().Sub(createdAt)
}

// Fresh reports age < threshold. Timestamps ahead of the local clock are fresh.
func (w freshnessWindow) Fresh(createdAt time.Time) bool {
	return w.age(createdAt) < w.threshold
}
