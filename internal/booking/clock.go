package booking

import "time"

// Clock abstracts time so lifecycle rules can be tested at a fixed instant.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
