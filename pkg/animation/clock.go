package animation

import "time"

// Clock provides time for animations. Schedulers read it once per step, so a
// fake clock makes animation timing fully deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}
