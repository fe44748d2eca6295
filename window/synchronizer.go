package window

import "time"

// TimeSynchronizer paces a caller's poll/draw/present loop.
type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	now                   func() int64
	delay                 func(us int64)
}

func NewTimeSynchronizer(targetFPS float64) *TimeSynchronizer {
	return newTimeSynchronizer(targetFPS, nowMicros, sleepMicros)
}

func newTimeSynchronizer(targetFPS float64, now func() int64, delay func(us int64)) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  now(),
		usPerFrame: int64(1000000.0 / targetFPS),
		now:        now,
		delay:      delay,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.now()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 1000 { // Larger than 1ms
		ts.delay(diff)
	}
	ts.prevTicks += ts.usPerFrame
}

func nowMicros() int64 {
	return time.Now().UnixMicro()
}

func sleepMicros(us int64) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}
