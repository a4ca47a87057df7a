package profiling

import "time"

// FPSLimiter paces the main loop to a target frame rate
type FPSLimiter struct {
	limit int
	next  time.Time

	// replaced in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a limiter. A limit <= 0 disables limiting.
func NewFPSLimiter(limit int) *FPSLimiter {
	return &FPSLimiter{limit: limit, now: time.Now, sleep: time.Sleep}
}

// Wait blocks until the next frame is due. Uses a hybrid sleep/spin
// approach for precision on high caps, and resyncs after a hitch longer
// than one frame instead of rushing to catch up.
func (f *FPSLimiter) Wait() {
	if f.limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(f.limit)
	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			f.sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if f.next.Sub(f.now()) <= 0 {
			break
		}
	}

	if late := f.now().Sub(f.next); late > target {
		f.next = f.now()
	}
}
