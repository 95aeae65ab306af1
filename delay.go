package toolbelt

import "time"

// Delay returns a channel that is closed once d has elapsed. There is no
// way to stop it early; use a context or time.Timer for that.
func Delay(d time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if d <= 0 {
		close(done)
		return done
	}
	time.AfterFunc(d, func() { close(done) })
	return done
}
