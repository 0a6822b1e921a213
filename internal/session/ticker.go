package session

import (
	"sync"
	"time"
)

// Ticker emits one tick per interval until stopped. The session owner
// applies each tick itself, keeping every session mutation on one
// goroutine. Stop cancels the ticker outright rather than pausing it;
// the owner starts a fresh one for the next question.
type Ticker struct {
	C <-chan time.Time

	stop chan struct{}
	once sync.Once
}

func NewTicker(interval time.Duration) *Ticker {
	t := time.NewTicker(interval)
	out := make(chan time.Time)
	stop := make(chan struct{})
	go func() {
		defer t.Stop()
		for {
			select {
			case tm := <-t.C:
				select {
				case out <- tm:
				case <-stop:
					return
				}
			case <-stop:
				return
			}
		}
	}()
	return &Ticker{C: out, stop: stop}
}

// Stop cancels the ticker. Safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.stop) })
}
