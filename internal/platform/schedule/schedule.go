// Package schedule provides cancellable repeating tasks.
package schedule

import (
	"sync"
	"time"
)

type Handle interface {
	Cancel()
}

type Scheduler interface {
	Every(period time.Duration, fn func()) Handle
}

type SystemScheduler struct{}

func (SystemScheduler) Every(period time.Duration, fn func()) Handle {
	h := &tickerHandle{ticker: time.NewTicker(period), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				fn()
			}
		}
	}()
	return h
}

type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
