package worker

import (
	"sync"
	"time"

	"github.com/osse101/QuestGate_Go/internal/logger"
)

// Scheduler enqueues jobs onto a Pool at fixed intervals
type Scheduler struct {
	pool     *Pool
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewScheduler creates a scheduler feeding pool
func NewScheduler(pool *Pool) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule runs job every interval until Stop. A tick is skipped rather than
// queued when the pool is saturated so slow jobs never pile up.
func (s *Scheduler) Schedule(name string, interval time.Duration, job Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.TryEnqueue(job) {
					logger.Warn(LogMsgScheduledJobSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.wg.Wait()
}
