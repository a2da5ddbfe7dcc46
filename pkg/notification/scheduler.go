package notification

import (
	"context"
	"log"
	"sync"
	"time"
)

// Scheduler runs the expiration scan once a day at a fixed hour. RunOnce is
// serialized so an overlapping manual trigger cannot race the daily run.
type Scheduler struct {
	service NotificationService
	hour    int

	mu sync.Mutex
}

func NewScheduler(service NotificationService, hour int) *Scheduler {
	if hour < 0 || hour > 23 {
		hour = 9
	}
	return &Scheduler{service: service, hour: hour}
}

// Start blocks until ctx is cancelled, firing RunOnce at the configured hour.
func (s *Scheduler) Start(ctx context.Context) {
	for {
		next := s.nextRun(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.RunOnce(ctx)
		}
	}
}

func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.service.Scan(ctx, time.Now())
	if err != nil {
		log.Printf("expiration scan failed: %v", err)
		return
	}
	log.Printf("expiration scan created %d notifications", created)
}

func (s *Scheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
