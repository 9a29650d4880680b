package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsJobOnStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)

	s.AddJob("startup", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestSchedulerStopWaitsForJobs(t *testing.T) {
	s := NewScheduler()
	done := make(chan struct{})

	s.AddJob("cancellable", time.Hour, func(ctx context.Context) error {
		<-ctx.Done()
		close(done)
		return ctx.Err()
	})

	s.Start()
	s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop returned before the job observed cancellation")
	}
}

func TestSchedulerRunsJobsOnInterval(t *testing.T) {
	s := NewScheduler()
	runs := make(chan struct{}, 16)

	s.AddJob("fast", 10*time.Millisecond, func(ctx context.Context) error {
		select {
		case runs <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	time.Sleep(60 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, len(runs), 2)
}
