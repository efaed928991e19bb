package cron

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddJobRejectsDuplicateNames(t *testing.T) {
	s := NewScheduler()
	job := Job{Name: "sweep", Interval: time.Hour, Fn: func(ctx context.Context) error { return nil }}

	assert.True(t, s.AddJob(job))
	assert.False(t, s.AddJob(job))
}

func TestRunAtStartExecutesImmediately(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)

	s.AddJob(Job{
		Name:       "sweep",
		Interval:   time.Hour,
		RunAtStart: true,
		Fn: func(ctx context.Context) error {
			ran <- struct{}{}
			return nil
		},
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run at start")
	}
}

func TestStopHaltsFurtherRuns(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32

	s.AddJob(Job{
		Name:       "tick",
		Interval:   10 * time.Millisecond,
		RunAtStart: true,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	assert.Greater(t, after, int32(0))

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}
