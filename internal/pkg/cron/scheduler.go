package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named background task run on a fixed interval.
type Job struct {
	Name       string
	Interval   time.Duration
	RunAtStart bool
	Fn         func(ctx context.Context) error
}

// Scheduler runs registered jobs until Stop. Each job gets its own ticker
// goroutine; they all share a root context cancelled on Stop.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []Job
	started bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Duplicate names are rejected so a misconfigured
// wiring cannot run the same sweep twice.
func (s *Scheduler) AddJob(job Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.jobs {
		if existing.Name == job.Name {
			slog.Warn("Duplicate job registration ignored", "job", job.Name)
			return false
		}
	}

	s.jobs = append(s.jobs, job)
	slog.Info("Job registered", "job", job.Name, "interval", job.Interval)
	return true
}

// Start launches one goroutine per registered job. Calling Start twice is a
// no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Scheduler started", "job_count", len(s.jobs))
}

// Stop cancels the shared context and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	if job.RunAtStart {
		s.executeJob(job)
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	start := time.Now()

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Job failed", "job", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Job completed", "job", job.Name, "duration", time.Since(start))
}
