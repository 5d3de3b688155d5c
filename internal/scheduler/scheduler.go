// Package scheduler regenerates the report set on a cron schedule. The
// dataset file may be replaced on disk between runs; every tick reloads it
// from scratch so reports always reflect the current file.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Task regenerates the full report set. It is supplied by the caller so the
// scheduler stays ignorant of datasets and writers.
type Task func(ctx context.Context) error

// Scheduler runs the regeneration task on a cron expression (with seconds,
// e.g. "0 0 18 * * 1-5").
type Scheduler struct {
	cron *cron.Cron
	ctx  context.Context
	task Task
}

// New creates a Scheduler; Register must be called before Start.
func New(ctx context.Context, task Task) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		ctx:  ctx,
		task: task,
	}
}

// Register adds the regeneration job under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the regeneration task immediately (manual trigger /
// run-on-start).
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	if err := s.ctx.Err(); err != nil {
		return
	}
	log.Println("[INFO] running report refresh")
	if err := s.task(s.ctx); err != nil {
		log.Printf("[ERROR] report refresh: %v", err)
		return
	}
	log.Println("[INFO] report refresh complete")
}
