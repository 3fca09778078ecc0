package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/piresc/yavijexpress/internal/pkg/constants"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
)

// Locker guards a sweep run so only one replica executes it at a time
type Locker interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Job is a named periodic task. Runs must be idempotent: a skipped or repeated
// run only delays a transition, it never corrupts state.
type Job struct {
	Name string
	Spec string
	Run  func(ctx context.Context) error
}

// Scheduler runs the periodic lifecycle sweeps on cron schedules
type Scheduler struct {
	cron    *cron.Cron
	locker  Locker
	lockTTL time.Duration
	log     *logger.AppLogger
}

// NewScheduler creates a new sweep scheduler
func NewScheduler(locker Locker, log *logger.AppLogger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		locker:  locker,
		lockTTL: 50 * time.Second,
		log:     log,
	}
}

// Register adds a job to the schedule. Each run takes the job's redis lock
// first so concurrent replicas do not sweep twice.
func (s *Scheduler) Register(job Job) error {
	_, err := s.cron.AddFunc(job.Spec, func() {
		s.runLocked(job)
	})
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name, err)
	}
	return nil
}

func (s *Scheduler) runLocked(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.lockTTL)
	defer cancel()

	key := fmt.Sprintf(constants.KeySweepLock, job.Name)
	acquired, err := s.locker.SetNX(ctx, key, time.Now().Unix(), s.lockTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{"job": job.Name}).
			WithError(err).Error("failed to acquire sweep lock")
		return
	}
	if !acquired {
		// another replica holds the lock for this tick
		return
	}
	defer func() {
		if err := s.locker.Delete(ctx, key); err != nil {
			s.log.WithFields(logrus.Fields{"job": job.Name}).
				WithError(err).Warn("failed to release sweep lock")
		}
	}()

	if err := job.Run(ctx); err != nil {
		s.log.WithFields(logrus.Fields{"job": job.Name}).
			WithError(err).Error("sweep run failed")
	}
}

// Start begins executing registered jobs on their schedules
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
