// Package retention periodically deletes old recommendation history.
package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Pruner interface {
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
}

type Job struct {
	cron   *cron.Cron
	p      Pruner
	maxAge time.Duration
	log    *zap.Logger
}

// New schedules pruning of records older than maxAge. spec is a standard
// five-field cron expression or a descriptor such as "@daily".
func New(spec string, maxAge time.Duration, p Pruner, log *zap.Logger) (*Job, error) {
	if maxAge <= 0 {
		return nil, fmt.Errorf("retention: max age must be positive, got %s", maxAge)
	}
	j := &Job{cron: cron.New(), p: p, maxAge: maxAge, log: log}
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return nil, fmt.Errorf("retention: schedule %q: %w", spec, err)
	}
	return j, nil
}

func (j *Job) Start() { j.cron.Start() }

// Stop waits for a running prune to finish or ctx to expire.
func (j *Job) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}

func (j *Job) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := j.p.Prune(ctx, j.maxAge)
	if err != nil {
		j.log.Error("prune history", zap.Error(err))
		return
	}
	j.log.Info("pruned history", zap.Int64("deleted", n), zap.Duration("max_age", j.maxAge))
}
