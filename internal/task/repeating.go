package task

import (
	"context"
	"sync"
	"time"
)

// RepeatingTask executes a job in a specific interval asynchronously.
// The context passed to the job is cancelled once the task is stopped.
type RepeatingTask struct {
	job      func(ctx context.Context)
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRepeating creates a new repeating asynchronous task
func NewRepeating(job func(ctx context.Context), interval time.Duration) *RepeatingTask {
	return &RepeatingTask{
		job:      job,
		interval: interval,
	}
}

// Start starts the repeating task.
// If the task is already running, this is a no-op.
func (task *RepeatingTask) Start() {
	task.mu.Lock()
	defer task.mu.Unlock()
	if task.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	task.cancel = cancel
	task.done = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(task.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				task.job(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the repeating task and waits for a running execution to finish.
// If the task is not running, this is a no-op.
// forceExec defines whether to execute the job one last time just before the task shuts down.
func (task *RepeatingTask) Stop(forceExec bool) {
	task.mu.Lock()
	defer task.mu.Unlock()
	if task.cancel == nil {
		return
	}
	task.cancel()
	<-task.done
	task.cancel = nil
	task.done = nil
	if forceExec {
		task.job(context.Background())
	}
}
