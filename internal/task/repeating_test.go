package task

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepeatingTaskRuns(t *testing.T) {
	var runs atomic.Int32
	task := NewRepeating(func(context.Context) {
		runs.Add(1)
	}, 5*time.Millisecond)

	task.Start()
	task.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, time.Millisecond)
	task.Stop(false)

	stopped := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestRepeatingTaskForceExec(t *testing.T) {
	var runs atomic.Int32
	task := NewRepeating(func(context.Context) {
		runs.Add(1)
	}, time.Hour)

	task.Start()
	task.Stop(true)
	assert.Equal(t, int32(1), runs.Load())

	task.Stop(true)
	assert.Equal(t, int32(1), runs.Load())
}

func TestRepeatingTaskCancelsJobContext(t *testing.T) {
	started := make(chan struct{}, 1)
	var cancelled atomic.Bool
	task := NewRepeating(func(ctx context.Context) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		cancelled.Store(true)
	}, time.Millisecond)

	task.Start()
	<-started
	task.Stop(false)
	assert.True(t, cancelled.Load())
}
