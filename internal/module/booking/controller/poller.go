package controller

import (
	"context"
	"sync"
)

// PollTask is the handle of one running status poll. Stop is safe to call
// any number of times; only the first call cancels.
type PollTask struct {
	uuid   string
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}
}

func newPollTask(uuid string) *PollTask {
	ctx, cancel := context.WithCancel(context.Background())
	return &PollTask{
		uuid:   uuid,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Stop cancels the task and reports whether this call did it.
func (t *PollTask) Stop() bool {
	stopped := false
	t.once.Do(func() {
		t.cancel()
		stopped = true
	})
	return stopped
}

func (t *PollTask) Stopped() bool {
	return t.ctx.Err() != nil
}

// Done is closed once the polling goroutine has exited.
func (t *PollTask) Done() <-chan struct{} {
	return t.done
}

func (t *PollTask) BookingUUID() string {
	return t.uuid
}
