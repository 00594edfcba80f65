// Package jobqueue runs background disk-write jobs on a single long-lived
// goroutine draining a buffered channel, the same hub shape as the
// teacher's api.API.run() (register/unregister/broadcast channels become
// submit/done channels here) repurposed for packstore's background saves
// (spec section 5 "Background tasks") instead of websocket fan-out.
package jobqueue

import (
	"log"
)

var logger = log.New(log.Writer(), "[jobqueue] ", log.LstdFlags)

// Job is a unit of background work. A non-nil error is logged and the job
// is dropped; jobqueue does not retry or resubmit it.
type Job func() error

// Queue drains submitted jobs one at a time on its own goroutine, so
// callers on the render/frame thread never block on disk I/O.
type Queue struct {
	submit chan Job
	done   chan struct{}
}

// New starts the queue's worker goroutine. capacity bounds how many
// pending jobs may be queued before Submit blocks; a full queue usually
// means saves are arriving faster than disk I/O can drain them.
func New(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	q := &Queue{
		submit: make(chan Job, capacity),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	for job := range q.submit {
		if err := job(); err != nil {
			logger.Printf("background job failed: %v", err)
		}
	}
	close(q.done)
}

// Submit enqueues job for background execution. It blocks only if the
// queue's buffer is full.
func (q *Queue) Submit(job Job) {
	q.submit <- job
}

// TrySubmit enqueues job without blocking, reporting false if the queue's
// buffer is full. Useful for per-frame dirty-flush callers that would
// rather skip a save than stall a frame.
func (q *Queue) TrySubmit(job Job) bool {
	select {
	case q.submit <- job:
		return true
	default:
		return false
	}
}

// Close stops accepting new jobs and waits for the drain of whatever is
// already queued.
func (q *Queue) Close() {
	close(q.submit)
	<-q.done
}
