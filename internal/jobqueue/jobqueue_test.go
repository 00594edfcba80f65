package jobqueue

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestQueueRunsSubmittedJobs(t *testing.T) {
	q := New(4)
	defer q.Close()

	var mu sync.Mutex
	ran := 0
	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		q.Submit(func() error {
			mu.Lock()
			ran++
			mu.Unlock()
			wg.Done()
			return nil
		})
	}

	waitOrTimeout(t, &wg, time.Second)

	mu.Lock()
	defer mu.Unlock()
	if ran != 3 {
		t.Fatalf("expected 3 jobs to run, got %d", ran)
	}
}

func TestQueueLogsJobErrorsWithoutPanicking(t *testing.T) {
	q := New(1)
	defer q.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	q.Submit(func() error {
		defer wg.Done()
		return errors.New("disk full")
	})
	waitOrTimeout(t, &wg, time.Second)
}

func TestQueueTrySubmitFailsWhenBufferFull(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{})
	q := New(1)
	defer func() {
		close(block)
		q.Close()
	}()

	q.Submit(func() error {
		close(started)
		<-block
		return nil
	})
	<-started // worker is now occupied, buffer is empty again

	// The buffer (capacity 1) has room for exactly one more pending job.
	if !q.TrySubmit(func() error { return nil }) {
		t.Fatalf("expected one job to fit in the buffer while the worker is busy")
	}
	if q.TrySubmit(func() error { return nil }) {
		t.Fatalf("expected TrySubmit to fail once both the worker and the buffer are occupied")
	}
}

func waitOrTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("timed out waiting for jobs to complete")
	}
}
