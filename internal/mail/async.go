// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hubsign/landing-service/internal/logging"
)

var (
	ErrQueueFull = errors.New("mail queue is full")
	ErrClosed    = errors.New("mail transport is closed")
)

var _ MailTransportInterface = (*AsyncTransport)(nil)

// AsyncTransport hands messages to a fixed pool of workers so callers never wait on delivery.
// Delivery errors are only logged.
type AsyncTransport struct {
	next    MailTransportInterface
	queue   chan Message
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	logger logging.LoggerInterface
}

// Send enqueues msg and returns without waiting for delivery
func (a *AsyncTransport) Send(_ context.Context, msg Message) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return ErrClosed
	}

	select {
	case a.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

func (a *AsyncTransport) worker() {
	defer a.wg.Done()

	for msg := range a.queue {
		a.deliver(msg)
	}
}

func (a *AsyncTransport) deliver(msg Message) {
	// request contexts are gone by the time the worker picks the message up
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	if err := a.next.Send(ctx, msg); err != nil {
		a.logger.Errorf("failed to deliver mail %q: %v", msg.Subject, err)
	}
}

// Close stops accepting messages and waits for queued ones to be delivered or ctx to expire
func (a *AsyncTransport) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func NewAsyncTransport(next MailTransportInterface, workers, queueSize int, timeout time.Duration, logger logging.LoggerInterface) *AsyncTransport {
	if workers < 1 {
		workers = 1
	}

	if queueSize < workers {
		queueSize = workers
	}

	a := new(AsyncTransport)

	a.next = next
	a.queue = make(chan Message, queueSize)
	a.timeout = timeout
	a.logger = logger

	for i := 0; i < workers; i++ {
		a.wg.Add(1)
		go a.worker()
	}

	return a
}
