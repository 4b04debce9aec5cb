package mail

import (
	"context"
	"fmt"
	"sync"
)

type FakeOutbox struct {
	Enqueued    []Message
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeOutbox() *FakeOutbox {
	return &FakeOutbox{}
}

func (o *FakeOutbox) Enqueue(ctx context.Context, message Message) error {
	if o.ReturnError {
		return fmt.Errorf("could not enqueue message %v", message.ID)
	}
	o.lock.Lock()
	defer o.lock.Unlock()
	o.Enqueued = append(o.Enqueued, message)
	return nil
}

func (o *FakeOutbox) EnqueuedCount() int {
	o.lock.Lock()
	defer o.lock.Unlock()
	return len(o.Enqueued)
}

func (o *FakeOutbox) LastEnqueued() Message {
	o.lock.Lock()
	defer o.lock.Unlock()
	l := len(o.Enqueued)
	if l == 0 {
		panic("Enqueued count is 0.")
	}
	return o.Enqueued[l-1]
}

type FakeSender struct {
	Sent        []Message
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) Send(ctx context.Context, message Message) error {
	if s.ReturnError {
		return fmt.Errorf("could not send message %v", message.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, message)
	return nil
}

func (s *FakeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}
