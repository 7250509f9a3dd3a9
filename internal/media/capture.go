// Package media manages the capture device used to photograph handwritten
// work. The device is an exclusive resource: acquiring it tears down whatever
// stream was open before, and release is always safe to call again.
package media

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrStreamReleased = errors.New("media: stream already released")
	ErrNoDevice       = errors.New("media: no capture device available")
)

// FrameSource produces encoded frames from an open device.
type FrameSource interface {
	Frame(ctx context.Context) (data []byte, mimeType string, err error)
	Close() error
}

// Opener opens the underlying device for a named consumer.
type Opener func(ctx context.Context, consumer string) (FrameSource, error)

type Manager struct {
	mu     sync.Mutex
	opener Opener
	active *Stream
}

func NewManager(opener Opener) *Manager {
	return &Manager{opener: opener}
}

// Acquire opens a stream for the consumer. Any previously active stream is
// released first, so at most one stream exists at a time.
func (m *Manager) Acquire(ctx context.Context, consumer string) (*Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.opener == nil {
		return nil, ErrNoDevice
	}
	if m.active != nil {
		m.releaseLocked(m.active)
	}

	src, err := m.opener(ctx, consumer)
	if err != nil {
		return nil, err
	}
	s := &Stream{mgr: m, consumer: consumer, src: src}
	m.active = s
	return s, nil
}

// Active reports whether a stream is currently open.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active != nil
}

func (m *Manager) releaseLocked(s *Stream) {
	if s.released {
		return
	}
	s.released = true
	_ = s.src.Close()
	if m.active == s {
		m.active = nil
	}
}

// Stream is one open capture session. All state is guarded by the manager's
// mutex so Release and Acquire cannot race.
type Stream struct {
	mgr      *Manager
	consumer string
	src      FrameSource
	released bool
}

func (s *Stream) Consumer() string { return s.consumer }

// Grab captures one encoded frame.
func (s *Stream) Grab(ctx context.Context) ([]byte, string, error) {
	s.mgr.mu.Lock()
	if s.released {
		s.mgr.mu.Unlock()
		return nil, "", ErrStreamReleased
	}
	src := s.src
	s.mgr.mu.Unlock()

	return src.Frame(ctx)
}

// Release closes the stream. Idempotent.
func (s *Stream) Release() {
	s.mgr.mu.Lock()
	defer s.mgr.mu.Unlock()
	s.mgr.releaseLocked(s)
}
