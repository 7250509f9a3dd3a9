package media

import (
	"context"
	"errors"
	"testing"
)

type fakeSource struct {
	frames int
	closed int
}

func (f *fakeSource) Frame(ctx context.Context) ([]byte, string, error) {
	f.frames++
	return []byte{0xff, 0xd8}, "image/jpeg", nil
}

func (f *fakeSource) Close() error {
	f.closed++
	return nil
}

func TestAcquireTearsDownPreviousStream(t *testing.T) {
	var sources []*fakeSource
	mgr := NewManager(func(ctx context.Context, consumer string) (FrameSource, error) {
		src := &fakeSource{}
		sources = append(sources, src)
		return src, nil
	})

	first, err := mgr.Acquire(context.Background(), "exam")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	second, err := mgr.Acquire(context.Background(), "tutor")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if sources[0].closed != 1 {
		t.Errorf("first source closed %d times, want 1", sources[0].closed)
	}
	if _, _, err := first.Grab(context.Background()); !errors.Is(err, ErrStreamReleased) {
		t.Errorf("Grab on torn-down stream: err = %v, want ErrStreamReleased", err)
	}
	if _, _, err := second.Grab(context.Background()); err != nil {
		t.Errorf("Grab on active stream: %v", err)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	src := &fakeSource{}
	mgr := NewManager(func(ctx context.Context, consumer string) (FrameSource, error) {
		return src, nil
	})

	s, err := mgr.Acquire(context.Background(), "exam")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	s.Release()
	s.Release()
	s.Release()

	if src.closed != 1 {
		t.Errorf("source closed %d times, want 1", src.closed)
	}
	if mgr.Active() {
		t.Error("manager still reports an active stream after release")
	}
}

func TestAcquireWithoutOpener(t *testing.T) {
	mgr := NewManager(nil)
	if _, err := mgr.Acquire(context.Background(), "exam"); !errors.Is(err, ErrNoDevice) {
		t.Errorf("err = %v, want ErrNoDevice", err)
	}
}
