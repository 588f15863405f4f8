package exercise

import (
	"math"
	"testing"
)

func TestAngleBufferMean(t *testing.T) {
	b := newAngleBuffer(5)
	if b.Mean() != 0 {
		t.Errorf("empty mean = %v, want 0", b.Mean())
	}

	b.Push(10)
	b.Push(20)
	b.Push(30)
	if got := b.Mean(); math.Abs(got-20) > 1e-9 {
		t.Errorf("mean = %v, want 20", got)
	}
	if b.Len() != 3 {
		t.Errorf("len = %d, want 3", b.Len())
	}
}

func TestAngleBufferEviction(t *testing.T) {
	b := newAngleBuffer(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		b.Push(v)
	}

	if b.Len() != 3 {
		t.Errorf("len = %d, want capacity 3", b.Len())
	}
	// Oldest samples (1, 2) evicted; mean of 3, 4, 5.
	if got := b.Mean(); math.Abs(got-4) > 1e-9 {
		t.Errorf("mean = %v, want 4", got)
	}
}

func TestAngleBufferReset(t *testing.T) {
	b := newAngleBuffer(3)
	b.Push(10)
	b.Push(20)
	b.Reset()

	if b.Len() != 0 {
		t.Errorf("len after reset = %d, want 0", b.Len())
	}
	b.Push(42)
	if got := b.Mean(); got != 42 {
		t.Errorf("mean after reset = %v, want 42", got)
	}
}

func TestNewAngleBufferBadCapacity(t *testing.T) {
	b := newAngleBuffer(0)
	for i := 0; i < 10; i++ {
		b.Push(float64(i))
	}
	if b.Len() != DefaultSmoothingWindow {
		t.Errorf("len = %d, want default capacity %d", b.Len(), DefaultSmoothingWindow)
	}
}
