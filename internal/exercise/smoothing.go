package exercise

import "gonum.org/v1/gonum/stat"

// DefaultSmoothingWindow is the angle-history capacity used when a profile
// enables smoothing without choosing its own window.
const DefaultSmoothingWindow = 5

// angleBuffer is a fixed-capacity ring of recent raw angles. The oldest
// sample is overwritten once the buffer is full, so the history length never
// exceeds the configured capacity.
type angleBuffer struct {
	samples  []float64
	capacity int
	head     int // Next write position
	size     int // Current number of samples stored
}

func newAngleBuffer(capacity int) *angleBuffer {
	if capacity < 1 {
		capacity = DefaultSmoothingWindow
	}
	return &angleBuffer{
		samples:  make([]float64, capacity),
		capacity: capacity,
	}
}

// Push stores a new sample, evicting the oldest if at capacity.
func (b *angleBuffer) Push(v float64) {
	b.samples[b.head] = v
	b.head = (b.head + 1) % b.capacity
	if b.size < b.capacity {
		b.size++
	}
}

// Mean returns the arithmetic mean of the stored samples, or 0 if empty.
func (b *angleBuffer) Mean() float64 {
	if b.size == 0 {
		return 0
	}
	return stat.Mean(b.samples[:b.size], nil)
}

// Len returns the current number of stored samples.
func (b *angleBuffer) Len() int {
	return b.size
}

// Reset discards all stored samples without reallocating.
func (b *angleBuffer) Reset() {
	b.head = 0
	b.size = 0
}
