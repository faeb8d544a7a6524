package horizon

import "sort"

// smoothBuffer is a bounded FIFO of recent scalar samples for one
// channel. Pushing beyond capacity evicts the oldest sample. The median
// rejects single-frame spikes without the lag of an average.
type smoothBuffer struct {
	samples []float64
	cap     int
}

func newSmoothBuffer(capacity int) *smoothBuffer {
	return &smoothBuffer{
		samples: make([]float64, 0, capacity),
		cap:     capacity,
	}
}

// push appends a sample, evicting the oldest on overflow, and returns
// the median of the buffer contents: the element at floor(n/2) after
// sorting, for odd and even counts alike.
func (b *smoothBuffer) push(v float64) float64 {
	if len(b.samples) >= b.cap {
		b.samples = b.samples[1:]
	}
	b.samples = append(b.samples, v)

	sorted := make([]float64, len(b.samples))
	copy(sorted, b.samples)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

func (b *smoothBuffer) len() int {
	return len(b.samples)
}

func (b *smoothBuffer) reset() {
	b.samples = b.samples[:0]
}
