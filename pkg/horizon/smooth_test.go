package horizon

import "testing"

func TestSmoothBuffer_RejectsSpike(t *testing.T) {
	// A momentary outlier must not drag the smoothed value toward it.
	b := newSmoothBuffer(5)

	var got float64
	for _, v := range []float64{100, 102, 101, 150, 101} {
		got = b.push(v)
	}

	if got != 101 {
		t.Errorf("smoothed value: got %v, want 101 (median ignores the 150 spike)", got)
	}
}

func TestSmoothBuffer_BoundedEviction(t *testing.T) {
	b := newSmoothBuffer(3)

	for _, v := range []float64{10, 20, 30, 40, 50} {
		b.push(v)
	}

	if b.len() != 3 {
		t.Fatalf("buffer length: got %d, want 3", b.len())
	}
	// Contents are now [30, 40, 50]; median 40.
	if got := b.push(40); got != 40 {
		t.Errorf("median after eviction: got %v, want 40", got)
	}
}

func TestSmoothBuffer_EvenCountLowerMedian(t *testing.T) {
	// Even counts take the element at floor(n/2) after sorting, no
	// interpolation: [10, 20] -> 20.
	b := newSmoothBuffer(5)
	b.push(10)
	if got := b.push(20); got != 20 {
		t.Errorf("even-count median: got %v, want 20", got)
	}
}

func TestSmoothBuffer_SingleSample(t *testing.T) {
	b := newSmoothBuffer(5)
	if got := b.push(42); got != 42 {
		t.Errorf("single-sample median: got %v, want 42", got)
	}
}

func TestSmoothBuffer_Reset(t *testing.T) {
	b := newSmoothBuffer(5)
	b.push(1)
	b.push(2)
	b.reset()

	if b.len() != 0 {
		t.Fatalf("length after reset: got %d, want 0", b.len())
	}
	if got := b.push(7); got != 7 {
		t.Errorf("median after reset: got %v, want 7", got)
	}
}
