package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == b {
		t.Errorf("two seeds are equal: %d", a)
	}
}

func TestNewFixedSeedIsReproducible(t *testing.T) {
	r1, s1, err := New(42)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r2, _, _ := New(42)
	if s1 != 42 {
		t.Errorf("seed = %d, want 42", s1)
	}
	for i := 0; i < 10; i++ {
		if a, b := r1.Int63(), r2.Int63(); a != b {
			t.Fatalf("draw %d differs: %d vs %d", i, a, b)
		}
	}
}

func TestNewZeroSeedDrawsOne(t *testing.T) {
	r, seed, err := New(0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r == nil || seed == 0 {
		t.Errorf("rng %v seed %d, want a crypto seed", r, seed)
	}
}
