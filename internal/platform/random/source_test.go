package random

import (
	"slices"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	src := NewSeeded(42)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	shuffled := slices.Clone(items)
	Shuffle(src, shuffled)
	slices.Sort(shuffled)
	if !slices.Equal(items, shuffled) {
		t.Fatalf("shuffle lost elements: %v", shuffled)
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a := []string{"a", "b", "c", "d"}
	b := slices.Clone(a)
	Shuffle(NewSeeded(7), a)
	Shuffle(NewSeeded(7), b)
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different orders: %v vs %v", a, b)
	}
}

func TestCryptoSourceBounds(t *testing.T) {
	src := NewCrypto()
	for i := 0; i < 100; i++ {
		if got := src.IntN(4); got < 0 || got >= 4 {
			t.Fatalf("value out of range: %d", got)
		}
	}
	if got := src.IntN(1); got != 0 {
		t.Fatalf("expected 0 for n=1, got %d", got)
	}
	if got := Pick(src, []string{"only"}); got != "only" {
		t.Fatalf("unexpected pick: %s", got)
	}
}
