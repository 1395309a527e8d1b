package core

import (
	"slices"
	"testing"
)

func TestFillWeightedDeterministic(t *testing.T) {
	a := make([]Cell, 256)
	b := make([]Cell, 256)
	FillWeighted(NewRNG(42).Source(), a, 0.2)
	FillWeighted(NewRNG(42).Source(), b, 0.2)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}

	FillWeighted(NewRNG(43).Source(), b, 0.2)
	if slices.Equal(a, b) {
		t.Fatal("different seeds produced identical fills")
	}
}

func TestFillWeightedExtremes(t *testing.T) {
	buf := make([]Cell, 64)
	FillWeighted(NewRNG(1).Source(), buf, 1)
	for i, c := range buf {
		if c != Alive {
			t.Fatalf("cell %d dead with p=1", i)
		}
	}
	FillWeighted(NewRNG(1).Source(), buf, 0)
	for i, c := range buf {
		if c != Dead {
			t.Fatalf("cell %d alive with p=0", i)
		}
	}
}
