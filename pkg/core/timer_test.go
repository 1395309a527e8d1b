package core

import (
	"testing"
	"time"
)

func TestMeasureReportsElapsed(t *testing.T) {
	var gotName string
	var gotElapsed time.Duration
	ran := false

	Measure("tick", func(name string, elapsed time.Duration) {
		gotName = name
		gotElapsed = elapsed
	}, func() {
		ran = true
		time.Sleep(time.Millisecond)
	})

	if !ran {
		t.Fatal("Measure did not run the operation")
	}
	if gotName != "tick" {
		t.Fatalf("observer saw name %q, expected \"tick\"", gotName)
	}
	if gotElapsed <= 0 {
		t.Fatalf("observer saw elapsed %v, expected > 0", gotElapsed)
	}
}

func TestMeasureNilObserver(t *testing.T) {
	ran := false
	Measure("tick", nil, func() { ran = true })
	if !ran {
		t.Fatal("Measure with nil observer did not run the operation")
	}
}
