package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) work(d time.Duration) { c.now = c.now.Add(d) }

func TestFramePacerSleepsRemainder(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	fp := NewFramePacer(8, clock)
	if fp.Budget() != 125*time.Millisecond {
		t.Fatalf("budget %v, want 125ms", fp.Budget())
	}

	fp.Begin()
	clock.work(40 * time.Millisecond)
	if got := fp.Finish(); got != 40*time.Millisecond {
		t.Fatalf("measured %v, want 40ms", got)
	}
	if len(clock.slept) != 1 || clock.slept[0] != 85*time.Millisecond {
		t.Fatalf("slept %v, want [85ms]", clock.slept)
	}
	if fp.Last() != 40*time.Millisecond {
		t.Fatalf("Last = %v", fp.Last())
	}
}

func TestFramePacerLateFrameDoesNotSleep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	fp := NewFramePacer(8, clock)
	for _, work := range []time.Duration{125 * time.Millisecond, 300 * time.Millisecond} {
		fp.Begin()
		clock.work(work)
		fp.Finish()
	}
	if len(clock.slept) != 0 {
		t.Fatalf("late frames slept %v", clock.slept)
	}
}

func TestFramePacerDefaultsFPS(t *testing.T) {
	fp := NewFramePacer(0, nil)
	if fp.Budget() != 125*time.Millisecond {
		t.Fatalf("budget %v, want 125ms", fp.Budget())
	}
	fp.SetFPS(50)
	if fp.Budget() != 20*time.Millisecond {
		t.Fatalf("budget %v, want 20ms", fp.Budget())
	}
}

func TestRNGChanceClamps(t *testing.T) {
	r := NewRNG(5)
	for i := 0; i < 100; i++ {
		if r.Chance(0) || r.Chance(-1) {
			t.Fatal("Chance(<=0) returned true")
		}
		if !r.Chance(1) || !r.Chance(2) {
			t.Fatal("Chance(>=1) returned false")
		}
	}
}
