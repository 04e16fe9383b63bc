package testutil

import (
	"testing"
	"time"
)

func TestFrozenClock_NowIsStable(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	clock := NewFrozenClock(at)

	for i := 0; i < 3; i++ {
		if got := clock.Now(); !got.Equal(at) {
			t.Errorf("Now() call %d = %v, want %v", i, got, at)
		}
	}
}

func TestFrozenClock_Advance(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	clock := NewFrozenClock(at)

	clock.Advance(time.Hour)

	want := at.Add(time.Hour)
	if got := clock.Now(); !got.Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", got, want)
	}
}
