package faultinject

import (
	"testing"
	"time"
)

func TestDelay(t *testing.T) {
	tests := []struct {
		n    int64
		want time.Duration
	}{
		{0, 0},
		{1, 500 * time.Millisecond},
		{2, time.Second},
		{3, 1500 * time.Millisecond},
		{19, 9500 * time.Millisecond},
		{20, 10 * time.Second},
		{29, 14500 * time.Millisecond},
		{30, 15 * time.Second},
		{31, 15 * time.Second},
		{1000000, 15 * time.Second},
	}

	for _, tt := range tests {
		if got := Delay(tt.n); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestDelayMonotonicAndCapped(t *testing.T) {
	prev := time.Duration(0)
	for n := int64(0); n <= 100; n++ {
		d := Delay(n)
		if d < prev {
			t.Fatalf("Delay(%d) = %v, decreased from %v", n, d, prev)
		}
		if d > delayCap {
			t.Fatalf("Delay(%d) = %v exceeds cap %v", n, d, delayCap)
		}
		prev = d
	}
}

func TestFormatDelay(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00.000"},
		{500 * time.Millisecond, "00:00:00.500"},
		{1500 * time.Millisecond, "00:00:01.500"},
		{10 * time.Second, "00:00:10.000"},
		{15 * time.Second, "00:00:15.000"},
		{90 * time.Second, "00:01:30.000"},
		{time.Hour + time.Minute + time.Second + 250*time.Millisecond, "01:01:01.250"},
	}

	for _, tt := range tests {
		if got := formatDelay(tt.d); got != tt.want {
			t.Errorf("formatDelay(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestWaitSuffix(t *testing.T) {
	got := waitSuffix(1500 * time.Millisecond)
	want := "; WAIT 00:00:01.500"
	if got != want {
		t.Errorf("waitSuffix = %q, want %q", got, want)
	}
}
