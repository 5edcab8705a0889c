package main

import (
	"testing"
	"time"
)

func TestSweepInterval(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want time.Duration
	}{
		{2 * time.Hour, 30 * time.Minute},
		{8 * time.Minute, 2 * time.Minute},
		{2 * time.Minute, time.Minute},
		{time.Second, time.Minute},
	}
	for _, tt := range tests {
		if got := sweepInterval(tt.ttl); got != tt.want {
			t.Fatalf("sweepInterval(%s) = %s, want %s", tt.ttl, got, tt.want)
		}
	}
}
