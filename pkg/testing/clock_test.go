package testing

import (
	"testing"
	"time"

	"github.com/go-drift/lattice/pkg/core"
)

func TestFakeClock(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()

	if got := c.Advance(time.Second); !got.Equal(start.Add(time.Second)) {
		t.Errorf("Advance: got %v", got)
	}
	if got := c.AdvanceTo(start); !got.Equal(start.Add(time.Second)) {
		t.Errorf("AdvanceTo should not go back, got %v", got)
	}
	later := start.Add(time.Minute)
	if got := c.AdvanceTo(later); !got.Equal(later) {
		t.Errorf("AdvanceTo: got %v", got)
	}
}

func TestFakeClockDue(t *testing.T) {
	c := NewFakeClock()
	now := c.Now()

	tests := []struct {
		name   string
		req    core.RedrawRequest
		want   time.Time
		wantOK bool
	}{
		{"wait", core.RedrawWait(), time.Time{}, false},
		{"next frame", core.RedrawNextFrame(), now.Add(FrameDuration), true},
		{"scheduled", core.RedrawAt(now.Add(time.Second)), now.Add(time.Second), true},
		{"overdue", core.RedrawAt(now.Add(-time.Second)), now, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Due(tt.req)
			if ok != tt.wantOK || !got.Equal(tt.want) {
				t.Errorf("got (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUnifiedDiff(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		actual   string
		want     string
	}{
		{"changed", "a\nb", "a\nc", "--- expected\n+++ actual\n-b\n+c\n"},
		{"added", "a", "a\nb", "--- expected\n+++ actual\n+b\n"},
		{"equal", "a", "a", "--- expected\n+++ actual\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unifiedDiff(tt.expected, tt.actual); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
