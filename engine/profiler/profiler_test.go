package profiler

import (
	"strings"
	"testing"
	"time"
)

func TestTickReportsOncePerInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	var lines []string

	p := NewProfiler(
		WithInterval(time.Second),
		WithClock(func() time.Time { return clock }),
		WithLogf(func(format string, args ...any) { lines = append(lines, format) }),
	)

	for range 59 {
		clock = clock.Add(10 * time.Millisecond)
		if p.Tick() {
			t.Fatal("must not report before the interval elapses")
		}
	}
	clock = time.Unix(2, 0)
	if !p.Tick() {
		t.Fatal("must report once the interval elapses")
	}

	s := p.Last()
	if s.Frames != 60 || s.FPS != 30 {
		t.Fatalf("Last() = %+v, want 60 frames at 30 FPS", s)
	}
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[Profiler]") {
		t.Fatalf("lines = %v", lines)
	}

	clock = clock.Add(100 * time.Millisecond)
	if p.Tick() {
		t.Fatal("counter must reset after a report")
	}
}
