package timer

import (
	"testing"
)

// advance steps the clock n times without a real tick loop.
func advance(t *Tracker, n int) {
	for i := 0; i < n; i++ {
		t.step()
	}
}

func TestStart_RejectsNonPositiveBudget(t *testing.T) {
	tr := New(Callbacks{})
	if err := tr.Start(0); err == nil {
		t.Error("expected error for zero budget")
	}
	if err := tr.Start(-5); err == nil {
		t.Error("expected error for negative budget")
	}
}

func TestOvertime_AfterBudgetExceeded(t *testing.T) {
	tr := New(Callbacks{})
	if err := tr.prime(60); err != nil {
		t.Fatal(err)
	}

	advance(tr, 60)
	if tr.Snapshot().Overtime {
		t.Error("expected no overtime at exactly the budget")
	}

	advance(tr, 1)
	snap := tr.Snapshot()
	if !snap.Overtime {
		t.Error("expected overtime after 61 ticks on a 60s budget")
	}
	if got := snap.RemainingSeconds(); got != 0 {
		t.Errorf("RemainingSeconds = %d, want 0", got)
	}
	if got := snap.Progress(); got != 100 {
		t.Errorf("Progress = %v, want 100", got)
	}
}

func TestAutoSubmit_FiresExactlyOnce(t *testing.T) {
	fired := 0
	tr := New(Callbacks{OnAutoSubmit: func() { fired++ }})
	if err := tr.prime(60); err != nil {
		t.Fatal(err)
	}

	advance(tr, 119)
	if fired != 0 {
		t.Fatalf("auto-submit fired %d times before 2x budget", fired)
	}

	advance(tr, 1)
	if fired != 1 {
		t.Fatalf("auto-submit fired %d times at 120 ticks, want 1", fired)
	}

	advance(tr, 10)
	if fired != 1 {
		t.Errorf("auto-submit fired %d times after 130 ticks, want exactly 1", fired)
	}
	if got := tr.Snapshot().ElapsedSeconds; got != 130 {
		t.Errorf("ElapsedSeconds = %d, want 130 (loop keeps running)", got)
	}
}

func TestRestart_ResetsAutoSubmit(t *testing.T) {
	fired := 0
	tr := New(Callbacks{OnAutoSubmit: func() { fired++ }})
	if err := tr.prime(10); err != nil {
		t.Fatal(err)
	}
	advance(tr, 20)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}

	if err := tr.prime(10); err != nil {
		t.Fatal(err)
	}
	if got := tr.Snapshot().ElapsedSeconds; got != 0 {
		t.Errorf("elapsed after restart = %d, want 0", got)
	}
	advance(tr, 20)
	if fired != 2 {
		t.Errorf("fired = %d after second run, want 2", fired)
	}
}

func TestStop_ReturnsFinalSnapshotAndIsIdempotent(t *testing.T) {
	tr := New(Callbacks{})
	if err := tr.prime(30); err != nil {
		t.Fatal(err)
	}
	advance(tr, 12)

	snap := tr.Stop()
	if snap.ElapsedSeconds != 12 {
		t.Errorf("ElapsedSeconds = %d, want 12", snap.ElapsedSeconds)
	}
	if tr.Running() {
		t.Error("expected tracker stopped after Stop")
	}

	// Stop and Reset on a stopped tracker must be no-ops, not panics.
	tr.Stop()
	tr.Reset()
	if got := tr.Snapshot().ElapsedSeconds; got != 0 {
		t.Errorf("elapsed after Reset = %d, want 0", got)
	}
}

func TestStep_IgnoredWhenStopped(t *testing.T) {
	tr := New(Callbacks{})
	if err := tr.prime(30); err != nil {
		t.Fatal(err)
	}
	tr.Stop()
	advance(tr, 5)
	if got := tr.Snapshot().ElapsedSeconds; got != 0 {
		t.Errorf("elapsed = %d, want 0 (steps after stop ignored)", got)
	}
}

func TestTickCallback_PanicIsolated(t *testing.T) {
	ticks := 0
	tr := New(Callbacks{OnTick: func(Snapshot) {
		ticks++
		panic("consumer bug")
	}})
	if err := tr.prime(10); err != nil {
		t.Fatal(err)
	}

	advance(tr, 3)
	if ticks != 3 {
		t.Errorf("ticks = %d, want 3 (panics must not stop the loop)", ticks)
	}
	if got := tr.Snapshot().ElapsedSeconds; got != 3 {
		t.Errorf("elapsed = %d, want 3", got)
	}
}

func TestSnapshot_ProgressGuardsZeroBudget(t *testing.T) {
	s := Snapshot{ExpectedSeconds: 0, ElapsedSeconds: 10}
	if got := s.Progress(); got != 0 {
		t.Errorf("Progress with zero budget = %v, want 0", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{600, "10:00"},
		{-3, "0:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.seconds); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
