package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdrill/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	updates int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "session"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "session" {
		t.Errorf("expected active 'session', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "session"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "session"})

	summary := &stubScreen{title: "summary"}
	r.Replace(summary)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "session"}
	r.Update(PushScreenMsg{Screen: s2})
	if r.Active().Title() != "session" {
		t.Fatalf("push message not handled, active %q", r.Active().Title())
	}

	s3 := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: s3})
	if r.Depth() != 2 || r.Active().Title() != "summary" {
		t.Fatalf("replace message not handled, depth %d active %q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "home" {
		t.Fatalf("pop message not handled, active %q", r.Active().Title())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	bottom := &stubScreen{title: "home"}
	top := &stubScreen{title: "session"}

	r := New(bottom)
	r.Push(top)
	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if top.updates != 1 {
		t.Errorf("expected active screen to receive the message, got %d", top.updates)
	}
	if bottom.updates != 0 {
		t.Errorf("expected inactive screen to receive nothing, got %d", bottom.updates)
	}
}
