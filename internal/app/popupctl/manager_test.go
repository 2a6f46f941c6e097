package popupctl

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tidy/internal/ui/popup"
	"github.com/llehouerou/tidy/internal/ui/testutil"
)

type stubLayer struct {
	key    string
	body   string
	keys   []string
	clicks int
}

func (s *stubLayer) Key() string { return s.key }

func (s *stubLayer) Render(width, height int) popup.Placement {
	return popup.Center(s.body, width, height)
}

func (s *stubLayer) HandleKey(msg tea.KeyMsg) tea.Cmd {
	s.keys = append(s.keys, msg.String())
	return nil
}

func (s *stubLayer) HandleMouse(tea.MouseMsg) tea.Cmd {
	s.clicks++
	return nil
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func click() tea.MouseMsg {
	return tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func newManager() *Manager {
	m := New(nil)
	m.SetSize(40, 10)
	return m
}

func TestRoute_NoLayers(t *testing.T) {
	m := newManager()

	handled, cmd := m.Route(key('x'))

	if handled || cmd != nil {
		t.Error("empty surface must not handle input")
	}
	if m.Active() {
		t.Error("empty surface must not be active")
	}
}

func TestRoute_NilLayersSkipped(t *testing.T) {
	m := newManager()

	handled, _ := m.Route(key('x'), nil, nil)

	if handled {
		t.Error("nil layers must be ignored")
	}
}

func TestRoute_TopmostOnly(t *testing.T) {
	m := newManager()
	a := &stubLayer{key: "delete"}
	b := &stubLayer{key: "clear"}

	m.Sync(a)
	handled, _ := m.Route(key('y'), a, b)

	if !handled {
		t.Fatal("expected key handled")
	}
	if len(a.keys) != 0 {
		t.Errorf("lower layer got keys %v", a.keys)
	}
	if !slices.Equal(b.keys, []string{"y"}) {
		t.Errorf("top layer keys = %v, want [y]", b.keys)
	}
}

func TestSync_MostRecentlyOpenedOnTop(t *testing.T) {
	m := newManager()
	a := &stubLayer{key: "delete"}
	b := &stubLayer{key: "clear"}

	// Host order does not matter: b was opened after a.
	m.Sync(a)
	m.Sync(b, a)
	if got := m.Keys(); !slices.Equal(got, []string{"delete", "clear"}) {
		t.Errorf("Keys() = %v, want [delete clear]", got)
	}

	// a closes and reopens: it returns on top.
	m.Sync(b)
	m.Sync(a, b)
	if got := m.Keys(); !slices.Equal(got, []string{"clear", "delete"}) {
		t.Errorf("Keys() = %v, want [clear delete]", got)
	}
	if m.Top() != a {
		t.Error("reopened layer must be on top")
	}

	m.Sync()
	if m.Top() != nil || len(m.Keys()) != 0 {
		t.Error("no layers must leave an empty surface")
	}
}

func TestRoute_Mouse(t *testing.T) {
	m := newManager()
	a := &stubLayer{key: "delete"}
	b := &stubLayer{key: "clear"}
	m.Sync(a)

	handled, _ := m.Route(click(), a, b)

	if !handled || b.clicks != 1 || a.clicks != 0 {
		t.Errorf("handled=%v clicks a=%d b=%d, want top only", handled, a.clicks, b.clicks)
	}
}

func TestRoute_IgnoresOtherMessages(t *testing.T) {
	m := newManager()
	a := &stubLayer{key: "delete"}

	handled, _ := m.Route(tea.WindowSizeMsg{Width: 10, Height: 10}, a)

	if handled {
		t.Error("non-input messages are not consumed")
	}
}

func TestErrorNotice(t *testing.T) {
	t.Run("dismissed by any key", func(t *testing.T) {
		m := newManager()
		a := &stubLayer{key: "delete"}
		m.ShowError("database is locked")

		handled, _ := m.Route(key('q'), a)
		if !handled || m.ErrorMsg() != "" {
			t.Error("first key must dismiss the notice")
		}
		if len(a.keys) != 0 {
			t.Error("dismissing key must not reach the layer")
		}

		m.Route(key('n'), a)
		if !slices.Equal(a.keys, []string{"n"}) {
			t.Errorf("layer keys = %v, want [n]", a.keys)
		}
	})

	t.Run("dismissed by click", func(t *testing.T) {
		m := newManager()
		m.ShowError("boom")

		m.Route(tea.MouseMsg{Action: tea.MouseActionMotion})
		if m.ErrorMsg() == "" {
			t.Fatal("motion must not dismiss")
		}
		handled, _ := m.Route(click())
		if !handled || m.ErrorMsg() != "" {
			t.Error("click must dismiss the notice")
		}
	})

	t.Run("active without layers", func(t *testing.T) {
		m := newManager()
		m.ShowError("boom")
		if !m.Active() {
			t.Error("notice makes the surface active")
		}
		m.ClearError()
		if m.Active() {
			t.Error("ClearError must dismiss")
		}
	})
}

func TestRenderOverlay_NoLayersKeepsBase(t *testing.T) {
	m := newManager()
	base := "\x1b[1mplaylists\x1b[0m"

	if got := m.RenderOverlay(base); got != base {
		t.Errorf("RenderOverlay() = %q, want base unchanged", got)
	}
}

func TestRenderOverlay_StacksLayers(t *testing.T) {
	m := newManager()
	a := &stubLayer{key: "delete", body: "AAAAAAAA\nAAAAAAAA"}
	b := &stubLayer{key: "clear", body: "BBBB"}
	m.Sync(a)

	out := m.RenderOverlay("base line", a, b)

	lines := strings.Split(testutil.StripANSI(out), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[0], "base line") {
		t.Errorf("line 0 = %q, want dimmed base", lines[0])
	}
	// a spans rows 4-5, b sits on row 4 over a's center.
	if got := lines[4]; !strings.Contains(got, "AABBBBAA") {
		t.Errorf("row 4 = %q, want b over a", got)
	}
	if got := lines[5]; !strings.Contains(got, "AAAAAAAA") {
		t.Errorf("row 5 = %q, want a", got)
	}
}

func TestRenderOverlay_ErrorOnTop(t *testing.T) {
	m := newManager()
	m.ShowError("disk full")

	out := m.RenderOverlay("base", &stubLayer{key: "delete", body: "dialog"})

	for _, want := range []string{"Error", "disk full", "Press any key to dismiss"} {
		if msg := testutil.AssertContains(out, want); msg != "" {
			t.Error(msg)
		}
	}
}
