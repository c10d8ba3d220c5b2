package statusbar

import (
	"strings"
	"testing"

	"codeplace/internal/tui/state"
)

func TestView(t *testing.T) {
	s := state.UIState{Label: "x.py", Language: "Python", Tabs: 2, RunTarget: "/p/main.py", Notice: "saved"}
	out := NewStatusBar().View(s, "[Modified]")
	for _, w := range []string{"x.py", "[Modified]", "Python", "Tabs:2", "Run:main.py", "saved"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in %q", w, out)
		}
	}
	if out := NewStatusBar().View(state.UIState{}, ""); !strings.HasPrefix(out, "No document") {
		t.Fatalf("unexpected empty status %q", out)
	}
}
