package state

import "testing"

func TestToggleHelpHidesDiff(t *testing.T) {
	s := UIState{ShowDiff: true}
	s = ToggleHelp(s)
	if !s.ShowHelp || s.ShowDiff {
		t.Fatalf("expected help only, got %+v", s)
	}
	s = ToggleDiff(s)
	if s.ShowHelp || !s.ShowDiff {
		t.Fatalf("expected diff only, got %+v", s)
	}
	s = CloseOverlays(s)
	if s.ShowHelp || s.ShowDiff {
		t.Fatalf("expected no overlay")
	}
}

func TestToggleView(t *testing.T) {
	s := UIState{View: Unified}
	s = ToggleView(s)
	if s.View != SideBySide {
		t.Fatalf("expected SideBySide view")
	}
}

func TestResizeFallbackToUnified(t *testing.T) {
	s := UIState{View: SideBySide, MinCol: 20}
	s = Resize(s, 30, 10) // threshold = 2*20+3 = 43; 30 < 43 => unified
	if s.View != Unified {
		t.Fatalf("expected Unified after resize fallback")
	}
	if s.Notice == "" {
		t.Fatalf("expected fallback notice to be set")
	}
	if s.Height != 10 {
		t.Fatalf("expected height 10, got %d", s.Height)
	}
}

func TestPrompt(t *testing.T) {
	s := OpenPromptFor(UIState{}, SavePrompt)
	if s.Prompt != SavePrompt {
		t.Fatalf("expected save prompt")
	}
	if s = ClosePrompt(s); s.Prompt != NoPrompt {
		t.Fatalf("expected prompt closed")
	}
}

func TestSelectClearsDiffWhenEmpty(t *testing.T) {
	s := UIState{ShowDiff: true}
	s = Select(s, Document{Label: "a.py", Modified: true}, 1)
	if s.Label != "a.py" || !s.Modified || s.Tabs != 1 || !s.ShowDiff {
		t.Fatalf("unexpected state %+v", s)
	}
	s = Select(s, Document{}, 0)
	if s.Label != "" || s.ShowDiff {
		t.Fatalf("expected cleared state, got %+v", s)
	}
}

func TestSetRunTarget(t *testing.T) {
	s := SetRunTarget(UIState{}, "/p/main.py")
	if s.RunTarget != "/p/main.py" || s.Notice == "" {
		t.Fatalf("unexpected state %+v", s)
	}
}
