package document

import "testing"

func TestUntitledNaming(t *testing.T) {
	if got := Untitled(3); got != "Untitled-3" {
		t.Fatalf("Untitled(3) = %q", got)
	}
	cases := map[Identity]bool{
		"Untitled-1":      true,
		"Untitled-12":     true,
		"Untitled-":       false,
		"Untitled-0":      false,
		"Untitled-01":     false,
		"Untitled-x":      false,
		"/tmp/Untitled-1": false,
		"a.py":            false,
	}
	for id, want := range cases {
		if got := id.IsUntitled(); got != want {
			t.Fatalf("%q.IsUntitled() = %v, want %v", id, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := Label("/tmp/x.py", Code); got != "x.py" {
		t.Fatalf("label for code = %q", got)
	}
	if got := Label("Untitled-2", NewFile); got != "Untitled-2" {
		t.Fatalf("label for new file = %q", got)
	}
	if got := Label(WelcomeID, Welcome); got != "Welcome" {
		t.Fatalf("label for welcome = %q", got)
	}
}

func TestFromPathAndDir(t *testing.T) {
	if got := FromPath(" ./src/../a.py "); got != "a.py" {
		t.Fatalf("FromPath = %q", got)
	}
	if FromPath("   ") != "" {
		t.Fatalf("expected empty identity for blank path")
	}
	if d := Identity("/tmp/x.py").Dir(); d != "/tmp" {
		t.Fatalf("Dir = %q", d)
	}
	if d := Untitled(1).Dir(); d != "" {
		t.Fatalf("untitled should have no dir, got %q", d)
	}
}

func TestKindEditable(t *testing.T) {
	if !Code.Editable() || !NewFile.Editable() {
		t.Fatalf("code and new file must be editable")
	}
	if Unsupported.Editable() || Welcome.Editable() {
		t.Fatalf("placeholders must not be editable")
	}
}
