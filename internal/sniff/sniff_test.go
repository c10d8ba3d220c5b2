package sniff

import (
	"testing"

	"github.com/spf13/afero"
)

func TestIsBinary(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string][]byte{
		"/a/main.go":   []byte("package main\n\nfunc main() {}\n"),
		"/a/conf.json": []byte(`{"a": 1}`),
		"/a/logo.png":  {0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'},
		"/a/blob.bin":  {0x00, 0x01, 0x02, 0x00, 0xff, 0xfe},
		"/a/empty":     {},
	}
	for name, data := range files {
		if err := afero.WriteFile(fs, name, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	s := New(fs)
	cases := []struct {
		path string
		want bool
	}{
		{"/a/main.go", false},
		{"/a/conf.json", false},
		{"/a/logo.png", true},
		{"/a/blob.bin", true},
		{"/a/empty", false},
		{"/a/missing", false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			if got := s.IsBinary(c.path); got != c.want {
				t.Fatalf("IsBinary(%s) = %v, want %v", c.path, got, c.want)
			}
		})
	}
}
