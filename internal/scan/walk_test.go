package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWalk_FiltersByExtension(t *testing.T) {
	root := t.TempDir()

	touch(t, filepath.Join(root, "a.ttf"))
	touch(t, filepath.Join(root, "nested", "deeper", "b.OTF"))
	touch(t, filepath.Join(root, "nested", "c.ttc"))
	touch(t, filepath.Join(root, "readme.txt"))
	touch(t, filepath.Join(root, "font.woff"))

	got, err := Walk(root, nil)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{
		filepath.Join(root, "a.ttf"),
		filepath.Join(root, "nested", "c.ttc"),
		filepath.Join(root, "nested", "deeper", "b.OTF"),
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d files, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("File %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestWalk_CustomExtensions(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.ttf"))
	touch(t, filepath.Join(root, "b.woff"))

	got, err := Walk(root, []string{"woff"})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "b.woff" {
		t.Errorf("Expected only b.woff, got %v", got)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Error("Expected error for missing root, got nil")
	}
}

func TestHasFontExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"a.ttf", true},
		{"a.TTC", true},
		{"a.otc", true},
		{"a.ttf.bak", false},
		{"ttf", false},
	}

	for _, test := range tests {
		if got := HasFontExtension(test.path, nil); got != test.expected {
			t.Errorf("HasFontExtension(%s) = %v, expected %v", test.path, got, test.expected)
		}
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}
