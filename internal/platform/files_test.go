package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.ttf")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("")
	if err == nil {
		t.Fatal("Expected error for empty path, got nil")
	}
	if err.Error() != "file path is empty" {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestUserFontDirsForOS(t *testing.T) {
	home := filepath.Join("home", "user")

	tests := []struct {
		goos         string
		localAppData string
		xdgDataHome  string
		expected     []string
	}{
		{OSDarwin, "", "", []string{filepath.Join(home, "Library", "Fonts")}},
		{OSWindows, "", "", []string{filepath.Join(home, "AppData", "Local", "Microsoft", "Windows", "Fonts")}},
		{OSWindows, "L", "", []string{filepath.Join("L", "Microsoft", "Windows", "Fonts")}},
		{OSLinux, "", "", []string{filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts")}},
		{OSLinux, "", "X", []string{filepath.Join("X", "fonts"), filepath.Join(home, ".fonts")}},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"_"+tt.localAppData+tt.xdgDataHome, func(t *testing.T) {
			got := userFontDirs(tt.goos, home, tt.localAppData, tt.xdgDataHome)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Dir %d: expected %s, got %s", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestExistingDirs(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "file.ttf")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got := existingDirs([]string{tempDir, file, filepath.Join(tempDir, "missing")})
	if len(got) != 1 || got[0] != tempDir {
		t.Errorf("Expected only %s, got %v", tempDir, got)
	}
}

func TestDefaultJournalDir(t *testing.T) {
	dir, err := DefaultJournalDir()
	if err != nil {
		t.Skipf("No user config dir: %v", err)
	}
	if filepath.Base(dir) != "journals" || filepath.Base(filepath.Dir(dir)) != AppDirName {
		t.Errorf("Unexpected journal dir: %s", dir)
	}
}
