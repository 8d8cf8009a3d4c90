package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// ValidateName trims name and checks it can be used as a file stem
func ValidateName(name string) (string, error) {
	trim := strings.TrimSpace(name)
	if trim == "" {
		return "", &InvalidNameError{Name: name, Reason: "empty name"}
	}
	if strings.ContainsAny(trim, `<>:"/\|?*`) || strings.ContainsRune(trim, filepath.Separator) {
		return "", &InvalidNameError{Name: name, Reason: "invalid characters"}
	}
	for _, r := range trim {
		if r < 0x20 {
			return "", &InvalidNameError{Name: name, Reason: "control characters"}
		}
	}
	if trim == "." || trim == ".." {
		return "", &InvalidNameError{Name: name, Reason: "reserved filename"}
	}
	base := strings.TrimSuffix(trim, filepath.Ext(trim))
	if reservedNames[strings.ToUpper(base)] {
		return "", &InvalidNameError{Name: name, Reason: "reserved filename"}
	}
	return trim, nil
}

// TargetPath returns <dir>/<newName><ext> for oldPath, appending _1, _2, ...
// to the stem while exists reports the candidate as taken. A candidate equal
// to oldPath is returned as is.
func TargetPath(oldPath, newName string, exists func(string) bool) string {
	if exists == nil {
		exists = pathExists
	}
	dir := filepath.Dir(oldPath)
	ext := filepath.Ext(oldPath)

	target := filepath.Join(dir, newName+ext)
	for counter := 1; target != oldPath && exists(target); counter++ {
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", newName, counter, ext))
	}
	return target
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
