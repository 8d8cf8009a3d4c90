package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the font file extensions picked up by a scan
var DefaultExtensions = []string{".ttf", ".otf", ".ttc", ".otc"}

// Walk returns every font file under root whose extension is in exts
// (case-insensitive). Unreadable directories are skipped. Output is sorted.
func Walk(root string, exts []string) ([]string, error) {
	root = filepath.Clean(root)
	allowed := extensionSet(exts)

	files := make([]string, 0, 64)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(d.Name()))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// HasFontExtension reports whether path has one of exts (case-insensitive)
func HasFontExtension(path string, exts []string) bool {
	_, ok := extensionSet(exts)[strings.ToLower(filepath.Ext(path))]
	return ok
}

func extensionSet(exts []string) map[string]struct{} {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
