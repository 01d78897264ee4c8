package corpus

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// WalkDir recursively lists the regular files under dir whose extension is in
// extensions. Hidden files and directories are skipped. The returned order is
// the deterministic lexical walk order, which fixes the output record order
// for the whole run.
func WalkDir(dir string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if d.Type().IsRegular() && slices.Contains(extensions, ext) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return files, nil
}
