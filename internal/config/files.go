package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DiscoverFiles walks rootPath (a file or directory) and returns every
// source file matching c.Extensions, minus anything matching c.Exclude.
// If rootPath names a file directly, it is returned as-is regardless of
// extension — an explicit path always wins.
func (c *Config) DiscoverFiles(rootPath string) ([]string, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{rootPath}, nil
	}

	excluded := make(map[string]bool)
	for _, pattern := range c.Exclude {
		matches, err := expandGlob(joinIfRelative(rootPath, pattern))
		if err != nil {
			continue
		}
		for _, m := range matches {
			excluded[m] = true
		}
	}

	var results []string
	err = filepath.Walk(rootPath, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if fi.IsDir() {
			return nil
		}
		if excluded[path] {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range c.Extensions {
			if ext == strings.ToLower(want) {
				results = append(results, path)
				break
			}
		}
		return nil
	})
	return results, err
}

func joinIfRelative(root, pattern string) string {
	if filepath.IsAbs(pattern) {
		return pattern
	}
	return filepath.Join(root, pattern)
}

// expandGlob expands a glob pattern, handling ** for recursive matching the
// same way the teacher repo's library-file resolver did.
func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return expandDoubleStarGlob(pattern)
	}
	return filepath.Glob(pattern)
}

func expandDoubleStarGlob(pattern string) ([]string, error) {
	var results []string

	parts := strings.SplitN(pattern, "**", 2)
	if len(parts) != 2 {
		return filepath.Glob(pattern)
	}

	baseDir := filepath.Clean(parts[0])
	if baseDir == "" {
		baseDir = "."
	}
	suffix := strings.TrimPrefix(parts[1], string(filepath.Separator))

	err := filepath.Walk(baseDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return nil
		}
		if suffix == "" {
			results = append(results, path)
			return nil
		}
		relPath, err := filepath.Rel(baseDir, path)
		if err != nil {
			return nil
		}
		if matchSuffix(relPath, suffix) {
			results = append(results, path)
		}
		return nil
	})
	return results, err
}

func matchSuffix(path, pattern string) bool {
	pattern = strings.TrimPrefix(pattern, string(filepath.Separator))

	if !strings.Contains(pattern, string(filepath.Separator)) {
		matched, _ := filepath.Match(pattern, filepath.Base(path))
		return matched
	}

	if matched, _ := filepath.Match(pattern, path); matched {
		return true
	}

	if len(path) > len(pattern) {
		suffix := path[len(path)-len(pattern):]
		matched, _ := filepath.Match(pattern, suffix)
		return matched
	}
	return false
}
