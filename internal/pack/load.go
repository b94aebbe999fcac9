package pack

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// LoadWords reads one word per line from the provided file path. Lines
// containing internal whitespace are skipped so every entry is a single
// typeable word.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !validWord(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadDir registers every .txt file in dir as a pack keyed by file name.
// A missing directory is not an error; builtin packs still apply.
func LoadDir(r *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read pack directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		path := filepath.Join(dir, name)
		words, err := LoadWords(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		packName := strings.TrimSuffix(name, ".txt")
		r.Add(Pack{
			Name:        packName,
			Description: fmt.Sprintf("%s (%d words)", path, len(words)),
			Words:       words,
		})
	}
	return nil
}

func validWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
