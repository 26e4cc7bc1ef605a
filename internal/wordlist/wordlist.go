package wordlist

import (
	"os"
	"strings"
)

// ReadFile reads a newline-separated word list: one token per line,
// everything after a '#' discarded, surrounding whitespace trimmed,
// empty lines dropped.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		token := strings.TrimSpace(line)
		if token == "" {
			continue
		}
		words = append(words, token)
	}
	return words, nil
}

// ExpandTilde replaces a leading "~/" with the HOME directory. Paths
// without the prefix, or without HOME set, pass through unchanged.
func ExpandTilde(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home := os.Getenv("HOME")
	if home == "" {
		return path
	}
	return strings.TrimRight(home, "/") + "/" + rest
}
