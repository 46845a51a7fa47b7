// internal/game/words.go
package game

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"
)

// defaultWordList ships with the binary so a server can run without any
// external files. One codename per line.
//
//go:embed words.txt
var defaultWordList string

// DefaultWords returns the built-in codename list.
func DefaultWords() []string {
	return splitWords(strings.NewReader(defaultWordList))
}

// LoadWords reads a newline-separated word list from path. Blank lines
// and duplicates are skipped; words are upper-cased so boards look
// uniform regardless of how the list was authored.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return splitWords(f), nil
}

func splitWords(r io.Reader) []string {
	var words []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}
