// Package ingest reads artist name lists out of the files people actually
// have: plain text with one name per line, or an html page saved from a
// browser.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Usable reports whether a line names an artist: nonblank and not a comment.
func Usable(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && !strings.HasPrefix(t, "#")
}

// Clean extracts the usable artist names from newline-separated text,
// trimming whitespace and dropping blank lines and `#` comments. A leading
// utf-8 BOM is stripped; text files exported from spreadsheets tend to
// carry one.
func Clean(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		if !Usable(line) {
			continue
		}
		names = append(names, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning artist list: %w", err)
	}
	return names, nil
}

// CleanHTML extracts artist names from an html document, taking the text of
// each list item and anchor. Duplicates are dropped, first occurrence wins,
// so a page that links every name twice doesn't double the batch.
func CleanHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing html artist list: %w", err)
	}

	var names []string
	seen := map[string]struct{}{}
	doc.Find("li, a").Each(func(i int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if !Usable(text) {
			return
		}
		if _, ok := seen[text]; ok {
			return
		}
		seen[text] = struct{}{}
		names = append(names, text)
	})
	return names, nil
}

// ReadFile reads an artist list from path, parsing it as html when the
// extension says so and as plain text otherwise.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening artist list '%s': %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return CleanHTML(f)
	default:
		return Clean(f)
	}
}
