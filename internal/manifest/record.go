// Package manifest scans a category/language audio tree into records.
package manifest

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record describes one audio file.
type Record struct {
	Category string `json:"category"`
	Lang     string `json:"lang"`
	Class    string `json:"cls"`
	URL      string `json:"url"`
	Title    string `json:"title"`
}

// Classifier maps a category to one of two classes.
// A category containing Marker gets Match, every other category gets Other.
type Classifier struct {
	Marker string
	Match  string
	Other  string
}

func (c Classifier) Class(category string) string {
	if strings.Contains(category, c.Marker) {
		return c.Match
	}
	return c.Other
}

// Layout is the fixed shape of the audio tree.
type Layout struct {
	Categories []string
	Languages  []string
	// Extensions without the leading dot, lower case.
	Extensions []string
	// Labels maps a language code to its display form in titles.
	Labels     map[string]string
	Classifier Classifier
	// URLBase is an already escaped url path put in front of every url.
	URLBase string
}

// IsAudio reports whether name has one of the recognized extensions.
func (l *Layout) IsAudio(name string) bool {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(name[idx+1:])
	return slices.Contains(l.Extensions, ext)
}

func (l *Layout) Label(lang string) string {
	if label, ok := l.Labels[lang]; ok {
		return label
	}
	return cases.Upper(language.Und).String(lang)
}

// Record builds the record for filename found in category/lang.
func (l *Layout) Record(category, lang, filename string) Record {
	return Record{
		Category: category,
		Lang:     lang,
		Class:    l.Classifier.Class(category),
		URL:      l.URL(category, lang, filename),
		Title:    fmt.Sprintf("%s — %s — %s", l.Label(lang), category, filename),
	}
}

// URL escapes every segment on its own, so '/' or '%' in a name stays inside its segment.
func (l *Layout) URL(category, lang, filename string) string {
	segments := make([]string, 0, 4)
	if base := strings.TrimSuffix(l.URLBase, "/"); base != "" {
		segments = append(segments, base)
	}
	for _, s := range []string{category, lang, filename} {
		segments = append(segments, url.PathEscape(s))
	}
	return strings.Join(segments, "/")
}
