package manifest

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Sort orders records by category and language position in the layout,
// then by case-folded title. Values unknown to the layout go last.
// The raw title breaks remaining ties so the order does not depend on
// directory listing order.
func Sort(records []Record, layout *Layout) {
	categoryIdx := positions(layout.Categories)
	langIdx := positions(layout.Languages)
	fold := cases.Fold()

	keys := make(map[string]string, len(records))
	titleKey := func(title string) string {
		k, ok := keys[title]
		if !ok {
			k = norm.NFC.String(fold.String(title))
			keys[title] = k
		}
		return k
	}

	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Or(
			cmp.Compare(position(categoryIdx, a.Category), position(categoryIdx, b.Category)),
			cmp.Compare(position(langIdx, a.Lang), position(langIdx, b.Lang)),
			cmp.Compare(titleKey(a.Title), titleKey(b.Title)),
			cmp.Compare(a.Title, b.Title),
		)
	})
}

func positions(values []string) map[string]int {
	m := make(map[string]int, len(values))
	for i, v := range values {
		if _, ok := m[v]; !ok {
			m[v] = i
		}
	}
	return m
}

func position(idx map[string]int, v string) int {
	if i, ok := idx[v]; ok {
		return i
	}
	return len(idx)
}
