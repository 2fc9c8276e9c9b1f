package manifest

import (
	"slices"
	"testing"
)

func TestSort(t *testing.T) {
	layout := testLayout()
	rec := func(category, lang, filename string) Record {
		return layout.Record(category, lang, filename)
	}

	records := []Record{
		rec("Non-Crime OOD", "en", "z.mp3"),
		{Category: "Other", Lang: "en", Title: "EN — Other — a.mp3"},
		rec("Crime", "ja", "a.mp3"),
		rec("Crime", "en", "b.mp3"),
		rec("Crime", "en", "A.mp3"),
		rec("Crime", "en", "a.mp3"),
		rec("Crime", "xx", "a.mp3"),
		rec("Crime", "en", "Über.mp3"),
		rec("Crime", "en", "über.mp3"),
		rec("Non-Crime", "zh", "c.wav"),
	}

	Sort(records, layout)

	var got []string
	for _, r := range records {
		got = append(got, r.Title)
	}
	want := []string{
		"EN — Crime — A.mp3",
		"EN — Crime — a.mp3",
		"EN — Crime — b.mp3",
		"EN — Crime — Über.mp3",
		"EN — Crime — über.mp3",
		"JA — Crime — a.mp3",
		"XX — Crime — a.mp3",
		"ZH — Non-Crime — c.wav",
		"EN — Non-Crime OOD — z.mp3",
		"EN — Other — a.mp3",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Sort()\n%q\nwant\n%q", got, want)
	}
}

func TestSort_IndependentOfInputOrder(t *testing.T) {
	layout := testLayout()
	records := []Record{
		layout.Record("Crime OOD", "fr", "x.mp3"),
		layout.Record("Crime", "en", "B.mp3"),
		layout.Record("Crime", "en", "b.mp3"),
		layout.Record("Non-Crime", "es", "y.ogg"),
		layout.Record("Crime", "en", "a.mp3"),
	}
	reversed := slices.Clone(records)
	slices.Reverse(reversed)

	Sort(records, layout)
	Sort(reversed, layout)
	if !slices.Equal(records, reversed) {
		t.Fatalf("Sort() depends on input order\n%v\n%v", records, reversed)
	}
}
