package tracks

import (
	"errors"
	"testing"

	"audiosweep/internal/faults"
)

func TestFilterOptionsValidate(t *testing.T) {
	valid := []FilterOptions{
		{},
		{ExcludeSameLanguage: true, HideUnknownLanguage: true, MinTrackCount: 2, ForeignOnly: true},
		{OnlySameLanguage: true, OnlyUnknownLanguage: true},
	}
	for _, opts := range valid {
		if err := opts.Validate(); err != nil {
			t.Fatalf("expected %+v to validate, got %v", opts, err)
		}
	}

	invalid := []FilterOptions{
		{ExcludeSameLanguage: true, OnlySameLanguage: true},
		{HideUnknownLanguage: true, OnlyUnknownLanguage: true},
		{MinTrackCount: -1},
	}
	for _, opts := range invalid {
		err := opts.Validate()
		if err == nil {
			t.Fatalf("expected %+v to be rejected", opts)
		}
		if !errors.Is(err, faults.ErrConfiguration) {
			t.Fatalf("expected configuration failure, got %v", err)
		}
	}
}

func TestForeignOnlyNeverReturnsEnglishFiles(t *testing.T) {
	opts := FilterOptions{ForeignOnly: true}
	files := []FileTracks{
		fileWith("eng", "fre"),          // has English: dropped
		fileWith("fre", "unknown"),      // foreign: kept
		fileWith("unknown", "unknown"),  // nothing known: dropped
		fileWith("english"),             // word-form English: dropped
		fileWith("jpn"),                 // foreign: kept
	}
	result := opts.Apply(files)
	if len(result) != 2 {
		t.Fatalf("expected 2 surviving files, got %d", len(result))
	}
	for _, file := range result {
		for _, track := range file.Tracks {
			if track.Language == "eng" || track.Language == "english" {
				t.Fatalf("foreign-only filter leaked an English file: %+v", file)
			}
		}
	}
}

func TestMinTrackCount(t *testing.T) {
	opts := FilterOptions{MinTrackCount: 2}
	result := opts.Apply([]FileTracks{fileWith("eng"), fileWith("eng", "fre")})
	if len(result) != 1 || len(result[0].Tracks) != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestSameLanguageFilters(t *testing.T) {
	same := fileWith("eng", "eng")
	mixed := fileWith("eng", "fre")

	result := FilterOptions{ExcludeSameLanguage: true}.Apply([]FileTracks{same, mixed})
	if len(result) != 1 || result[0].Path != mixed.Path || len(result[0].Tracks) != 2 {
		t.Fatalf("exclude-same kept wrong files: %+v", result)
	}

	result = FilterOptions{OnlySameLanguage: true}.Apply([]FileTracks{same, mixed})
	if len(result) != 1 || Classify(result[0]).AllSameLanguage != true {
		t.Fatalf("only-same kept wrong files: %+v", result)
	}
}

func TestUnknownLanguageTrackFilters(t *testing.T) {
	file := fileWith("eng", "unknown", "fre")

	result := FilterOptions{HideUnknownLanguage: true}.Apply([]FileTracks{file})
	if len(result) != 1 || len(result[0].Tracks) != 2 {
		t.Fatalf("hide-unknown result: %+v", result)
	}
	for _, track := range result[0].Tracks {
		if track.Language == UnknownLanguage {
			t.Fatal("unknown track survived hide-unknown")
		}
	}

	result = FilterOptions{OnlyUnknownLanguage: true}.Apply([]FileTracks{file})
	if len(result) != 1 || len(result[0].Tracks) != 1 || result[0].Tracks[0].Language != UnknownLanguage {
		t.Fatalf("only-unknown result: %+v", result)
	}

	// A file whose tracks are all filtered away disappears entirely.
	result = FilterOptions{OnlyUnknownLanguage: true}.Apply([]FileTracks{fileWith("eng", "fre")})
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}

func TestZeroOptionsKeepEverything(t *testing.T) {
	files := []FileTracks{fileWith("eng"), fileWith("unknown"), fileWith("fre", "jpn")}
	result := FilterOptions{}.Apply(files)
	if len(result) != 3 {
		t.Fatalf("expected all files to survive, got %d", len(result))
	}
}
