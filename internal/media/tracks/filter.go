package tracks

import (
	"audiosweep/internal/faults"
	"audiosweep/internal/language"
)

// FilterOptions selects which files and tracks survive a scan. The zero
// value keeps everything.
type FilterOptions struct {
	// ExcludeSameLanguage drops files whose tracks all share one language.
	ExcludeSameLanguage bool
	// OnlySameLanguage keeps only files whose tracks all share one language.
	OnlySameLanguage bool
	// MinTrackCount drops files with fewer audio tracks than the threshold.
	// Zero disables the check.
	MinTrackCount int
	// HideUnknownLanguage drops individual unknown-language tracks.
	HideUnknownLanguage bool
	// OnlyUnknownLanguage keeps only unknown-language tracks.
	OnlyUnknownLanguage bool
	// ForeignOnly keeps only files with no English track and at least one
	// track in a known non-English language.
	ForeignOnly bool
}

// Validate rejects mutually exclusive combinations up front so the filter
// never runs with unspecified semantics.
func (o FilterOptions) Validate() error {
	if o.ExcludeSameLanguage && o.OnlySameLanguage {
		return faults.Wrap(faults.ErrConfiguration, "filter", "validate",
			"exclude-same and only-same are mutually exclusive", nil)
	}
	if o.HideUnknownLanguage && o.OnlyUnknownLanguage {
		return faults.Wrap(faults.ErrConfiguration, "filter", "validate",
			"no-unknown and only-unknown are mutually exclusive", nil)
	}
	if o.MinTrackCount < 0 {
		return faults.Wrap(faults.ErrConfiguration, "filter", "validate",
			"minimum track count must not be negative", nil)
	}
	return nil
}

// Apply evaluates the filter over probed files and returns the survivors.
// File-level predicates run first, then per-track language filtering; a file
// whose tracks are all filtered out is dropped entirely.
func (o FilterOptions) Apply(files []FileTracks) []FileTracks {
	result := make([]FileTracks, 0, len(files))
	for _, file := range files {
		filtered, ok := o.applyFile(file)
		if ok {
			result = append(result, filtered)
		}
	}
	return result
}

func (o FilterOptions) applyFile(file FileTracks) (FileTracks, bool) {
	c := Classify(file)

	if o.ForeignOnly && c.HasEnglish {
		return FileTracks{}, false
	}
	if o.MinTrackCount > 0 && c.TrackCount < o.MinTrackCount {
		return FileTracks{}, false
	}
	if o.ExcludeSameLanguage && c.AllSameLanguage {
		return FileTracks{}, false
	}
	if o.OnlySameLanguage && !c.AllSameLanguage {
		return FileTracks{}, false
	}
	if o.ForeignOnly && !c.HasForeign {
		return FileTracks{}, false
	}

	kept := make([]AudioTrack, 0, len(file.Tracks))
	for _, track := range file.Tracks {
		unknown := language.IsUnknown(track.Language)
		if o.HideUnknownLanguage && unknown {
			continue
		}
		if o.OnlyUnknownLanguage && !unknown {
			continue
		}
		kept = append(kept, track)
	}
	if len(kept) == 0 {
		return FileTracks{}, false
	}

	file.Tracks = kept
	return file, true
}
