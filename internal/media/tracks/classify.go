package tracks

import (
	"sort"

	"audiosweep/internal/language"
)

// Classification summarizes a file's audio inventory for filtering. It is
// recomputed from the track list on demand and never persisted.
type Classification struct {
	TrackCount      int
	Languages       []string
	AllSameLanguage bool
	HasEnglish      bool
	HasForeign      bool
}

// Classify derives the per-file classification from the track list.
func Classify(file FileTracks) Classification {
	seen := make(map[string]struct{}, len(file.Tracks))
	c := Classification{TrackCount: len(file.Tracks)}
	for _, track := range file.Tracks {
		if _, ok := seen[track.Language]; !ok {
			seen[track.Language] = struct{}{}
			c.Languages = append(c.Languages, track.Language)
		}
		if language.IsEnglish(track.Language) {
			c.HasEnglish = true
		} else if !language.IsUnknown(track.Language) {
			c.HasForeign = true
		}
	}
	sort.Strings(c.Languages)
	c.AllSameLanguage = len(seen) == 1
	return c
}
