package identification

import "regexp"

// Source names the movie database a filename identifier refers to.
type Source string

const (
	SourceNone Source = ""
	SourceIMDb Source = "imdb"
	SourceTMDb Source = "tmdb"
)

var (
	imdbPattern = regexp.MustCompile(`\{imdb-(tt\d+)\}`)
	tmdbPattern = regexp.MustCompile(`\{tmdb-(\d+)\}`)
)

// ExtractMovieID recognizes an embedded `{imdb-ttNNN}` or `{tmdb-NNN}` token
// anywhere in the file name. The IMDb form wins when both are present.
// Returns (SourceNone, "") when neither token is found.
func ExtractMovieID(name string) (Source, string) {
	if match := imdbPattern.FindStringSubmatch(name); match != nil {
		return SourceIMDb, match[1]
	}
	if match := tmdbPattern.FindStringSubmatch(name); match != nil {
		return SourceTMDb, match[1]
	}
	return SourceNone, ""
}
