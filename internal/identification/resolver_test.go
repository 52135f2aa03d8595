package identification

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"audiosweep/internal/identification/tmdb"
	"audiosweep/internal/langcache"
	"audiosweep/internal/media/tracks"
)

type fakeLookuper struct {
	findCalls    atomic.Int64
	detailCalls  atomic.Int64
	failFind     bool
	failDetails  bool
	originalLang string
}

func (f *fakeLookuper) FindByIMDbID(_ context.Context, imdbID string) (*tmdb.Movie, error) {
	f.findCalls.Add(1)
	if f.failFind {
		return nil, errors.New("find unavailable")
	}
	return &tmdb.Movie{ID: 603, OriginalLanguage: f.originalLang}, nil
}

func (f *fakeLookuper) GetMovieDetails(_ context.Context, movieID int64) (*tmdb.Movie, error) {
	f.detailCalls.Add(1)
	if f.failDetails {
		return nil, errors.New("details unavailable")
	}
	return &tmdb.Movie{ID: movieID, OriginalLanguage: f.originalLang}, nil
}

func TestResolveTMDbID(t *testing.T) {
	lookuper := &fakeLookuper{originalLang: "fr"}
	resolver := NewResolver(lookuper, nil, nil)

	resolution := resolver.Resolve(context.Background(), "/library/Amelie {tmdb-194}.mkv")
	if resolution.Source != SourceTMDb || resolution.MovieID != "194" {
		t.Fatalf("unexpected identifier: %+v", resolution)
	}
	if resolution.Language != "fra" {
		t.Fatalf("expected fra, got %q", resolution.Language)
	}
	if lookuper.findCalls.Load() != 0 {
		t.Fatal("tmdb-native ids must not use the external-id lookup")
	}
}

func TestResolveIMDbIDChainsThroughFind(t *testing.T) {
	lookuper := &fakeLookuper{originalLang: "zh"}
	resolver := NewResolver(lookuper, nil, nil)

	resolution := resolver.Resolve(context.Background(), "/library/Hero {imdb-tt0299977}.mkv")
	if resolution.Language != "chi" {
		t.Fatalf("expected chi (not zho), got %q", resolution.Language)
	}
	if lookuper.findCalls.Load() != 1 || lookuper.detailCalls.Load() != 1 {
		t.Fatalf("expected find+details, got %d/%d",
			lookuper.findCalls.Load(), lookuper.detailCalls.Load())
	}
}

func TestResolveMemoizesByBaseName(t *testing.T) {
	lookuper := &fakeLookuper{originalLang: "en"}
	resolver := NewResolver(lookuper, nil, nil)

	first := resolver.Resolve(context.Background(), "/a/Movie {tmdb-7}.mkv")
	second := resolver.Resolve(context.Background(), "/b/Movie {tmdb-7}.mkv")
	if first.Language != "eng" || second.Language != "eng" {
		t.Fatalf("unexpected languages: %q, %q", first.Language, second.Language)
	}
	if lookuper.detailCalls.Load() != 1 {
		t.Fatalf("expected one lookup, got %d", lookuper.detailCalls.Load())
	}
}

func TestResolveFailuresAreAbsentNotFatal(t *testing.T) {
	tests := []struct {
		name     string
		lookuper *fakeLookuper
		path     string
	}{
		{"no identifier", &fakeLookuper{originalLang: "en"}, "/library/Movie.mkv"},
		{"find fails", &fakeLookuper{failFind: true}, "/library/M {imdb-tt1}.mkv"},
		{"details fail", &fakeLookuper{failDetails: true}, "/library/M {tmdb-1}.mkv"},
		{"unmappable language", &fakeLookuper{originalLang: "q#"}, "/library/M {tmdb-2}.mkv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(tt.lookuper, nil, nil)
			resolution := resolver.Resolve(context.Background(), tt.path)
			if resolution.Language != "" {
				t.Fatalf("expected absent language, got %q", resolution.Language)
			}
		})
	}
}

func TestResolveUsesPersistentCache(t *testing.T) {
	store, err := langcache.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	lookuper := &fakeLookuper{originalLang: "ja"}
	resolver := NewResolver(lookuper, store, nil)
	if got := resolver.Resolve(context.Background(), "/x/Movie {tmdb-99}.mkv"); got.Language != "jpn" {
		t.Fatalf("expected jpn, got %q", got.Language)
	}

	// A fresh resolver (new run) hits the store, not the service.
	second := NewResolver(&fakeLookuper{failDetails: true}, store, nil)
	if got := second.Resolve(context.Background(), "/x/Movie {tmdb-99}.mkv"); got.Language != "jpn" {
		t.Fatalf("expected cached jpn, got %q", got.Language)
	}
}

func TestResolveAll(t *testing.T) {
	lookuper := &fakeLookuper{originalLang: "en"}
	resolver := NewResolver(lookuper, nil, nil)

	files := []tracks.FileTracks{
		{Path: "/l/A {tmdb-1}.mkv"},
		{Path: "/l/B.mkv"},
		{Path: "/l/C {imdb-tt3}.mkv"},
	}
	resolutions := resolver.ResolveAll(context.Background(), files, 2)
	if len(resolutions) != 3 {
		t.Fatalf("expected 3 resolutions, got %d", len(resolutions))
	}
	for i, resolution := range resolutions {
		if resolution.Path != files[i].Path {
			t.Fatalf("order not preserved: %+v", resolutions)
		}
	}
	if resolutions[1].Language != "" || resolutions[1].Source != SourceNone {
		t.Fatalf("expected unresolved middle file: %+v", resolutions[1])
	}

	unidentified := Unidentified(resolutions)
	if len(unidentified) != 1 || unidentified[0] != "/l/B.mkv" {
		t.Fatalf("unexpected unidentified set: %v", unidentified)
	}
}

func TestResolutionKey(t *testing.T) {
	if key := (Resolution{Source: SourceIMDb, MovieID: "tt1"}).Key(); key != "imdb:tt1" {
		t.Fatalf("unexpected key: %q", key)
	}
	if key := (Resolution{}).Key(); key != "" {
		t.Fatalf("expected empty key, got %q", key)
	}
}
