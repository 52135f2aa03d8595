package identification

import (
	"context"
	"log/slog"
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"audiosweep/internal/identification/tmdb"
	"audiosweep/internal/langcache"
	"audiosweep/internal/language"
	"audiosweep/internal/logging"
	"audiosweep/internal/media/tracks"
)

// Resolution records the original language determined for one file. An
// empty Language means the file could not be resolved; such files are
// skipped by automatic planning, never deleted from.
type Resolution struct {
	Path     string
	Source   Source
	MovieID  string
	Language string
}

// Key returns the cache key for the resolution's identifier, e.g.
// "imdb:tt0133093".
func (r Resolution) Key() string {
	if r.Source == SourceNone {
		return ""
	}
	return string(r.Source) + ":" + r.MovieID
}

// Resolver determines a file's original language from the movie identifier
// embedded in its name. Results are memoized by base filename for the
// lifetime of the resolver, and optionally persisted through a langcache
// store.
type Resolver struct {
	client Lookuper
	store  *langcache.Store
	logger *slog.Logger

	mu   sync.Mutex
	memo map[string]Resolution
}

// Lookuper is the TMDB surface the resolver needs; satisfied by
// *tmdb.Client.
type Lookuper interface {
	FindByIMDbID(ctx context.Context, imdbID string) (*tmdb.Movie, error)
	GetMovieDetails(ctx context.Context, movieID int64) (*tmdb.Movie, error)
}

// NewResolver creates a resolver. The store may be nil to disable
// persistent caching.
func NewResolver(client Lookuper, store *langcache.Store, logger *slog.Logger) *Resolver {
	return &Resolver{
		client: client,
		store:  store,
		logger: logging.NewComponentLogger(logger, "resolver"),
		memo:   make(map[string]Resolution),
	}
}

// Resolve determines the original language for one file. Lookup and
// conversion failures yield a Resolution with empty Language; only the
// identifier extraction result is reported, never an error, because absent
// means "cannot determine, skip for automatic planning".
func (r *Resolver) Resolve(ctx context.Context, path string) Resolution {
	name := filepath.Base(path)

	r.mu.Lock()
	if cached, ok := r.memo[name]; ok {
		r.mu.Unlock()
		cached.Path = path
		return cached
	}
	r.mu.Unlock()

	resolution := r.resolveUncached(ctx, path)

	r.mu.Lock()
	r.memo[name] = resolution
	r.mu.Unlock()
	return resolution
}

func (r *Resolver) resolveUncached(ctx context.Context, path string) Resolution {
	resolution := Resolution{Path: path}
	resolution.Source, resolution.MovieID = ExtractMovieID(filepath.Base(path))
	if resolution.Source == SourceNone {
		r.logger.Debug("no movie identifier in filename",
			logging.String(logging.FieldPath, path))
		return resolution
	}

	if r.store != nil {
		if lang, found, err := r.store.Get(ctx, resolution.Key()); err == nil && found {
			resolution.Language = lang
			return resolution
		}
	}

	code2, err := r.lookupOriginalLanguage(ctx, resolution.Source, resolution.MovieID)
	if err != nil {
		r.logger.Debug("original language lookup failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return resolution
	}

	resolution.Language = language.TrackTag(code2)
	if resolution.Language == "" {
		r.logger.Debug("no track tag for original language",
			logging.String(logging.FieldPath, path),
			logging.String(logging.FieldLanguage, code2))
		return resolution
	}

	if r.store != nil {
		if err := r.store.Put(ctx, resolution.Key(), resolution.Language); err != nil {
			r.logger.Debug("language cache write failed", logging.Error(err))
		}
	}
	return resolution
}

func (r *Resolver) lookupOriginalLanguage(ctx context.Context, source Source, movieID string) (string, error) {
	switch source {
	case SourceIMDb:
		movie, err := r.client.FindByIMDbID(ctx, movieID)
		if err != nil {
			return "", err
		}
		details, err := r.client.GetMovieDetails(ctx, movie.ID)
		if err != nil {
			return "", err
		}
		return details.OriginalLanguage, nil
	default:
		id, err := strconv.ParseInt(movieID, 10, 64)
		if err != nil {
			return "", err
		}
		details, err := r.client.GetMovieDetails(ctx, id)
		if err != nil {
			return "", err
		}
		return details.OriginalLanguage, nil
	}
}

// ResolveAll resolves every file through a worker pool bounded by
// concurrency. Results keep the input order; files without identifiers or
// with failed lookups come back with empty Language.
func (r *Resolver) ResolveAll(ctx context.Context, files []tracks.FileTracks, concurrency int) []Resolution {
	if concurrency <= 0 {
		concurrency = 1
	}
	results := make([]Resolution, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			results[i] = r.Resolve(groupCtx, file.Path)
			return nil
		})
	}
	_ = group.Wait()
	return results
}

// Unidentified returns the files from resolutions that carry no movie
// identifier, for reporting.
func Unidentified(resolutions []Resolution) []string {
	var paths []string
	for _, resolution := range resolutions {
		if resolution.Source == SourceNone {
			paths = append(paths, resolution.Path)
		}
	}
	return paths
}
