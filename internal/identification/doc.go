// Package identification resolves a file's original language from the movie
// database identifier embedded in its name, memoizing lookups per run and
// optionally through a persistent cache.
package identification
