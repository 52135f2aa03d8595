// Package tmdb implements the minimal Movie Database API surface needed to
// resolve a film's original language: key validation, IMDb external-id
// resolution, and movie detail lookup.
package tmdb
