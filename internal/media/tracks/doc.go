// Package tracks turns raw probe results into normalized audio track
// inventories and filters them against user-selected criteria.
//
// Key types:
//   - AudioTrack: one audio stream, with derived language/bitrate/size
//   - FileTracks: a file's immutable probed inventory
//   - Classification: per-file language summary, recomputed on demand
//   - FilterOptions: validated file- and track-level predicates
package tracks
