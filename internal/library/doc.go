// Package library discovers media files under a directory tree and probes
// them for audio track inventories with bounded concurrency.
package library
