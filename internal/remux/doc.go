// Package remux executes approved deletion plans with ffmpeg stream-copy
// remuxes and atomic file replacement.
package remux
