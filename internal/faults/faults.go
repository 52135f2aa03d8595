// Package faults defines the error taxonomy shared across the scan and
// cleanup pipeline. Each sentinel marks a class of failure so callers can
// decide between skipping a file, re-prompting, and aborting the run.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProbe marks files that could not be inspected; the file is skipped
	// and the batch continues.
	ErrProbe = errors.New("probe failure")
	// ErrLookup marks metadata service failures; resolution degrades to
	// "unknown original language" rather than aborting.
	ErrLookup = errors.New("lookup failure")
	// ErrValidation marks rejected user input; the caller re-prompts.
	ErrValidation = errors.New("validation failure")
	// ErrRemux marks external tool failures during rewriting; the original
	// file is preserved and the batch continues.
	ErrRemux = errors.New("remux failure")
	// ErrConfiguration marks unusable setup; fatal to the run.
	ErrConfiguration = errors.New("configuration failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether err should abort the whole run rather than skip a
// single file.
func Fatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
