package plan

import (
	"fmt"
	"strconv"
	"strings"

	"audiosweep/internal/faults"
	"audiosweep/internal/language"
	"audiosweep/internal/media/tracks"
)

// Status tracks a plan through its lifecycle. Plans are created pending,
// move to approved or skipped by an explicit decision, and end applied or
// failed after execution.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusSkipped  Status = "skipped"
	StatusApplied  Status = "applied"
	StatusFailed   Status = "failed"
)

// TrackRef identifies one audio track within a plan. Ordinal is the 0-based
// position among the file's audio streams; it is both what the user selected
// (plus one) and what the remux directive addresses.
type TrackRef struct {
	StreamIndex int
	Ordinal     int
	Language    string
}

// Label renders the reference the way summaries show it: "2(fre)".
func (t TrackRef) Label() string {
	return fmt.Sprintf("%d(%s)", t.Ordinal+1, t.Language)
}

// Plan is the deletion plan for a single file: the partition of its audio
// tracks into delete and keep sets. A plan is consumed exactly once by the
// executor and then discarded.
type Plan struct {
	Path             string
	OriginalLanguage string
	Delete           []TrackRef
	Keep             []TrackRef
	Status           Status
}

// HasDeletions reports whether executing the plan would change the file.
func (p *Plan) HasDeletions() bool {
	return len(p.Delete) > 0
}

// Labels joins the references of the given set for display.
func Labels(refs []TrackRef) string {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, ref.Label())
	}
	return strings.Join(parts, ", ")
}

// ErrNoKeepers marks automatic plans that would delete every audio track;
// such files are excluded from the batch entirely and flagged to the user.
var ErrNoKeepers = faults.Wrap(faults.ErrValidation, "planner", "automatic",
	"every track differs from the original language", nil)

// Manual partitions a file's tracks according to user-selected track
// numbers. Selections are matched against Ordinal+1, the number the track
// listing displays, so filtering that drops tracks from the list never
// shifts the meaning of a number the user can see. Unknown or duplicate
// selections are rejected so the interactive layer can re-prompt.
func Manual(file tracks.FileTracks, selections []int) (*Plan, error) {
	if len(file.Tracks) == 0 {
		return nil, faults.Wrap(faults.ErrValidation, "planner", "manual", "file has no audio tracks", nil)
	}
	valid := make(map[int]struct{}, len(file.Tracks))
	numbers := make([]string, 0, len(file.Tracks))
	for _, track := range file.Tracks {
		valid[track.Ordinal+1] = struct{}{}
		numbers = append(numbers, strconv.Itoa(track.Ordinal+1))
	}
	chosen := make(map[int]struct{}, len(selections))
	for _, selection := range selections {
		if _, ok := valid[selection]; !ok {
			return nil, faults.Wrap(faults.ErrValidation, "planner", "manual",
				fmt.Sprintf("track %d does not exist (have: %s)", selection, strings.Join(numbers, ", ")), nil)
		}
		if _, dup := chosen[selection]; dup {
			return nil, faults.Wrap(faults.ErrValidation, "planner", "manual",
				fmt.Sprintf("track %d selected twice", selection), nil)
		}
		chosen[selection] = struct{}{}
	}

	p := &Plan{Path: file.Path, Status: StatusPending}
	for _, track := range file.Tracks {
		ref := TrackRef{StreamIndex: track.StreamIndex, Ordinal: track.Ordinal, Language: track.Language}
		if _, del := chosen[track.Ordinal+1]; del {
			p.Delete = append(p.Delete, ref)
		} else {
			p.Keep = append(p.Keep, ref)
		}
	}
	return p, nil
}

// Automatic builds a plan that deletes every track whose language is not
// equivalent to the file's resolved original language. An absent original
// language means nothing is deleted. Files where no track would survive are
// rejected with ErrNoKeepers rather than partially planned.
func Automatic(file tracks.FileTracks, originalLang string) (*Plan, error) {
	p := &Plan{Path: file.Path, OriginalLanguage: originalLang, Status: StatusPending}
	for _, track := range file.Tracks {
		ref := TrackRef{StreamIndex: track.StreamIndex, Ordinal: track.Ordinal, Language: track.Language}
		if originalLang != "" && !language.Equivalent(track.Language, originalLang) {
			p.Delete = append(p.Delete, ref)
		} else {
			p.Keep = append(p.Keep, ref)
		}
	}
	if len(file.Tracks) > 0 && len(p.Keep) == 0 {
		return nil, ErrNoKeepers
	}
	return p, nil
}
