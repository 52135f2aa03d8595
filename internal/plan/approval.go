package plan

import (
	"fmt"

	"audiosweep/internal/faults"
)

// Decision is the already-resolved outcome of the batch approval prompt.
// The interactive layer parses user input into a Decision; applying it is a
// pure function so the core never blocks on a prompt.
type Decision struct {
	// ApproveAll approves every pending plan not listed in Skip.
	ApproveAll bool
	// RejectAll skips every pending plan, aborting the batch.
	RejectAll bool
	// Skip holds 1-based positions (in presentation order) to leave out.
	Skip []int
}

// Apply transitions every pending plan to approved or skipped according to
// the decision. Skip positions outside [1, len(plans)] are rejected before
// any plan is mutated. A decision with neither flag set leaves every plan
// pending.
func Apply(plans []*Plan, decision Decision) error {
	if decision.RejectAll {
		for _, p := range plans {
			if p.Status == StatusPending {
				p.Status = StatusSkipped
			}
		}
		return nil
	}
	if !decision.ApproveAll {
		return nil
	}

	skipped := make(map[int]struct{}, len(decision.Skip))
	for _, position := range decision.Skip {
		if position < 1 || position > len(plans) {
			return faults.Wrap(faults.ErrValidation, "planner", "approval",
				fmt.Sprintf("skip position %d does not exist (valid: 1-%d)", position, len(plans)), nil)
		}
		skipped[position] = struct{}{}
	}

	for i, p := range plans {
		if p.Status != StatusPending {
			continue
		}
		if _, skip := skipped[i+1]; skip {
			p.Status = StatusSkipped
		} else {
			p.Status = StatusApproved
		}
	}
	return nil
}

// Approved returns the plans ready for execution, in presentation order.
func Approved(plans []*Plan) []*Plan {
	result := make([]*Plan, 0, len(plans))
	for _, p := range plans {
		if p.Status == StatusApproved {
			result = append(result, p)
		}
	}
	return result
}
