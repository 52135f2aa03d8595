// Package plan builds and approves per-file audio track deletion plans.
//
// Plans are created pending by Manual (user-selected track numbers) or
// Automatic (original-language driven), transitioned by an explicit
// approval Decision, and consumed exactly once by the remux executor.
package plan
