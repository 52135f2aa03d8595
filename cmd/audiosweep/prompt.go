package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"audiosweep/internal/plan"
)

// parseSelection parses comma- or space-separated track numbers ("2,3").
func parseSelection(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no track numbers given")
	}
	selections := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a track number", field)
		}
		selections = append(selections, n)
	}
	return selections, nil
}

// parseApproval interprets the batch confirmation answer. Accepted forms:
// "y"/"yes", "n"/"no" (or empty), and "skip 2,4" to approve all but the
// listed plans.
func parseApproval(input string) (plan.Decision, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	switch input {
	case "y", "yes":
		return plan.Decision{ApproveAll: true}, nil
	case "", "n", "no":
		return plan.Decision{RejectAll: true}, nil
	}
	if rest, ok := strings.CutPrefix(input, "skip"); ok {
		skip, err := parseSelection(rest)
		if err != nil {
			return plan.Decision{}, err
		}
		return plan.Decision{ApproveAll: true, Skip: skip}, nil
	}
	return plan.Decision{}, fmt.Errorf("answer y, n, or skip <numbers>")
}

// trackPrompt is the per-file answer in interactive clean mode.
type trackPrompt struct {
	selections []int
	skip       bool
	quit       bool
}

// askTracks prompts for the tracks to delete from one file. Empty input
// skips the file; "q" stops prompting for the rest of the batch.
func askTracks(in *bufio.Scanner, out io.Writer) (trackPrompt, error) {
	for {
		fmt.Fprint(out, "Tracks to delete (e.g. 2,3; enter to skip, q to quit): ")
		if !in.Scan() {
			return trackPrompt{quit: true}, in.Err()
		}
		input := strings.TrimSpace(in.Text())
		switch strings.ToLower(input) {
		case "":
			return trackPrompt{skip: true}, nil
		case "q", "quit":
			return trackPrompt{quit: true}, nil
		}
		selections, err := parseSelection(input)
		if err != nil {
			fmt.Fprintf(out, "  %v\n", err)
			continue
		}
		return trackPrompt{selections: selections}, nil
	}
}

// askApproval prompts for the batch decision, reprompting on unparseable
// answers. EOF rejects the batch.
func askApproval(in *bufio.Scanner, out io.Writer, planCount int) (plan.Decision, error) {
	for {
		fmt.Fprintf(out, "Apply %d deletion plan(s)? [y/N/skip <numbers>]: ", planCount)
		if !in.Scan() {
			return plan.Decision{RejectAll: true}, in.Err()
		}
		decision, err := parseApproval(in.Text())
		if err != nil {
			fmt.Fprintf(out, "  %v\n", err)
			continue
		}
		return decision, nil
	}
}
