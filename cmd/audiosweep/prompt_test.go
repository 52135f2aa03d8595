package main

import (
	"bufio"
	"strings"
	"testing"
)

func TestParseSelection(t *testing.T) {
	got, err := parseSelection("2, 3,5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 3 || got[0] != 2 || got[1] != 3 || got[2] != 5 {
		t.Fatalf("unexpected selection: %v", got)
	}

	for _, bad := range []string{"", "two", "1,x"} {
		if _, err := parseSelection(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseApproval(t *testing.T) {
	tests := []struct {
		input      string
		approveAll bool
		rejectAll  bool
		skip       []int
	}{
		{"y", true, false, nil},
		{"YES", true, false, nil},
		{"n", false, true, nil},
		{"", false, true, nil},
		{"skip 2,4", true, false, []int{2, 4}},
	}
	for _, tt := range tests {
		decision, err := parseApproval(tt.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		if decision.ApproveAll != tt.approveAll || decision.RejectAll != tt.rejectAll {
			t.Fatalf("parse %q: %+v", tt.input, decision)
		}
		if len(decision.Skip) != len(tt.skip) {
			t.Fatalf("parse %q: skip %v", tt.input, decision.Skip)
		}
	}

	if _, err := parseApproval("maybe"); err == nil {
		t.Fatal("expected error for unparseable answer")
	}
	if _, err := parseApproval("skip x"); err == nil {
		t.Fatal("expected error for bad skip list")
	}
}

func TestAskTracksReprompts(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader("nonsense\n2,3\n"))
	var out strings.Builder

	answer, err := askTracks(in, &out)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer.skip || answer.quit || len(answer.selections) != 2 {
		t.Fatalf("unexpected answer: %+v", answer)
	}
	if !strings.Contains(out.String(), "not a track number") {
		t.Fatalf("expected reprompt message, got %q", out.String())
	}
}

func TestAskApprovalEOFRejects(t *testing.T) {
	in := bufio.NewScanner(strings.NewReader(""))
	decision, err := askApproval(in, &strings.Builder{}, 3)
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !decision.RejectAll {
		t.Fatalf("EOF must reject the batch: %+v", decision)
	}
}
