package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"audiosweep/internal/language"
	"audiosweep/internal/library"
	"audiosweep/internal/media/tracks"
	"audiosweep/internal/plan"
	"audiosweep/internal/remux"
	"audiosweep/internal/textutil"
)

const maxDisplayNameLength = 70

var trackHeaders = []string{"#", "Lang", "Codec", "Ch", "Bitrate", "Size", "Title"}
var trackAligns = []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}

func trackRows(file tracks.FileTracks) [][]string {
	rows := make([][]string, 0, len(file.Tracks))
	for _, track := range file.Tracks {
		rows = append(rows, []string{
			strconv.Itoa(track.Ordinal + 1),
			track.Language,
			track.Codec,
			strconv.Itoa(track.Channels),
			textutil.FormatBitrate(track.BitRate, track.Estimated),
			textutil.FormatSize(track.SizeBytes),
			track.Title,
		})
	}
	return rows
}

func printFileInventory(out io.Writer, file tracks.FileTracks) {
	name := filepath.Base(file.Path)
	ext := filepath.Ext(name)
	fmt.Fprintln(out, textutil.ShortenFilename(name, ext, maxDisplayNameLength))

	c := tracks.Classify(file)
	note := strings.Join(c.Languages, ", ")
	if c.AllSameLanguage {
		note += " (all same language)"
	}
	fmt.Fprintf(out, "  %d audio track(s): %s\n", c.TrackCount, note)
	fmt.Fprintln(out, renderTable(trackHeaders, trackRows(file), trackAligns))
	fmt.Fprintln(out)
}

func printProbeFailures(out io.Writer, failures []library.ProbeError) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(out, "%d file(s) could not be probed:\n", len(failures))
	for _, failure := range failures {
		fmt.Fprintf(out, "  %s: %s\n", failure.Path, failure.Message)
	}
	fmt.Fprintln(out)
}

func printPlanSummary(out io.Writer, plans []*plan.Plan) {
	headers := []string{"#", "File", "Original", "Delete", "Keep"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft}
	rows := make([][]string, 0, len(plans))
	for i, p := range plans {
		original := p.OriginalLanguage
		if original == "" {
			original = "-"
		} else {
			original = fmt.Sprintf("%s (%s)", language.DisplayName(original), original)
		}
		name := filepath.Base(p.Path)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			textutil.ShortenFilename(name, filepath.Ext(name), maxDisplayNameLength),
			original,
			plan.Labels(p.Delete),
			plan.Labels(p.Keep),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
}

func printExecutionReport(out io.Writer, results []remux.Result) {
	var applied, failed int
	var savedBytes int64
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(out, "FAILED  %s: %v\n", result.Path, result.Err)
			continue
		}
		applied++
		savedBytes += result.BytesSaved
		fmt.Fprintf(out, "done    %s: %d track(s) deleted, %s reclaimed\n",
			result.Path, result.TracksDeleted, textutil.FormatSize(result.BytesSaved))
	}
	fmt.Fprintf(out, "\n%d file(s) rewritten, %d failed, %s reclaimed in total\n",
		applied, failed, textutil.FormatSize(savedBytes))
}
