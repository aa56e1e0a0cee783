package main

import (
	"fmt"
	"io"

	"prag/internal/observ"
)

// printPhaseTimings writes one aligned row per recorded phase and a
// total, the terminal twin of the JSON timing report.
func printPhaseTimings(out io.Writer, report observ.Report) {
	if out == nil || len(report.Phases) == 0 {
		return
	}
	for _, p := range report.Phases {
		if p.Note != "" {
			fmt.Fprintf(out, "%-22s %8.2f ms  (%s)\n", p.Name, p.DurationMS, p.Note)
			continue
		}
		fmt.Fprintf(out, "%-22s %8.2f ms\n", p.Name, p.DurationMS)
	}
	fmt.Fprintf(out, "%-22s %8.2f ms\n", "total", report.TotalMS)
}
