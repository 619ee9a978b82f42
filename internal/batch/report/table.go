package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"
)

const maxInputWidth = 40

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", r.Meta.Suite)
	writeCaseTable(tw, r)
	writeSummary(tw, r)

	return tw.Flush()
}

func writeCaseTable(tw *tabwriter.Writer, r *Report) {
	header := []string{"Case", "Kind", "Input", "Expect", "Outcome", "Results", "p50", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, separator(len(header)))

	for _, e := range r.Cases {
		status := "PASS"
		switch {
		case e.Error != "":
			status = "ERR"
		case !e.Passed:
			status = "FAIL"
		}
		row := []string{
			e.CaseID,
			e.Kind,
			truncate(oneLine(e.Input), maxInputWidth),
			e.Expect,
			orDash(e.Outcome),
			fmtResults(e.Results),
			fmtDuration(e.Latency.P50()),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	fmt.Fprintln(tw)

	for _, e := range r.Cases {
		for _, f := range e.Failures {
			fmt.Fprintf(tw, "  %s: %s\n", e.CaseID, f)
		}
		if e.Error != "" {
			fmt.Fprintf(tw, "  %s: %s\n", e.CaseID, e.Error)
		}
	}
}

func writeSummary(tw *tabwriter.Writer, r *Report) {
	s := r.Summary
	fmt.Fprintf(tw, "\nPassed %d/%d, %.2f%% (failed %d, errored %d)\n", s.Passed, s.Total, s.PassRate, s.Failed, s.Errored)
	fmt.Fprintf(tw, "Latency: min %s\tp50 %s\tp99 %s\tmax %s\tsamples %d\n",
		fmtDuration(s.Latency.Min),
		fmtDuration(s.Latency.P50()),
		fmtDuration(s.Latency.P99()),
		fmtDuration(s.Latency.Max),
		s.Latency.SampleCount,
	)
}

func separator(n int) string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return strings.Join(sep, "\t")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func fmtResults(values []bool) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "FAUX"
		if v {
			parts[i] = "VRAI"
		}
	}
	return strings.Join(parts, ",")
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
