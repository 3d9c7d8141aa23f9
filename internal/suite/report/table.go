package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Parser Suites ===\n")

	for _, res := range r.Suites {
		fmt.Fprintf(tw, "\n--- Suite: %s ---\n\n", res.SuiteName)

		header := []string{"Case", "Status", "Duration", "Detail"}
		fmt.Fprintln(tw, strings.Join(header, "\t"))

		sep := make([]string, len(header))
		for i := range sep {
			sep[i] = "---"
		}
		fmt.Fprintln(tw, strings.Join(sep, "\t"))

		for _, cr := range res.Cases {
			status := "OK"
			detail := ""
			if !cr.Passed {
				status = "FAIL"
				detail = cr.Failure
				if cr.Actual != "" {
					detail += "; got " + cr.Actual
				}
			}
			row := []string{cr.CaseID, status, fmtDuration(cr.Duration), detail}
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
	}

	fmt.Fprintf(tw, "\nTotal: %d suites, %d cases, %d passed, %d failed in %s\n",
		r.Summary.Suites, r.Summary.Cases, r.Summary.Passed, r.Summary.Failed, fmtDuration(r.Summary.Duration))

	tw.Flush()
}

func fmtDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	default:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
}
