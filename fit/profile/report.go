package profile

import (
	"fmt"
	"io"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport renders the profile as a human-readable table. Cycle counts
// are grouped with thousands separators to keep large totals scannable.
func (p *Profile) WriteReport(w io.Writer) {
	pr := message.NewPrinter(language.English)
	grand := p.GrandTotal()

	_, _ = fmt.Fprintln(w, "=== Best-Fit Strategy Cycle Report ===")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintf(w, "%-12s %9s %18s %14s %12s %12s %7s\n",
		"region", "samples", "total cycles", "avg cycles", "min", "max", "share")

	for _, r := range Regions() {
		s := p.stats[r]
		share := 0.0
		if grand > 0 {
			share = float64(s.Total) / float64(grand) * 100
		}
		_, _ = pr.Fprintf(w, "%-12s %9d %18d %14.1f %12d %12d %6.1f%%\n",
			r.String(), s.Samples, s.Total, s.Mean(), s.Min, s.Max, share)
	}

	_, _ = fmt.Fprintln(w, "")
	_, _ = pr.Fprintf(w, "total: %d cycles\n", grand)
}

// WriteCSV renders the profile as CSV for comparison across runs. Numbers
// are plain digits so downstream tooling can parse them.
func (p *Profile) WriteCSV(w io.Writer) {
	_, _ = fmt.Fprintln(w,
		"region,samples,total_cycles,avg_cycles,min_cycles,max_cycles")

	for _, r := range Regions() {
		s := p.stats[r]
		_, _ = fmt.Fprintf(w, "%s,%d,%d,%.1f,%d,%d\n",
			r.String(), s.Samples, s.Total, s.Mean(), s.Min, s.Max)
	}
}

// WriteJSON renders the profile as a single JSON document for automated
// comparison.
func (p *Profile) WriteJSON(w io.Writer) error {
	jw := jwriter.NewStreamingWriter(w, 512)

	obj := jw.Object()
	obj.Name("total_cycles").Int(int(p.GrandTotal()))

	regions := obj.Name("regions").Array()
	for _, r := range Regions() {
		s := p.stats[r]
		ro := regions.Object()
		ro.Name("name").String(r.String())
		ro.Name("samples").Int(int(s.Samples))
		ro.Name("total_cycles").Int(int(s.Total))
		ro.Name("avg_cycles").Float64(s.Mean())
		ro.Name("min_cycles").Int(int(s.Min))
		ro.Name("max_cycles").Int(int(s.Max))
		ro.End()
	}
	regions.End()
	obj.End()

	if err := jw.Flush(); err != nil {
		return err
	}
	if err := jw.Error(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
