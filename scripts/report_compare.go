package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RegionStats represents one parsed report row.
type RegionStats struct {
	Region  string
	Samples int64
	Total   int64
	Avg     float64
	Min     int64
	Max     int64
}

// Comparison represents one region compared across two reports.
type Comparison struct {
	Region  string
	BaseAvg float64
	NewAvg  float64
	Speedup float64
}

var (
	baseFile = flag.String(
		"base",
		"",
		"Baseline CSV report from fitbench run --format csv",
	)
	newFile    = flag.String("new", "", "Candidate CSV report to compare against the baseline")
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	if *baseFile == "" || *newFile == "" {
		fmt.Fprintln(os.Stderr,
			"Usage: report_compare -base old.csv -new new.csv [-output report.md]")
		os.Exit(1)
	}

	base, err := parseReport(*baseFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading baseline: %v\n", err)
		os.Exit(1)
	}
	cand, err := parseReport(*newFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading candidate: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d baseline and %d candidate regions\n",
			len(base), len(cand))
	}

	comparisons := generateComparisons(base, cand)
	report := generateMarkdownReport(comparisons)

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(report), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}
}

func parseReport(path string) ([]RegionStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 || rows[0][0] != "region" {
		return nil, fmt.Errorf("%s does not look like a fitbench CSV report", path)
	}

	var stats []RegionStats
	for _, row := range rows[1:] {
		if len(row) != 6 {
			return nil, fmt.Errorf("%s: malformed row %v", path, row)
		}
		samples, _ := strconv.ParseInt(row[1], 10, 64)
		total, _ := strconv.ParseInt(row[2], 10, 64)
		avg, _ := strconv.ParseFloat(row[3], 64)
		min, _ := strconv.ParseInt(row[4], 10, 64)
		max, _ := strconv.ParseInt(row[5], 10, 64)
		stats = append(stats, RegionStats{
			Region:  row[0],
			Samples: samples,
			Total:   total,
			Avg:     avg,
			Min:     min,
			Max:     max,
		})
	}
	return stats, nil
}

func generateComparisons(base, cand []RegionStats) []Comparison {
	byRegion := make(map[string]RegionStats, len(cand))
	for _, s := range cand {
		byRegion[s.Region] = s
	}

	var comparisons []Comparison
	for _, b := range base {
		c, ok := byRegion[b.Region]
		if !ok {
			continue
		}
		speedup := 0.0
		if c.Avg > 0 {
			speedup = b.Avg / c.Avg
		}
		comparisons = append(comparisons, Comparison{
			Region:  b.Region,
			BaseAvg: b.Avg,
			NewAvg:  c.Avg,
			Speedup: speedup,
		})
	}
	return comparisons
}

func generateMarkdownReport(comparisons []Comparison) string {
	var sb strings.Builder

	sb.WriteString("# Cycle Report Comparison\n\n")
	sb.WriteString("| Region | Baseline avg | Candidate avg | Speedup |\n")
	sb.WriteString("|--------|-------------:|--------------:|--------:|\n")

	for _, c := range comparisons {
		marker := ""
		switch {
		case c.Speedup >= 1.05:
			marker = " faster"
		case c.Speedup > 0 && c.Speedup <= 0.95:
			marker = " slower"
		}
		sb.WriteString(fmt.Sprintf("| %s | %.1f | %.1f | %.2fx%s |\n",
			c.Region, c.BaseAvg, c.NewAvg, c.Speedup, marker))
	}

	sb.WriteString("\nSpeedup is baseline avg cycles divided by candidate avg cycles,\n")
	sb.WriteString("so values above 1.0 mean the candidate run was cheaper.\n")
	return sb.String()
}
