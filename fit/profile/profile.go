package profile

import "github.com/joshuapare/fitbench/internal/cycles"

// Stats holds the cycle samples accumulated against one region.
type Stats struct {
	// Samples counts how many times the region was recorded.
	Samples uint64

	// Total is the sum of all recorded cycle deltas.
	Total uint64

	// Min and Max are the smallest and largest single deltas seen.
	Min uint64
	Max uint64
}

// Mean returns the average cycles per sample, zero when nothing was
// recorded.
func (s Stats) Mean() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Samples)
}

// Profile accumulates cycle costs for every region of one run.
type Profile struct {
	stats [numRegions]Stats
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{}
}

// Time runs fn and records its elapsed cycles against region r. The
// counter is read after fn's closure is already built, so only the call
// itself lands inside the measured span.
func (p *Profile) Time(r Region, fn func()) {
	start := cycles.Now()
	fn()
	p.Add(r, cycles.Now()-start)
}

// Add records one elapsed-cycle sample against region r.
func (p *Profile) Add(r Region, elapsed uint64) {
	s := &p.stats[r]
	if s.Samples == 0 || elapsed < s.Min {
		s.Min = elapsed
	}
	if elapsed > s.Max {
		s.Max = elapsed
	}
	s.Samples++
	s.Total += elapsed
}

// Stats returns the accumulated numbers for region r.
func (p *Profile) Stats(r Region) Stats {
	return p.stats[r]
}

// GrandTotal returns the cycles recorded across all regions.
func (p *Profile) GrandTotal() uint64 {
	var total uint64
	for _, s := range p.stats {
		total += s.Total
	}
	return total
}

// Reset clears every region for reuse.
func (p *Profile) Reset() {
	p.stats = [numRegions]Stats{}
}
