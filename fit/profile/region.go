package profile

// Region identifies one measured section of the benchmark loop.
type Region uint8

const (
	// RegionWorkload covers generating a workload and cloning it per
	// strategy.
	RegionWorkload Region = iota

	// RegionRebuild through RegionScan cover one strategy each, in the
	// canonical strategy order.
	RegionRebuild
	RegionSwapRemove
	RegionFold
	RegionScan

	numRegions
)

var regionNames = [numRegions]string{
	"workload",
	"rebuild",
	"swap-remove",
	"fold",
	"scan",
}

// String returns the region's report label.
func (r Region) String() string {
	if r >= numRegions {
		return "unknown"
	}
	return regionNames[r]
}

// Regions returns every region in report order.
func Regions() []Region {
	out := make([]Region, numRegions)
	for i := range out {
		out[i] = Region(i)
	}
	return out
}

// StrategyRegion maps a strategy's position in the canonical order to its
// region. It panics on positions outside the fixed set.
func StrategyRegion(i int) Region {
	if i < 0 || i >= int(numRegions)-1 {
		panic("profile: no region for strategy index")
	}
	return RegionRebuild + Region(i)
}
