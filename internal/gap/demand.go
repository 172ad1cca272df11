package gap

import "github.com/jonathan/career-compass/internal/types"

// DemandClass labels how in-demand a technology currently is.
type DemandClass string

// Demand classes.
const (
	DemandHigh   DemandClass = "High"
	DemandMedium DemandClass = "Medium"
	DemandNiche  DemandClass = "Niche/Growing"
)

// demandThresholds are per-category trend-score cutoffs for demand
// classification. Usage percentages vary a lot by category, so a single
// global cutoff would misclassify frameworks against languages.
var demandThresholds = map[string]struct{ high, medium float64 }{
	"Language":            {45, 25},
	"Framework":           {30, 17},
	"Database":            {35, 18},
	"Developer Tool":      {40, 20},
	"Cloud Platform":      {35, 15},
	"Management Tool":     {30, 15},
	"Job Role":            {15, 5},
	"Software Challenges": {40, 20},
}

var defaultDemandThreshold = struct{ high, medium float64 }{40, 20}

// ClassifyDemand maps a trend score to a demand class using the
// category's thresholds.
func ClassifyDemand(trendScore float64, category string) DemandClass {
	thresholds, ok := demandThresholds[category]
	if !ok {
		thresholds = defaultDemandThreshold
	}
	switch {
	case trendScore >= thresholds.high:
		return DemandHigh
	case trendScore >= thresholds.medium:
		return DemandMedium
	default:
		return DemandNiche
	}
}

// TrendIndex is a lookup from technology name to its trend record.
type TrendIndex map[string]types.TrendRecord

// IndexTrends builds a TrendIndex from a snapshot.
func IndexTrends(trends []types.TrendRecord) TrendIndex {
	index := make(TrendIndex, len(trends))
	for _, record := range trends {
		index[record.Technology] = record
	}
	return index
}

// marketDemand derives a 0-100 demand percentage from a trend record:
// the usage score scaled up by current growth, capped at 100.
func marketDemand(record types.TrendRecord) float64 {
	demand := record.TrendScore * (1 + record.GrowthRate)
	if demand > 100 {
		demand = 100
	}
	if demand < 0 {
		demand = 0
	}
	return demand
}
