package stats

import (
	"math"
	"sort"
)

// DetectOutliers returns the indices of y beyond the band between the lowerPerc and
// upperPerc percentiles widened by tukeyFactor times the band width on each side
func DetectOutliers(y []float64, lowerPerc, upperPerc, tukeyFactor float64) []int {
	if len(y) == 0 {
		return nil
	}
	lowerPerc = math.Max(lowerPerc, 0.0)
	upperPerc = math.Min(upperPerc, 1.0)
	tukeyFactor = math.Max(tukeyFactor, 0.0)

	yCopy := make([]float64, len(y))
	copy(yCopy, y)
	sort.Float64s(yCopy)
	lastIdx := len(yCopy) - 1
	lowerIdx := min(int(math.Floor(float64(len(yCopy))*lowerPerc)), lastIdx)
	upperIdx := min(int(math.Ceil(float64(len(yCopy))*upperPerc)), lastIdx)
	if lowerIdx > upperIdx {
		lowerIdx, upperIdx = upperIdx, lowerIdx
	}

	lower := yCopy[lowerIdx]
	upper := yCopy[upperIdx]
	innerRange := upper - lower
	lower -= innerRange * tukeyFactor
	upper += innerRange * tukeyFactor

	var outlierIdx []int
	for i := 0; i < len(y); i++ {
		if y[i] > upper || y[i] < lower {
			outlierIdx = append(outlierIdx, i)
		}
	}
	return outlierIdx
}
