package view

import "github.com/pveldman/tasklane/analytics"

// SmoothedPoint pairs a trend point with its moving average.
type SmoothedPoint struct {
	analytics.TrendPoint
	MovingAverage float64 `json:"movingAverage"`
}

// Smooth computes a centered moving average over a window of up to 5 days,
// clamped at the sequence boundaries. The trend chart draws this next to the
// raw daily counts.
func Smooth(trend []analytics.TrendPoint) []SmoothedPoint {
	out := make([]SmoothedPoint, len(trend))
	for i, p := range trend {
		start := i - 2
		if start < 0 {
			start = 0
		}
		end := i + 3
		if end > len(trend) {
			end = len(trend)
		}

		sum := 0
		for _, q := range trend[start:end] {
			sum += q.Completed
		}
		out[i] = SmoothedPoint{
			TrendPoint:    p,
			MovingAverage: float64(sum) / float64(end-start),
		}
	}
	return out
}
