package persona

import "math"

// Fixed weights of the performance score. The formula is load-bearing for
// dashboard compatibility; do not tune without versioning the API.
const (
	incomeWeight     = 0.40
	messageWeight    = 0.20
	responseWeight   = 0.15
	contentWeight    = 0.15
	conversionWeight = 0.10

	incomeCap  = 1000.0 // income above this no longer raises the score
	messageCap = 100.0
)

// PerformanceScore derives a 0..100 integer from a persona's stats via a
// fixed weighted sum. Pure function, invoked on read paths only; the result
// is never persisted.
func PerformanceScore(stats Stats) int {
	income, _ := stats.TotalIncome.Float64()

	incomeScore := math.Min(income, incomeCap) / incomeCap * 100
	messageScore := math.Min(float64(stats.MessageCount), messageCap) / messageCap * 100
	responseScore := stats.ResponseRate

	contentScore := 0.0
	if stats.ContentCreated > 0 {
		contentScore = float64(stats.ContentPublished) / float64(stats.ContentCreated) * 100
	}

	conversionScore := stats.ConversionRate

	total := incomeScore*incomeWeight +
		messageScore*messageWeight +
		responseScore*responseWeight +
		contentScore*contentWeight +
		conversionScore*conversionWeight

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
