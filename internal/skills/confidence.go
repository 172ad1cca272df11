package skills

// Confidence scoring constants. The formula is monotonic in both mention
// count and indicator strength and bounded to [0,1].
const (
	confidenceBase          = 0.3
	confidencePerMention    = 0.1
	confidenceMentionCap    = 5
	confidencePerIndicator  = 0.05
	confidenceIndicatorCap  = 4
)

// calculateConfidence derives a skill's confidence score from how often
// it is mentioned and how strong the surrounding level indicators are.
func calculateConfidence(mentionCount, indicatorStrength int) float64 {
	score := confidenceBase
	score += confidencePerMention * float64(min(mentionCount, confidenceMentionCap))
	score += confidencePerIndicator * float64(min(indicatorStrength, confidenceIndicatorCap))
	if score > 1.0 {
		score = 1.0
	}
	return score
}
