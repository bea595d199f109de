package scoring

// Ratings are integers on the 1-5 ordinal scale. Points are a function of the
// absolute distance between the rater's answer and the consensus reference.

// Outcome classifies a single submission by its distance bucket. The
// presentation layer decides how to render each variant.
type Outcome string

const (
	Perfect   Outcome = "perfect"    // distance 0
	NearMiss  Outcome = "near_miss"  // distance 1
	MinorMiss Outcome = "minor_miss" // distance 2
	MajorMiss Outcome = "major_miss" // distance >= 3
)

// ComputePoints maps (user rating, reference rating) to a point delta:
// +2 for an exact match, +1 one away, -1 two away, -2 three or more away.
func ComputePoints(user, ref int) int {
	switch distance(user, ref) {
	case 0:
		return 2
	case 1:
		return 1
	case 2:
		return -1
	default:
		return -2
	}
}

// AlignmentMessage returns the feedback line for a submission. Buckets are
// identical to ComputePoints.
func AlignmentMessage(user, ref int) string {
	switch distance(user, ref) {
	case 0:
		return "Perfect! Exact alignment with consensus!"
	case 1:
		return "Nice! Just 1 point away from consensus"
	case 2:
		return "Almost there! 2 points off from consensus"
	default:
		return "Keep practicing! Way off from consensus"
	}
}

// Classify buckets a submission the same way ComputePoints does.
func Classify(user, ref int) Outcome {
	switch distance(user, ref) {
	case 0:
		return Perfect
	case 1:
		return NearMiss
	case 2:
		return MinorMiss
	default:
		return MajorMiss
	}
}

// RatingLabel is the display label for each point on the rating scale.
func RatingLabel(v int) string {
	switch v {
	case 1:
		return "Critical Issue"
	case 2:
		return "Major Issue"
	case 3:
		return "Perceptible Issue"
	case 4:
		return "Minor Issues"
	case 5:
		return "Just Right"
	default:
		return ""
	}
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
