package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointsByDistance is the literal bucket table: distance -> delta.
var pointsByDistance = map[int]int{0: 2, 1: 1, 2: -1, 3: -2, 4: -2}

func TestComputePoints_FullGrid(t *testing.T) {
	for u := 1; u <= 5; u++ {
		for r := 1; r <= 5; r++ {
			d := u - r
			if d < 0 {
				d = -d
			}
			require.Equal(t, pointsByDistance[d], ComputePoints(u, r), "u=%d r=%d", u, r)
		}
	}
}

func TestAlignmentMessage_MatchesPointBuckets(t *testing.T) {
	// The message bucket and the point bucket must agree for every pair.
	msgByPoints := map[int]string{
		2:  "Perfect! Exact alignment with consensus!",
		1:  "Nice! Just 1 point away from consensus",
		-1: "Almost there! 2 points off from consensus",
		-2: "Keep practicing! Way off from consensus",
	}
	for u := 1; u <= 5; u++ {
		for r := 1; r <= 5; r++ {
			require.Equal(t, msgByPoints[ComputePoints(u, r)], AlignmentMessage(u, r), "u=%d r=%d", u, r)
		}
	}
}

func TestClassify_MatchesPointBuckets(t *testing.T) {
	outcomeByPoints := map[int]Outcome{2: Perfect, 1: NearMiss, -1: MinorMiss, -2: MajorMiss}
	for u := 1; u <= 5; u++ {
		for r := 1; r <= 5; r++ {
			require.Equal(t, outcomeByPoints[ComputePoints(u, r)], Classify(u, r), "u=%d r=%d", u, r)
		}
	}
}

func TestComputePoints_Asymmetry(t *testing.T) {
	// Scoring is symmetric in distance, not in sign: spot-check both sides.
	assert.Equal(t, ComputePoints(1, 4), ComputePoints(4, 1))
	assert.Equal(t, -2, ComputePoints(1, 4))
	assert.Equal(t, 2, ComputePoints(3, 3))
}

func TestRatingLabel(t *testing.T) {
	want := map[int]string{
		1: "Critical Issue",
		2: "Major Issue",
		3: "Perceptible Issue",
		4: "Minor Issues",
		5: "Just Right",
	}
	for v, label := range want {
		assert.Equal(t, label, RatingLabel(v))
	}
	assert.Equal(t, "", RatingLabel(0))
	assert.Equal(t, "", RatingLabel(6))
}
