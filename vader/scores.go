package vader

import (
	"math"

	"github.com/gonum/floats"
)

// Scores is the result of one scoring call.
type Scores struct {
	Neg      float64 `json:"neg" yaml:"neg"`
	Neu      float64 `json:"neu" yaml:"neu"`
	Pos      float64 `json:"pos" yaml:"pos"`
	Compound float64 `json:"compound" yaml:"compound"`
}

// Rounded returns the scores rounded for display: proportions to 3
// decimals and compound to 4.
func (s Scores) Rounded() Scores {
	return Scores{
		Neg:      floats.Round(s.Neg, 3),
		Neu:      floats.Round(s.Neu, 3),
		Pos:      floats.Round(s.Pos, 3),
		Compound: floats.Round(s.Compound, 4),
	}
}

// want separate positive versus negative sentiment scores
func siftSentimentScores(sentiments []float64) (float64, float64, float64) {
	posSum := 0.0
	negSum := 0.0
	neuCount := 0.0

	for _, sentiment := range sentiments {
		if sentiment > 0 {
			posSum += sentiment + 1 //compensates for neutral words that are counted as 1
		} else if sentiment < 0 {
			negSum += sentiment - 1 //when used with math.Abs(), compensates for neutrals
		} else {
			neuCount++
		}
	}

	return posSum, negSum, neuCount
}

func scoreValence(sentiments []float64, punctEmphAmplifier float64) Scores {
	if len(sentiments) == 0 {
		return Scores{}
	}

	sumS := floats.Sum(sentiments)

	// punctuation reinforces the polarity of the sum; a zero sum reads as negative
	if sumS > 0 {
		sumS += punctEmphAmplifier
	} else {
		sumS -= punctEmphAmplifier
	}
	compound := Normalize(sumS)

	// discriminate between positive, negative and neutral sentiment scores
	posSum, negSum, neuCount := siftSentimentScores(sentiments)
	if posSum > math.Abs(negSum) {
		posSum += punctEmphAmplifier
	} else if posSum < math.Abs(negSum) {
		negSum -= punctEmphAmplifier
	}

	total := posSum + math.Abs(negSum) + neuCount

	return Scores{
		Neg:      math.Abs(negSum / total),
		Neu:      math.Abs(neuCount / total),
		Pos:      math.Abs(posSum / total),
		Compound: compound,
	}
}
