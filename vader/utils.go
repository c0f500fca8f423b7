package vader

import (
	"math"
	"strings"
)

// Normalize the score to be between -1 and 1 using an alpha that
// approximates the max expected value
func Normalize(score float64) float64 {
	normalizedScore := score / math.Sqrt((score*score)+float64(Alpha))

	if normalizedScore < -1.0 {
		return -1.0
	} else if normalizedScore > 1.0 {
		return 1.0
	} else {
		return normalizedScore
	}
}

// Determine if a token negates what follows it
func isNegated(k Key) bool {
	if Negations.Contains(k) {
		return true
	}

	if IncludeNt && strings.Contains(string(k), "n't") {
		return true
	}

	return false
}

// Check if the preceding word increases, decreases, or negates/nullifies the
// valence
func scalarIncDec(t Token, valence float64, isCapDiff bool) float64 {
	scalar, ok := BoosterMap[t.Key]
	if !ok {
		return 0
	}

	if valence < 0 {
		scalar *= -1
	}
	//check if booster/dampener word is in ALLCAPS (while others aren't)
	if t.IsAllCaps() && isCapDiff {
		if valence > 0 {
			scalar += C_INCR
		} else if valence < 0 {
			scalar -= C_INCR
		}
	}

	return scalar
}

// add emphasis from exclamation points and question marks
func punctuationEmphasis(text string) float64 {
	return amplifyEP(text) + amplifyQM(text)
}

// check for added emphasis resulting from exclamation points (up to 4 of them)
func amplifyEP(text string) float64 {
	epCount := strings.Count(text, "!")
	if epCount > MAX_EM {
		epCount = MAX_EM
	}

	return float64(epCount) * EM_INCR
}

// check for added emphasis resulting from question marks, flat above 3
func amplifyQM(text string) float64 {
	qmCount := strings.Count(text, "?")
	if qmCount > MAX_QM {
		return MAX_QM_INCR
	}

	return float64(qmCount) * QM_INCR
}
