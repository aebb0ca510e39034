package equity

import "fmt"

// MaxBinomialN bounds Binomial to a single deck, where every C(n, k) and each
// intermediate product fits in an int.
const MaxBinomialN = 52

// Binomial returns C(n, k), or 0 when k is outside 0..n. It panics when n
// exceeds MaxBinomialN.
func Binomial(n, k int) int {
	if n > MaxBinomialN {
		panic(fmt.Sprintf("binomial C(%d, %d): n above %d", n, k, MaxBinomialN))
	}
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		// Exact at every step: result holds C(n-k+i-1, i-1).
		result = result * (n - k + i) / i
	}
	return result
}

// HitProbability is the chance that at least one of outs appears among the
// next draws cards dealt from unseen, computed exactly:
// 1 - C(unseen-outs, draws) / C(unseen, draws).
func HitProbability(outs, unseen, draws int) (float64, error) {
	if draws != 1 && draws != 2 {
		return 0, &UnsupportedDrawsError{Draws: draws}
	}
	if unseen > MaxBinomialN {
		return 0, fmt.Errorf("%d unseen cards, at most %d", unseen, MaxBinomialN)
	}
	if unseen < draws {
		return 0, fmt.Errorf("only %d unseen cards for %d draws", unseen, draws)
	}
	if outs < 0 || outs > unseen {
		return 0, fmt.Errorf("outs %d outside 0..%d", outs, unseen)
	}

	miss := float64(Binomial(unseen-outs, draws)) / float64(Binomial(unseen, draws))
	return 1 - miss, nil
}

// PotOdds returns the share of the final pot a call would contribute, as a
// percentage in 0..100.
func PotOdds(toCall, pot int) (float64, error) {
	if toCall < 0 || pot < 0 {
		return 0, fmt.Errorf("negative chips: call %d, pot %d", toCall, pot)
	}
	if toCall+pot == 0 {
		return 0, nil
	}
	return float64(toCall) / float64(toCall+pot) * 100, nil
}
