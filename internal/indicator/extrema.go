package indicator

// FindExtrema finds local maxima and minima of a series. Index i is a
// peak iff series[i] is strictly greater than every neighbor within
// lookback bars on both sides, and a valley iff strictly less than all
// of them. Ties disqualify both roles. Series shorter than 2*lookback
// yield empty results. Both index slices are in ascending order.
func FindExtrema(series []float64, lookback int) (peaks, valleys []int) {
	if len(series) < lookback*2 {
		return nil, nil
	}

	for i := lookback; i < len(series)-lookback; i++ {
		current := series[i]
		isPeak, isValley := true, true
		for j := 1; j <= lookback; j++ {
			if current <= series[i-j] || current <= series[i+j] {
				isPeak = false
			}
			if current >= series[i-j] || current >= series[i+j] {
				isValley = false
			}
			if !isPeak && !isValley {
				break
			}
		}
		if isPeak {
			peaks = append(peaks, i)
		}
		if isValley {
			valleys = append(valleys, i)
		}
	}

	return peaks, valleys
}
