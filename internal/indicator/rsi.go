package indicator

// CalculateRSI calculates the Relative Strength Index over the given
// period using Wilder smoothing. The result is always len(closes) long;
// indices below period are undefined (warm-up), so a short series yields
// a series of undefined values rather than an error.
func CalculateRSI(closes []float64, period int) []Value {
	rsi := make([]Value, len(closes))
	if len(closes) < period+1 {
		return rsi
	}

	// Seed: plain average of the first `period` gains and losses
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	rsi[period] = rsiFromAverages(avgGain, avgLoss)

	// Wilder recursion: avg = (avg*(period-1) + x) / period
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		rsi[i] = rsiFromAverages(avgGain, avgLoss)
	}

	return rsi
}

func rsiFromAverages(avgGain, avgLoss float64) Value {
	if avgLoss == 0 {
		if avgGain == 0 {
			// Flat window: the gain/loss ratio is 0/0. Report the neutral
			// midpoint so the sample stays comparable at extrema.
			return NewValue(50)
		}
		return NewValue(100)
	}
	rs := avgGain / avgLoss
	return NewValue(100 - 100/(1+rs))
}
