package indicator

// CalculateMACD calculates the Moving Average Convergence Divergence.
// All three outputs are len(closes) long and aligned to the input; the
// EMAs are seeded with the first close, so there is no warm-up region.
func CalculateMACD(closes []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal, histogram []float64) {
	fastEMA := CalculateEMA(closes, fastPeriod)
	slowEMA := CalculateEMA(closes, slowPeriod)

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine := CalculateEMA(macdLine, signalPeriod)

	histogramLine := make([]float64, len(closes))
	for i := range closes {
		histogramLine[i] = macdLine[i] - signalLine[i]
	}

	return macdLine, signalLine, histogramLine
}
