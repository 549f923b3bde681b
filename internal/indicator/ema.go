package indicator

// CalculateEMA calculates the Exponential Moving Average, seeded with the
// first observed value. Every index of the result is defined, so the
// output aligns positionally with the input from index 0.
func CalculateEMA(values []float64, period int) []float64 {
	ema := make([]float64, len(values))
	if len(values) == 0 {
		return ema
	}

	alpha := 2.0 / float64(period+1)
	ema[0] = values[0]
	for i := 1; i < len(values); i++ {
		ema[i] = alpha*values[i] + (1-alpha)*ema[i-1]
	}
	return ema
}
