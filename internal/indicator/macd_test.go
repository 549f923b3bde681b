package indicator

import (
	"math"
	"testing"
)

func TestCalculateEMA_SeededWithFirstValue(t *testing.T) {
	// period 3 -> alpha 0.5
	ema := CalculateEMA([]float64{10, 11, 12}, 3)
	want := []float64{10, 10.5, 11.25}
	for i := range want {
		if math.Abs(ema[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: expected %.4f, got %.4f", i, want[i], ema[i])
		}
	}
}

func TestCalculateEMA_Empty(t *testing.T) {
	if got := CalculateEMA(nil, 12); len(got) != 0 {
		t.Errorf("expected empty output, got %d values", len(got))
	}
}

func TestCalculateMACD_AlignedAndConsistent(t *testing.T) {
	closes := make([]float64, 80)
	price := 100.0
	for i := range closes {
		if i%5 < 3 {
			price *= 1.01
		} else {
			price *= 0.985
		}
		closes[i] = price
	}

	macd, signal, histogram := CalculateMACD(closes, 12, 26, 9)

	if len(macd) != len(closes) || len(signal) != len(closes) || len(histogram) != len(closes) {
		t.Fatalf("expected all outputs length %d, got %d/%d/%d",
			len(closes), len(macd), len(signal), len(histogram))
	}

	// histogram[i] = macd[i] - signal[i] must hold at every index
	for i := range closes {
		if math.Abs(histogram[i]-(macd[i]-signal[i])) > 1e-9 {
			t.Errorf("index %d: histogram %.6f != macd-signal %.6f", i, histogram[i], macd[i]-signal[i])
		}
	}
}

func TestCalculateMACD_ConstantSeriesIsZero(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 500
	}

	macd, signal, histogram := CalculateMACD(closes, 12, 26, 9)
	for i := range closes {
		if macd[i] != 0 || signal[i] != 0 || histogram[i] != 0 {
			t.Errorf("index %d: expected zeros for constant series, got %.6f/%.6f/%.6f",
				i, macd[i], signal[i], histogram[i])
		}
	}
}

func TestCalculateMACD_EmptyInput(t *testing.T) {
	macd, signal, histogram := CalculateMACD(nil, 12, 26, 9)
	if len(macd) != 0 || len(signal) != 0 || len(histogram) != 0 {
		t.Error("expected empty outputs for empty input")
	}
}
