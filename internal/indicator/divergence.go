package indicator

import "divscan-go/internal/model"

// ClassifyDivergence compares the two most recent price extrema against
// the momentum oscillator at the same positions and returns one Signal
// for the whole series.
//
// The bullish check (valleys of the low price) runs first, the bearish
// check (peaks of the high price) second; when both patterns are present
// at once the bearish result overwrites the bullish one. Last write wins,
// matching the reference behavior.
//
// An extremum older than freshnessBars is stale and ignored. Undefined
// momentum at either extremum skips that check entirely. Confirmation is
// read from the slope of the last two histogram samples: rising confirms
// a bullish divergence, falling confirms a bearish one.
func ClassifyDivergence(klines []model.Kline, momentum []Value, histogram []float64, peaks, valleys []int, freshnessBars int) model.Signal {
	signal := model.Signal{
		Type:         model.SignalNeutral,
		Confirmation: model.ConfirmationNotApplicable,
	}

	n := len(klines)
	if n < 2 || len(momentum) < n || len(histogram) < n {
		return signal
	}
	currHist := histogram[n-1]
	prevHist := histogram[n-2]

	// Bullish: price made a lower low, momentum made a higher low
	if len(valleys) >= 2 {
		last := valleys[len(valleys)-1]
		prev := valleys[len(valleys)-2]

		if n-last < freshnessBars && momentum[last].Defined && momentum[prev].Defined {
			pLast, pPrev := klines[last].Low, klines[prev].Low
			mLast, mPrev := momentum[last].F, momentum[prev].F

			if pLast < pPrev && mLast > mPrev {
				signal.Type = model.SignalBullishDivergence
				signal.Details = &model.DivergenceDetails{
					PrevPrice:    pPrev,
					LastPrice:    pLast,
					PrevMomentum: mPrev,
					LastMomentum: mLast,
				}
				if currHist > prevHist {
					signal.Confirmation = model.ConfirmationConfirmed
				} else {
					signal.Confirmation = model.ConfirmationNotConfirmed
				}
			}
		}
	}

	// Bearish: price made a higher high, momentum made a lower high
	if len(peaks) >= 2 {
		last := peaks[len(peaks)-1]
		prev := peaks[len(peaks)-2]

		if n-last < freshnessBars && momentum[last].Defined && momentum[prev].Defined {
			pLast, pPrev := klines[last].High, klines[prev].High
			mLast, mPrev := momentum[last].F, momentum[prev].F

			if pLast > pPrev && mLast < mPrev {
				signal.Type = model.SignalBearishDivergence
				signal.Details = &model.DivergenceDetails{
					PrevPrice:    pPrev,
					LastPrice:    pLast,
					PrevMomentum: mPrev,
					LastMomentum: mLast,
				}
				if currHist < prevHist {
					signal.Confirmation = model.ConfirmationConfirmed
				} else {
					signal.Confirmation = model.ConfirmationNotConfirmed
				}
			}
		}
	}

	return signal
}
