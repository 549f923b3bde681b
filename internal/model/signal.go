package model

// SignalType classifies the divergence found in a series
type SignalType string

const (
	SignalNeutral           SignalType = "NEUTRAL"
	SignalBullishDivergence SignalType = "BULLISH_DIV"
	SignalBearishDivergence SignalType = "BEARISH_DIV"
)

// Confirmation is the verdict of the histogram-slope check
type Confirmation string

const (
	ConfirmationConfirmed     Confirmation = "CONFIRMED"
	ConfirmationNotConfirmed  Confirmation = "NOT_CONFIRMED"
	ConfirmationNotApplicable Confirmation = "N/A"
)

// DivergenceDetails holds the price and momentum values at the two
// extrema that formed the divergence
type DivergenceDetails struct {
	PrevPrice    float64
	LastPrice    float64
	PrevMomentum float64
	LastMomentum float64
}

// Signal is the classification result for one whole series.
// Details is nil iff Type is SignalNeutral, and Confirmation is
// ConfirmationNotApplicable in exactly that case.
type Signal struct {
	Type         SignalType
	Details      *DivergenceDetails
	Confirmation Confirmation
}
