package model

// Kline represents a candlestick data point
type Kline struct {
	OpenTime  int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	CloseTime int64
}

// Report is the analysis result for one (symbol, timeframe) series
type Report struct {
	Timeframe string
	LastClose float64
	Signal    Signal
}

// SymbolScan collects the report rows of one symbol across all timeframes
type SymbolScan struct {
	Symbol string
	Rows   []Report
}

// HasSignal reports whether any row carries a non-neutral divergence
func (s *SymbolScan) HasSignal() bool {
	for _, row := range s.Rows {
		if row.Signal.Type != SignalNeutral {
			return true
		}
	}
	return false
}
