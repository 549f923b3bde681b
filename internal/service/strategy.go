package service

import (
	"fmt"
	"log"

	"divscan-go/internal/indicator"
	"divscan-go/internal/model"
)

// AnalysisConfig carries the indicator and classifier parameters. It is
// passed by value into every evaluation; nothing mutates it after startup.
type AnalysisConfig struct {
	MomentumPeriod  int // RSI length
	FastPeriod      int // MACD fast EMA
	SlowPeriod      int // MACD slow EMA
	SignalPeriod    int // MACD signal EMA
	ExtremaLookback int // bars on each side of a swing point
	FreshnessBars   int // max age of the latest extremum
}

// DefaultAnalysisConfig returns the standard RSI(14) / MACD(12,26,9)
// parameters with a 5-bar swing window and a 15-bar freshness gate.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MomentumPeriod:  14,
		FastPeriod:      12,
		SlowPeriod:      26,
		SignalPeriod:    9,
		ExtremaLookback: 5,
		FreshnessBars:   15,
	}
}

// Validate rejects parameter sets that indicate a programming mistake
func (c AnalysisConfig) Validate() error {
	if c.MomentumPeriod <= 0 || c.FastPeriod <= 0 || c.SlowPeriod <= 0 || c.SignalPeriod <= 0 {
		return fmt.Errorf("analysis config: all periods must be positive, got %+v", c)
	}
	if c.ExtremaLookback <= 0 {
		return fmt.Errorf("analysis config: extrema lookback must be positive, got %d", c.ExtremaLookback)
	}
	if c.FreshnessBars <= 0 {
		return fmt.Errorf("analysis config: freshness window must be positive, got %d", c.FreshnessBars)
	}
	return nil
}

// Analyze runs the full divergence pipeline on one candle series:
// oscillators, swing extrema of the highs and lows, then classification.
// A series too short to analyze (len <= SlowPeriod) yields (nil, nil):
// no report row, not an error. An invalid config is an error.
func Analyze(klines []model.Kline, cfg AnalysisConfig) (*model.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(klines) <= cfg.SlowPeriod {
		return nil, nil
	}

	closes, highs, lows := extractSeries(klines)

	momentum := indicator.CalculateRSI(closes, cfg.MomentumPeriod)
	_, _, histogram := indicator.CalculateMACD(closes, cfg.FastPeriod, cfg.SlowPeriod, cfg.SignalPeriod)

	peaks, _ := indicator.FindExtrema(highs, cfg.ExtremaLookback)
	_, valleys := indicator.FindExtrema(lows, cfg.ExtremaLookback)

	signal := indicator.ClassifyDivergence(klines, momentum, histogram, peaks, valleys, cfg.FreshnessBars)

	return &model.Report{
		LastClose: closes[len(closes)-1],
		Signal:    signal,
	}, nil
}

// StrategyService fetches one timeframe's candles and evaluates them
type StrategyService struct {
	binance *BinanceService
	cfg     AnalysisConfig
	limit   int
}

func NewStrategyService(binance *BinanceService, cfg AnalysisConfig, limit int) *StrategyService {
	return &StrategyService{
		binance: binance,
		cfg:     cfg,
		limit:   limit,
	}
}

// EvaluateTimeframe produces one report row for (symbol, interval).
// It returns (nil, nil) when there is not enough data for a verdict.
func (s *StrategyService) EvaluateTimeframe(symbol, interval string) (*model.Report, error) {
	klines, err := s.binance.GetKlines(symbol, interval, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s klines: %w", interval, err)
	}

	report, err := Analyze(klines, s.cfg)
	if err != nil {
		return nil, err
	}
	if report == nil {
		log.Printf("⚠️  [Strategy] %s %s - insufficient data (%d klines), skipping", symbol, interval, len(klines))
		return nil, nil
	}

	report.Timeframe = interval
	return report, nil
}

func extractSeries(klines []model.Kline) (closes, highs, lows []float64) {
	closes = make([]float64, len(klines))
	highs = make([]float64, len(klines))
	lows = make([]float64, len(klines))

	for i, k := range klines {
		closes[i] = k.Close
		highs[i] = k.High
		lows[i] = k.Low
	}
	return closes, highs, lows
}
