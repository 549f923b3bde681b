package scanner

import (
	"strings"
	"testing"

	"divscan-go/internal/model"
)

func TestRenderTable_ColorsSignals(t *testing.T) {
	scan := &model.SymbolScan{
		Symbol: "BTCUSDT",
		Rows: []model.Report{
			{Timeframe: "15m", LastClose: 43250.12, Signal: model.Signal{
				Type:         model.SignalNeutral,
				Confirmation: model.ConfirmationNotApplicable,
			}},
			{Timeframe: "1h", LastClose: 43261.5, Signal: model.Signal{
				Type:         model.SignalBullishDivergence,
				Confirmation: model.ConfirmationConfirmed,
				Details: &model.DivergenceDetails{
					PrevPrice: 42000, LastPrice: 41500,
					PrevMomentum: 28, LastMomentum: 35,
				},
			}},
			{Timeframe: "4h", LastClose: 43270, Signal: model.Signal{
				Type:         model.SignalBearishDivergence,
				Confirmation: model.ConfirmationNotConfirmed,
				Details: &model.DivergenceDetails{
					PrevPrice: 43000, LastPrice: 43500,
					PrevMomentum: 72, LastMomentum: 65,
				},
			}},
		},
	}

	out := RenderTable(scan)

	for _, want := range []string{
		"DIVERGENCE ANALYSIS REPORT (BTCUSDT)",
		"Timeframe",
		"MACD Conf.",
		colorGreen + "BULLISH DIV" + colorReset,
		colorRed + "BEARISH DIV" + colorReset,
		"YES (rising)",
		"NO",
		"P:42000->41500 RSI:28->35",
		"$43250.12",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}

	// Neutral rows stay uncolored
	if strings.Contains(out, colorGreen+"Neutral") || strings.Contains(out, colorRed+"Neutral") {
		t.Error("neutral signal must not be colored")
	}
}

func TestRenderTable_NoRows(t *testing.T) {
	out := RenderTable(&model.SymbolScan{Symbol: "ETHUSDT"})
	if !strings.Contains(out, "No timeframe had enough data") {
		t.Errorf("expected empty-scan notice, got:\n%s", out)
	}
}
