package service

import (
	"fmt"
	"strings"
	"time"

	"divscan-go/internal/model"
)

// formatScanMessage renders one symbol's scan as a Telegram HTML message
func formatScanMessage(scan *model.SymbolScan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>%s Divergence Scan</b>\n\n", scan.Symbol)

	if len(scan.Rows) == 0 {
		b.WriteString("No timeframe had enough data to analyze.\n")
		return b.String()
	}

	for _, row := range scan.Rows {
		fmt.Fprintf(&b, "%s <b>%s</b> — $%.2f\n", signalEmoji(row.Signal.Type), row.Timeframe, row.LastClose)
		fmt.Fprintf(&b, "    Signal: <code>%s</code>", row.Signal.Type)
		if row.Signal.Type != model.SignalNeutral {
			fmt.Fprintf(&b, " | Conf: <code>%s</code>", row.Signal.Confirmation)
		}
		b.WriteString("\n")
		if d := row.Signal.Details; d != nil {
			fmt.Fprintf(&b, "    P:%.0f→%.0f RSI:%.0f→%.0f\n",
				d.PrevPrice, d.LastPrice, d.PrevMomentum, d.LastMomentum)
		}
	}

	fmt.Fprintf(&b, "\n⏰ %s", time.Now().Format("15:04:05, 02 Jan"))
	return b.String()
}

func formatStartMessage() string {
	return `👋 <b>Divergence Scanner</b>

I watch for RSI divergences against price swings and check each one against the MACD histogram slope.

Commands:
/scan — run a scan now
/status — uptime and health`
}

func formatStatusMessage(startedAt time.Time) string {
	uptime := time.Since(startedAt).Round(time.Second)
	return fmt.Sprintf("✅ <b>Scanner running</b>\n⏱ Uptime: <code>%s</code>", uptime)
}

func signalEmoji(t model.SignalType) string {
	switch t {
	case model.SignalBullishDivergence:
		return "🟢"
	case model.SignalBearishDivergence:
		return "🔴"
	default:
		return "⚪️"
	}
}
