package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"divscan-go/internal/model"
)

const (
	colorGreen = "\033[92m"
	colorRed   = "\033[91m"
	colorReset = "\033[0m"
)

var tableHeaders = []string{"Timeframe", "Price", "Signal", "MACD Conf.", "Details"}

// RenderTable renders one symbol's scan as a bordered ANSI table
func RenderTable(scan *model.SymbolScan) string {
	var b strings.Builder

	title := fmt.Sprintf("DIVERGENCE ANALYSIS REPORT (%s)", scan.Symbol)
	rule := strings.Repeat("=", 75)
	fmt.Fprintf(&b, "%s\n%s\n%s\n", rule, title, rule)

	if len(scan.Rows) == 0 {
		b.WriteString("No timeframe had enough data to analyze.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(scan.Rows))
	for _, row := range scan.Rows {
		rows = append(rows, rowCells(row))
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, cells := range rows {
		for i, c := range cells {
			if w := utf8.RuneCountInString(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeBorder(&b, widths, "┌", "┬", "┐")
	writeRow(&b, tableHeaders, widths, nil)
	writeBorder(&b, widths, "├", "┼", "┤")
	for i, cells := range rows {
		writeRow(&b, cells, widths, &scan.Rows[i].Signal)
	}
	writeBorder(&b, widths, "└", "┴", "┘")

	return b.String()
}

func rowCells(row model.Report) []string {
	details := "-"
	if d := row.Signal.Details; d != nil {
		details = fmt.Sprintf("P:%.0f->%.0f RSI:%.0f->%.0f",
			d.PrevPrice, d.LastPrice, d.PrevMomentum, d.LastMomentum)
	}

	return []string{
		row.Timeframe,
		fmt.Sprintf("$%.2f", row.LastClose),
		signalText(row.Signal.Type),
		confirmationText(row.Signal),
		details,
	}
}

func signalText(t model.SignalType) string {
	switch t {
	case model.SignalBullishDivergence:
		return "BULLISH DIV"
	case model.SignalBearishDivergence:
		return "BEARISH DIV"
	default:
		return "Neutral"
	}
}

func confirmationText(sig model.Signal) string {
	switch sig.Confirmation {
	case model.ConfirmationConfirmed:
		if sig.Type == model.SignalBullishDivergence {
			return "YES (rising)"
		}
		return "YES (falling)"
	case model.ConfirmationNotConfirmed:
		return "NO"
	default:
		return "-"
	}
}

// signalColor returns the ANSI color for the signal column, or "" for none
func signalColor(t model.SignalType) string {
	switch t {
	case model.SignalBullishDivergence:
		return colorGreen
	case model.SignalBearishDivergence:
		return colorRed
	default:
		return ""
	}
}

func writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// writeRow emits one table row; the signal cell (column 2) is colored
// when sig carries a divergence. Padding is computed from the visible
// text so the color escapes do not skew the grid.
func writeRow(b *strings.Builder, cells []string, widths []int, sig *model.Signal) {
	b.WriteString("│")
	for i, cell := range cells {
		pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		text := cell
		if i == 2 && sig != nil {
			if color := signalColor(sig.Type); color != "" {
				text = color + cell + colorReset
			}
		}
		fmt.Fprintf(b, " %s%s │", text, pad)
	}
	b.WriteString("\n")
}
