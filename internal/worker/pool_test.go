package worker

import (
	"testing"

	"divscan-go/internal/model"
)

func TestPool_OneScanPerSymbol(t *testing.T) {
	symbols := []string{"BTCUSDT", "ETHUSDT", "SOLUSDT", "XRPUSDT", "ADAUSDT"}

	pool := NewPool(3, func(symbol string) *model.SymbolScan {
		return &model.SymbolScan{Symbol: symbol}
	})
	pool.Start()
	for _, s := range symbols {
		pool.AddJob(s)
	}
	scans := pool.Wait()

	if len(scans) != len(symbols) {
		t.Fatalf("expected %d scans, got %d", len(symbols), len(scans))
	}
	seen := map[string]bool{}
	for _, scan := range scans {
		seen[scan.Symbol] = true
	}
	for _, s := range symbols {
		if !seen[s] {
			t.Errorf("no scan produced for %s", s)
		}
	}
}

func TestPool_DropsNilResults(t *testing.T) {
	pool := NewPool(2, func(symbol string) *model.SymbolScan {
		if symbol == "SKIP" {
			return nil
		}
		return &model.SymbolScan{Symbol: symbol}
	})
	pool.Start()
	pool.AddJob("SKIP")
	pool.AddJob("BTCUSDT")
	scans := pool.Wait()

	if len(scans) != 1 || scans[0].Symbol != "BTCUSDT" {
		t.Fatalf("expected only BTCUSDT scan, got %+v", scans)
	}
}
