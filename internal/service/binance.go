package service

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"divscan-go/internal/model"
)

type BinanceService struct {
	baseURL string
	client  *http.Client
}

func NewBinanceService(baseURL string) *BinanceService {
	return &BinanceService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// KlineResponse represents one row of the Binance klines response
type KlineResponse []interface{}

// GetKlines fetches candlestick data from Binance. Rows that fail
// validation are skipped with a warning rather than failing the fetch.
func (s *BinanceService) GetKlines(symbol, interval string, limit int) ([]model.Kline, error) {
	url := fmt.Sprintf("%s/api/v3/klines?symbol=%s&interval=%s&limit=%d",
		s.baseURL, symbol, interval, limit)

	log.Printf("🌐 [Binance API] Fetching %s klines (%s, limit: %d)...", symbol, interval, limit)
	resp, err := s.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch klines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("binance API error: %s - %s", resp.Status, string(body))
	}

	var klineData []KlineResponse
	if err := json.NewDecoder(resp.Body).Decode(&klineData); err != nil {
		return nil, fmt.Errorf("failed to decode klines: %w", err)
	}

	klines := make([]model.Kline, 0, len(klineData))
	for idx, k := range klineData {
		// Binance returns 12 fields per row; we need the first 7
		if len(k) < 7 {
			log.Printf("⚠️  [Binance API] Skipping invalid kline at index %d: insufficient fields (%d/7)", idx, len(k))
			continue
		}

		openTime := SafeTypeAssertFloat(k[0], 0)
		openStr := SafeTypeAssertString(k[1], "0")
		highStr := SafeTypeAssertString(k[2], "0")
		lowStr := SafeTypeAssertString(k[3], "0")
		closeStr := SafeTypeAssertString(k[4], "0")
		volumeStr := SafeTypeAssertString(k[5], "0")
		closeTime := SafeTypeAssertFloat(k[6], 0)

		open, err1 := strconv.ParseFloat(openStr, 64)
		high, err2 := strconv.ParseFloat(highStr, 64)
		low, err3 := strconv.ParseFloat(lowStr, 64)
		closePrice, err4 := strconv.ParseFloat(closeStr, 64)
		volume, err5 := strconv.ParseFloat(volumeStr, 64)

		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			log.Printf("⚠️  [Binance API] Skipping kline at index %d: parse error", idx)
			continue
		}

		if !ValidatePrice(open) || !ValidatePrice(high) || !ValidatePrice(low) || !ValidatePrice(closePrice) {
			log.Printf("⚠️  [Binance API] Skipping kline at index %d: invalid price values", idx)
			continue
		}

		// High must bound the range from above, low from below
		if high < low || high < open || high < closePrice || low > open || low > closePrice {
			log.Printf("⚠️  [Binance API] Skipping kline at index %d: invalid OHLC relationship", idx)
			continue
		}

		klines = append(klines, model.Kline{
			OpenTime:  int64(openTime),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closePrice,
			Volume:    volume,
			CloseTime: int64(closeTime),
		})
	}

	log.Printf("✅ [Binance API] Fetched %d valid %s klines for %s", len(klines), interval, symbol)
	return klines, nil
}
