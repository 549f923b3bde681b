package scanner

import (
	"fmt"
	"log"
	"sync"
	"time"

	"divscan-go/internal/model"
	"divscan-go/internal/service"
	"divscan-go/internal/worker"

	"github.com/robfig/cron/v3"
)

// Scanner iterates the configured symbols and timeframes, producing one
// report row per analyzable timeframe. Symbols fan out over a worker
// pool; within a symbol the timeframes are fetched strictly in sequence
// with a pacing delay, as a courtesy to the upstream API.
type Scanner struct {
	strategy   *service.StrategyService
	telegram   *service.TelegramService // nil when not configured
	symbols    []string
	timeframes []string
	fetchDelay time.Duration
	workers    int

	mu sync.Mutex // guards against overlapping scan cycles
}

func New(strategy *service.StrategyService, telegram *service.TelegramService, symbols, timeframes []string, fetchDelay time.Duration, workers int) *Scanner {
	s := &Scanner{
		strategy:   strategy,
		telegram:   telegram,
		symbols:    symbols,
		timeframes: timeframes,
		fetchDelay: fetchDelay,
		workers:    workers,
	}
	if telegram != nil {
		telegram.SetScanHandler(s.Scan)
	}
	return s
}

// Start runs one scan immediately and, if a schedule is configured,
// keeps rescanning on that interval. Blocks forever in watch mode.
func (s *Scanner) Start(schedule string) {
	log.Println("🚀 Starting divergence scanner...")

	s.runCycle()

	if schedule == "" {
		return
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", schedule)
	if _, err := c.AddFunc(spec, s.runCycle); err != nil {
		log.Fatalf("❌ Invalid scan schedule %q: %v", schedule, err)
	}
	c.Start()

	log.Printf("⏰ Scheduler started - rescanning every %s", schedule)
	select {}
}

// runCycle executes one scan cycle, skipping if one is still running
func (s *Scanner) runCycle() {
	if !s.mu.TryLock() {
		log.Println("⏭️  Skipping cycle - previous scan still running")
		return
	}
	defer s.mu.Unlock()

	log.Println("===========================================")
	log.Printf("🔄 Scan started at %s", time.Now().Format("15:04:05"))
	log.Println("===========================================")

	scans := s.scanAll()

	for _, scan := range scans {
		fmt.Println(RenderTable(scan))
	}

	if s.telegram != nil {
		s.telegram.SendScanSummary(scans)
	}

	log.Printf("✨ Scan complete - %d symbols analyzed", len(scans))
}

// Scan runs one full cycle and returns the results without rendering.
// It serializes with runCycle so on-demand scans never overlap the
// scheduled ones.
func (s *Scanner) Scan() []*model.SymbolScan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanAll()
}

func (s *Scanner) scanAll() []*model.SymbolScan {
	pool := worker.NewPool(s.workers, s.scanSymbol)
	pool.Start()

	for _, symbol := range s.symbols {
		pool.AddJob(symbol)
	}
	scans := pool.Wait()

	// Pool results arrive in completion order; restore config order
	bySymbol := make(map[string]*model.SymbolScan, len(scans))
	for _, scan := range scans {
		bySymbol[scan.Symbol] = scan
	}
	ordered := make([]*model.SymbolScan, 0, len(scans))
	for _, symbol := range s.symbols {
		if scan, ok := bySymbol[symbol]; ok {
			ordered = append(ordered, scan)
		}
	}
	return ordered
}

// scanSymbol walks the timeframes of one symbol in sequence. Timeframes
// that cannot be fetched or analyzed are skipped, not fatal.
func (s *Scanner) scanSymbol(symbol string) *model.SymbolScan {
	defer service.RecoverAndLog(fmt.Sprintf("scan %s", symbol))

	scan := &model.SymbolScan{Symbol: symbol}

	for i, tf := range s.timeframes {
		if i > 0 {
			time.Sleep(s.fetchDelay)
		}

		report, err := s.strategy.EvaluateTimeframe(symbol, tf)
		if err != nil {
			log.Printf("⚠️  [Scanner] %s %s: %v", symbol, tf, err)
			continue
		}
		if report == nil {
			continue
		}
		scan.Rows = append(scan.Rows, *report)
	}

	return scan
}
