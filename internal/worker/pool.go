package worker

import (
	"sync"

	"divscan-go/internal/model"
)

// ScanFunc evaluates one symbol across all timeframes
type ScanFunc func(symbol string) *model.SymbolScan

type Pool struct {
	workers int
	jobs    chan string
	results chan *model.SymbolScan
	wg      sync.WaitGroup
	scan    ScanFunc
}

// NewPool creates a worker pool that fans one scan job out per symbol
func NewPool(workers int, scan ScanFunc) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan string, 100),
		results: make(chan *model.SymbolScan, 100),
		scan:    scan,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for symbol := range p.jobs {
		if scan := p.scan(symbol); scan != nil {
			p.results <- scan
		}
	}
}

// AddJob queues a symbol for scanning
func (p *Pool) AddJob(symbol string) {
	p.jobs <- symbol
}

// Wait closes the job queue, waits for the workers and collects results
func (p *Pool) Wait() []*model.SymbolScan {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)

	scans := make([]*model.SymbolScan, 0)
	for scan := range p.results {
		scans = append(scans, scan)
	}
	return scans
}
