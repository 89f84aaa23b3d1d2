package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
)

const (
	defaultAPIURL = "http://localhost:8080"
	maxErrors     = 5 // distinct error samples kept per endpoint
)

type Config struct {
	APIURL       string
	APIKey       string
	Wallet       string
	Requests     int           // Requests per endpoint
	Concurrency  int           // Number of concurrent workers
	Timeout      time.Duration // Timeout for each request
	IncludeAdmin bool          // Also hit the admin read endpoints
	OutputFile   string        // Output markdown file path (optional)
	Debug        bool
}

// Endpoint is one GET route under benchmark
type Endpoint struct {
	Name  string
	Path  string
	Admin bool
}

type EndpointStats struct {
	Name          string
	Path          string
	Count         int
	Succeeded     int
	Failed        int
	StatusCodes   map[int]int
	Errors        []string
	Latencies     []time.Duration
	TotalDuration time.Duration

	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
	P50  time.Duration
	P95  time.Duration
	P99  time.Duration
}

type BenchmarkStats struct {
	APIURL      string
	StartTime   time.Time
	Duration    time.Duration
	Concurrency int
	Endpoints   []*EndpointStats
	Interrupted bool
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	endpoints := buildEndpoints(cfg)
	client := &http.Client{Timeout: cfg.Timeout}

	fmt.Printf("Benchmarking %s\n", cfg.APIURL)
	fmt.Printf("Endpoints: %d, requests per endpoint: %d, concurrency: %d\n\n", len(endpoints), cfg.Requests, cfg.Concurrency)

	stats := runBenchmark(ctx, client, cfg, endpoints)

	fmt.Println("\n" + strings.Repeat("=", 80))
	if stats.Interrupted {
		fmt.Println("INTERRUPTED - PARTIAL RESULTS")
	} else {
		fmt.Println("BENCHMARK RESULTS")
	}
	fmt.Println(strings.Repeat("=", 80))
	printBenchmarkStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.APIURL, "api-url", defaultAPIURL, "Base URL of the CFD API")
	flag.StringVar(&cfg.APIKey, "api-key", "", "API key for admin endpoints (optional)")
	flag.StringVar(&cfg.Wallet, "wallet", "", "Wallet address for the per-wallet endpoints (optional)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Print every failed request")
	flag.BoolVar(&cfg.IncludeAdmin, "admin", false, "Include admin read endpoints (requires -api-key)")
	flag.IntVar(&cfg.Requests, "requests", 100, "Requests per endpoint (default: 100)")
	flag.IntVar(&cfg.Concurrency, "concurrency", 5, "Number of concurrent workers (default: 5)")

	var timeoutSeconds int
	flag.IntVar(&timeoutSeconds, "timeout", 30, "Timeout for each request in seconds (default: 30)")

	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.Requests <= 0 {
		cfg.Requests = 100
	}

	// Validate concurrency
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.Concurrency > 50 {
		cfg.Concurrency = 50 // Cap at 50, the oracle-backed routes fan out to the RPC node
	}

	// Load from config file if specified
	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.APIURL == defaultAPIURL && fileCfg.APIURL != "" {
				cfg.APIURL = fileCfg.APIURL
			}
			if cfg.APIKey == "" {
				cfg.APIKey = fileCfg.APIKey
			}
			if cfg.Wallet == "" {
				cfg.Wallet = fileCfg.Wallet
			}
		}
	}

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg
}

// buildEndpoints lists the read routes to exercise for the given config
func buildEndpoints(cfg *Config) []Endpoint {
	endpoints := []Endpoint{
		{Name: "health", Path: "/health"},
		{Name: "dividend-stats", Path: "/api/v1/dividends/stats"},
		{Name: "distributions", Path: "/api/v1/dividends/distributions?page=1&limit=20"},
		{Name: "ico-status", Path: "/api/v1/ico/status"},
		{Name: "ico-stats", Path: "/api/v1/ico/stats"},
	}

	if cfg.Wallet != "" {
		endpoints = append(endpoints,
			Endpoint{Name: "dividend-info", Path: "/api/v1/dividends/info/" + cfg.Wallet},
			Endpoint{Name: "projection", Path: "/api/v1/dividends/projection/" + cfg.Wallet},
			Endpoint{Name: "ico-purchases", Path: "/api/v1/ico/purchases/" + cfg.Wallet},
		)
	}

	if cfg.IncludeAdmin && cfg.APIKey != "" {
		endpoints = append(endpoints,
			Endpoint{Name: "eligible-holders", Path: "/api/v1/dividends/admin/eligible-holders", Admin: true},
			Endpoint{Name: "chain-holders", Path: "/api/v1/dividends/admin/chain-holders", Admin: true},
		)
		if cfg.Wallet != "" {
			endpoints = append(endpoints,
				Endpoint{Name: "wallet-transactions", Path: "/api/v1/wallets/" + cfg.Wallet + "/transactions", Admin: true},
			)
		}
	}

	return endpoints
}

// runBenchmark hits every endpoint in turn and collects latency statistics
func runBenchmark(ctx context.Context, client *http.Client, cfg *Config, endpoints []Endpoint) *BenchmarkStats {
	stats := &BenchmarkStats{
		APIURL:      cfg.APIURL,
		StartTime:   time.Now(),
		Concurrency: cfg.Concurrency,
	}

	for _, ep := range endpoints {
		if ctx.Err() != nil {
			stats.Interrupted = true
			break
		}

		fmt.Printf("⏳ %s ...", ep.Name)
		epStats := runEndpoint(ctx, client, cfg, ep)
		stats.Endpoints = append(stats.Endpoints, epStats)
		fmt.Printf("\r%s %s (%d requests, p95 %s)\n",
			statusEmoji(epStats.Succeeded, epStats.Failed, 0), ep.Name, epStats.Count, formatDuration(epStats.P95))
	}

	if ctx.Err() != nil {
		stats.Interrupted = true
	}
	stats.Duration = time.Since(stats.StartTime)
	return stats
}

// runEndpoint issues cfg.Requests GETs against one endpoint through a bounded worker pool
func runEndpoint(ctx context.Context, client *http.Client, cfg *Config, ep Endpoint) *EndpointStats {
	stats := &EndpointStats{
		Name:        ep.Name,
		Path:        ep.Path,
		StatusCodes: make(map[int]int),
	}

	var mu sync.Mutex
	record := func(status int, latency time.Duration, err error) {
		mu.Lock()
		defer mu.Unlock()

		stats.Count++
		stats.Latencies = append(stats.Latencies, latency)
		if status != 0 {
			stats.StatusCodes[status]++
		}
		if err == nil && status >= 200 && status < 300 {
			stats.Succeeded++
			return
		}

		stats.Failed++
		msg := fmt.Sprintf("status %d", status)
		if err != nil {
			msg = err.Error()
		}
		if cfg.Debug {
			fmt.Printf("\n  %s: %s", ep.Name, msg)
		}
		if len(stats.Errors) < maxErrors && !contains(stats.Errors, msg) {
			stats.Errors = append(stats.Errors, msg)
		}
	}

	pool := pond.NewPool(cfg.Concurrency, pond.WithContext(ctx))
	start := time.Now()
	for range cfg.Requests {
		pool.Submit(func() {
			status, latency, err := doRequest(ctx, client, cfg, ep)
			if ctx.Err() != nil {
				return
			}
			record(status, latency, err)
		})
	}
	pool.StopAndWait()
	stats.TotalDuration = time.Since(start)

	calculateLatencyStats(stats)
	return stats
}

func doRequest(ctx context.Context, client *http.Client, cfg *Config, ep Endpoint) (int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.APIURL+ep.Path, nil)
	if err != nil {
		return 0, 0, err
	}
	if ep.Admin {
		req.Header.Set("Authorization", "ApiKey "+cfg.APIKey)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, time.Since(start), err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Drain so the latency covers the full body and the connection is reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, time.Since(start), nil
}

func calculateLatencyStats(stats *EndpointStats) {
	if len(stats.Latencies) == 0 {
		return
	}

	sorted := sortedCopy(stats.Latencies)
	var total time.Duration
	for _, l := range sorted {
		total += l
	}

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Mean = total / time.Duration(len(sorted))
	stats.P50 = percentile(sorted, 50)
	stats.P95 = percentile(sorted, 95)
	stats.P99 = percentile(sorted, 99)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func printBenchmarkStats(stats *BenchmarkStats) {
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("API URL:      %s\n", stats.APIURL)
	fmt.Printf("Start Time:   %s\n", stats.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Printf("Duration:     %s\n", formatDuration(stats.Duration))
	fmt.Printf("Concurrency:  %d\n", stats.Concurrency)
	fmt.Println()

	if len(stats.Endpoints) == 0 {
		fmt.Println("No endpoints benchmarked.")
		fmt.Println(strings.Repeat("-", 80))
		return
	}

	for _, ep := range stats.Endpoints {
		fmt.Printf("  %s %s\n", statusEmoji(ep.Succeeded, ep.Failed, 0), ep.Name)
		fmt.Printf("    Path:           %s\n", ep.Path)
		fmt.Printf("    Requests:       %d\n", ep.Count)
		fmt.Printf("    Succeeded:      %d (%s)\n", ep.Succeeded, percentageString(ep.Succeeded, ep.Count))
		if ep.Failed > 0 {
			fmt.Printf("    Failed:         %d (%s)\n", ep.Failed, percentageString(ep.Failed, ep.Count))
		}
		fmt.Printf("    Latency:        min %s, mean %s, max %s\n", formatDuration(ep.Min), formatDuration(ep.Mean), formatDuration(ep.Max))
		fmt.Printf("    Percentiles:    p50 %s, p95 %s, p99 %s\n", formatDuration(ep.P50), formatDuration(ep.P95), formatDuration(ep.P99))
		fmt.Printf("    Throughput:     %s\n", formatRate(ep.Count, ep.TotalDuration))
		for _, e := range ep.Errors {
			fmt.Printf("    Error:          %s\n", e)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("-", 80))
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// writeMarkdownReport writes a markdown report of the benchmark stats
func writeMarkdownReport(filepath string, stats *BenchmarkStats) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return renderMarkdownReport(file, stats)
}

func renderMarkdownReport(w io.Writer, stats *BenchmarkStats) error {
	_, _ = fmt.Fprintf(w, "# CFD API Benchmark Report\n\n")
	_, _ = fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(w, "| Property | Value |\n")
	_, _ = fmt.Fprintf(w, "|----------|-------|\n")
	_, _ = fmt.Fprintf(w, "| **API URL** | `%s` |\n", stats.APIURL)
	_, _ = fmt.Fprintf(w, "| **Start Time** | %s |\n", stats.StartTime.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintf(w, "| **Duration** | %s |\n", formatDuration(stats.Duration))
	_, _ = fmt.Fprintf(w, "| **Concurrency** | %d |\n", stats.Concurrency)
	if stats.Interrupted {
		_, _ = fmt.Fprintf(w, "| **Interrupted** | yes |\n")
	}
	_, _ = fmt.Fprintf(w, "\n")

	if len(stats.Endpoints) == 0 {
		_, _ = fmt.Fprintf(w, "*No endpoints benchmarked.*\n")
		return nil
	}

	_, _ = fmt.Fprintf(w, "## Endpoints\n\n")
	_, _ = fmt.Fprintf(w, "| | Endpoint | Requests | Success | p50 | p95 | p99 | Max | Throughput |\n")
	_, _ = fmt.Fprintf(w, "|---|----------|----------|---------|-----|-----|-----|-----|------------|\n")
	for _, ep := range stats.Endpoints {
		_, _ = fmt.Fprintf(w, "| %s | `%s` | %d | %s | %s | %s | %s | %s | %s |\n",
			statusEmoji(ep.Succeeded, ep.Failed, 0), ep.Name, ep.Count,
			percentageString(ep.Succeeded, ep.Count),
			formatDuration(ep.P50), formatDuration(ep.P95), formatDuration(ep.P99), formatDuration(ep.Max),
			formatRate(ep.Count, ep.TotalDuration))
	}
	_, _ = fmt.Fprintf(w, "\n")

	for _, ep := range stats.Endpoints {
		if len(ep.Errors) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "### Errors: %s\n\n", ep.Name)
		for _, e := range ep.Errors {
			_, _ = fmt.Fprintf(w, "- %s\n", e)
		}
		_, _ = fmt.Fprintf(w, "\n")
	}

	return nil
}
