package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/amirhossein-jamali/numduration"
)

// ConvertRequest represents the conversion payload
type ConvertRequest struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// Scenario is one kind of request and the status the API must answer with
type Scenario struct {
	Name           string
	Value          string
	Unit           string
	ExpectedStatus int
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

var scenarios = []Scenario{
	{"One hour", "1", "hour", http.StatusOK},
	{"Negative seconds", "-30", "s", http.StatusOK},
	{"Many weeks", "15250", "weeks", http.StatusOK},
	{"Overflow", "9223372036854775807", "week", http.StatusUnprocessableEntity},
	{"Unknown unit", "1", "fortnight", http.StatusBadRequest},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 10, "Delay between requests in milliseconds")
	flag.Parse()

	delay, err := numduration.Milliseconds(*delayMs)
	if err != nil {
		fmt.Println("invalid -delay:", err)
		return
	}

	fmt.Printf("Load testing %s with %d scenarios\n", *baseURL, len(scenarios))
	fmt.Printf("Concurrency: %d goroutines, %d requests, %v between requests\n", *concurrency, *totalRequests, delay)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < *concurrency; i++ {
		g.Go(func() error {
			return worker(ctx, *baseURL, delay, jobs, results)
		})
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		if err := g.Wait(); err != nil {
			fmt.Println("worker stopped:", err)
		}
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.ScenarioStats[result.Scenario]++
		if result.Success {
			stats.SuccessfulRequests++
		} else {
			stats.FailedRequests++
			stats.ErrorCounts[result.Error.Error()]++
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

// worker paces its requests to one per delay
func worker(ctx context.Context, baseURL string, delay time.Duration, jobs <-chan int, results chan<- TestResult) error {
	client := &http.Client{
		Timeout: numduration.MustSeconds(10),
	}
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	for range jobs {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		scenario := scenarios[rand.Intn(len(scenarios))]
		result := TestResult{Scenario: scenario.Name}

		body, err := json.Marshal(ConvertRequest{Value: scenario.Value, Unit: scenario.Unit})
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		start := time.Now()
		resp, err := client.Post(baseURL+"/v1/durations/convert", "application/json", bytes.NewReader(body))
		result.ResponseTime = time.Since(start)

		if err != nil {
			result.Error = err
		} else {
			result.Success = resp.StatusCode == scenario.ExpectedStatus
			if !result.Success {
				result.Error = fmt.Errorf("%s: HTTP status %d, want %d", scenario.Name, resp.StatusCode, scenario.ExpectedStatus)
			}
			resp.Body.Close()
		}

		results <- result
	}
	return nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Expected Responses:  %d\n", stats.SuccessfulRequests)
	fmt.Printf("Unexpected:          %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-18s: %d requests\n", name, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-60s: %d\n", errMsg, count)
		}
	}
}
