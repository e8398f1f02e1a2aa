package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/mohinik7/Metro-Route-Optimization/internal/cache"
	"github.com/mohinik7/Metro-Route-Optimization/internal/config"
	"github.com/mohinik7/Metro-Route-Optimization/internal/db"
	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
)

type stationsResp struct {
	Stations []model.Station `json:"stations"`
}

type result struct {
	total, errors, hits int64
	latencies           []time.Duration
}

func main() {
	var server string
	var clients int
	var duration time.Duration

	flag.StringVar(&server, "server", "http://127.0.0.1:8080", "planner base URL")
	flag.IntVar(&clients, "clients", 1, "concurrent closed-loop clients")
	flag.DurationVar(&duration, "duration", 30*time.Second, "test duration")
	cfg := config.FromFlagsNetwork()

	client := &http.Client{Timeout: 10 * time.Second}

	names, err := loadStations(client, server, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if len(names) == 0 {
		log.Fatal("no stations to route between")
	}
	log.Printf("Loaded %d stations", len(names))

	// clear cache before test to avoid cumulative stats
	if _, err := client.Get(server + "/debug/clear_cache"); err != nil {
		log.Fatalf("failed to clear cache: %v", err)
	}
	log.Println("Cache cleared")

	log.Printf("Running loadgen with %d clients for %v…", clients, duration)
	res := run(client, server, names, clients, duration)

	var stats cache.Stats
	if resp, err := client.Get(server + "/debug/routecache_stats"); err == nil {
		json.NewDecoder(resp.Body).Decode(&stats)
		resp.Body.Close()
	}

	fmt.Println("\n========== LOADGEN SUMMARY ==========")
	fmt.Printf("Clients: %d\n", clients)
	fmt.Printf("Total Requests: %d\n", res.total)
	fmt.Printf("Errors: %d\n", res.errors)
	fmt.Printf("Throughput: %.2f req/s\n", float64(res.total)/duration.Seconds())
	if res.total > 0 {
		fmt.Printf("RouteCache Hit Rate: %.1f%%\n", float64(res.hits)/float64(res.total)*100)
	}
	fmt.Printf("RouteCache: entries=%d evictions=%d\n", stats.Entries, stats.Evictions)

	if len(res.latencies) > 0 {
		p50, p95, p99 := percentiles(res.latencies)
		fmt.Printf("Fastest: %v\n", res.latencies[0])
		fmt.Printf("P50: %v  P95: %v  P99: %v\n", p50, p95, p99)
		fmt.Printf("Slowest: %v\n", res.latencies[len(res.latencies)-1])
	}
	fmt.Println("=====================================")
}

// loadStations reads station names from the database when a DSN is given,
// otherwise from the server.
func loadStations(client *http.Client, server string, cfg config.NetworkConfig) ([]string, error) {
	if cfg.DSN != "" {
		conn, err := db.Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, err
		}
		defer conn.Close()

		stations, err := db.Store{DB: conn, Driver: cfg.Driver}.Stations(context.Background())
		if err != nil {
			return nil, err
		}
		return stationNames(stations), nil
	}

	resp, err := client.Get(server + "/stations")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var sr stationsResp
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}
	return stationNames(sr.Stations), nil
}

func stationNames(stations []model.Station) []string {
	names := make([]string, len(stations))
	for i, s := range stations {
		names[i] = s.Name
	}
	return names
}

// run keeps clients requests in flight until duration elapses.
func run(client *http.Client, server string, names []string, clients int, duration time.Duration) result {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var res result

	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))

			for ctx.Err() == nil {
				q := url.Values{
					"from": {names[rnd.Intn(len(names))]},
					"to":   {names[rnd.Intn(len(names))]},
				}

				start := time.Now()
				resp, err := client.Get(server + "/route?" + q.Encode())
				lat := time.Since(start)

				var rr model.RouteResponse
				if err == nil {
					err = json.NewDecoder(resp.Body).Decode(&rr)
					resp.Body.Close()
				}

				mu.Lock()
				res.total++
				if err != nil {
					res.errors++
				} else {
					res.latencies = append(res.latencies, lat)
					if rr.CacheHit {
						res.hits++
					}
				}
				mu.Unlock()
			}
		}(time.Now().UnixNano() + int64(i))
	}

	wg.Wait()
	sort.Slice(res.latencies, func(i, j int) bool { return res.latencies[i] < res.latencies[j] })
	return res
}

func percentiles(sorted []time.Duration) (p50, p95, p99 time.Duration) {
	idx := func(p float64) int {
		i := int(float64(len(sorted)) * p)
		if i >= len(sorted) {
			i = len(sorted) - 1
		}
		return i
	}
	return sorted[idx(0.50)], sorted[idx(0.95)], sorted[idx(0.99)]
}
