// Command simonbench drives both SIMON variants in a tight loop, each
// round-tripping one random block over and over, and exposes throughput and latency as Prometheus metrics on
// /metrics, so the cipher's cost can be observed with the same tooling used
// to watch a running service.
package main

import (
	"crypto/rand"
	"flag"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/codahale/simon"
)

var (
	blocksProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "simonbench",
			Subsystem: "cipher",
			Name:      "blocks_processed_total",
			Help:      "Total number of blocks processed, by variant.",
		},
		[]string{"variant"},
	)

	blockLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "simonbench",
			Subsystem: "cipher",
			Name:      "block_latency_seconds",
			Help:      "Per-block encrypt+decrypt round-trip latency, by variant.",
			Buckets:   prometheus.ExponentialBuckets(1e-9, 2, 16),
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(blocksProcessed)
	prometheus.MustRegister(blockLatency)
}

func main() {
	addr := flag.String("addr", "127.0.0.1:9090", "address to serve /metrics on")
	flag.Parse()

	log := slog.New(slog.Default().Handler())

	key64 := make([]byte, 16)
	key128 := make([]byte, 32)
	if _, err := rand.Read(key64); err != nil {
		panic(err)
	}
	if _, err := rand.Read(key128); err != nil {
		panic(err)
	}

	c64, err := simon.NewCipher64(key64)
	if err != nil {
		panic(err)
	}
	c128, err := simon.NewCipher128(key128)
	if err != nil {
		panic(err)
	}

	go runLoop("simon64", c64, simon.BlockSize64)
	go runLoop("simon128", c128, simon.BlockSize128)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info("serving metrics", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil { //nolint:gosec // benchmarking tool, not a public server
		log.Error("metrics server stopped", "err", err)
	}
}

type block interface {
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

func runLoop(variant string, c block, size int) {
	pt := make([]byte, size)
	ct := make([]byte, size)
	rt := make([]byte, size)
	if _, err := rand.Read(pt); err != nil {
		panic(err)
	}

	for {
		start := time.Now()
		c.Encrypt(ct, pt)
		c.Decrypt(rt, ct)
		blockLatency.WithLabelValues(variant).Observe(time.Since(start).Seconds())
		blocksProcessed.WithLabelValues(variant).Inc()
		copy(pt, rt)
	}
}
