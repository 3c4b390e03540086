// Command hdlfacts extracts Kythe-shaped cross-reference facts from VHDL
// sources and writes them as newline-delimited JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/hdlxref/hdlfacts/internal/config"
	"github.com/hdlxref/hdlfacts/internal/metrics"
	"github.com/hdlxref/hdlfacts/internal/pipeline"
	"github.com/hdlxref/hdlfacts/internal/schema"
	"github.com/hdlxref/hdlfacts/internal/sink"
)

func main() {
	output := flag.String("output", "", "write NDJSON records to file (default: stdout)")
	flag.StringVar(output, "o", "", "write NDJSON records to file (shorthand)")
	configPath := flag.String("config", "", "explicit config file (default: search path)")
	workers := flag.Int("workers", 0, "parallel file extraction workers (0 = GOMAXPROCS)")
	validate := flag.Bool("validate", false, "validate every record against the Kythe record schema before writing it")
	metricsAddr := flag.String("metrics-addr", "", "listen address for a Prometheus /metrics endpoint (default: disabled)")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hdlfacts [--output file] [--workers n] <path>")
		os.Exit(1)
	}
	path := args[0]

	cfg, err := loadConfig(*configPath, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *workers > 0 {
		cfg.Concurrency.Workers = *workers
	}
	if *metricsAddr != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Addr = *metricsAddr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *output != "" {
		cfg.Output.Path = *output
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	files, err := cfg.DiscoverFiles(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error discovering files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No source files found under %s\n", path)
		os.Exit(1)
	}

	out, closeOut, err := openOutput(cfg.Output.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output: %v\n", err)
		os.Exit(1)
	}
	defer closeOut()

	var sk sink.Sink = sink.NewNDJSON(out)
	if *validate {
		v, err := schema.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading record schema: %v\n", err)
			os.Exit(1)
		}
		sk = sink.Validating(sk, v)
	}
	if len(files) > 1 {
		sk = sink.Serialize(sk)
	}

	m := metrics.New()
	if cfg.Metrics.Enabled && cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, log)
	}

	p, err := pipeline.New(cfg, sk, m, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := p.Run(context.Background(), files); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(explicit, rootPath string) (*config.Config, error) {
	if explicit != "" {
		return config.LoadFile(explicit)
	}
	return config.Load(rootPath)
}

func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func serveMetrics(addr string, log *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.WithField("addr", addr).Info("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Error("metrics listener stopped")
	}
}
