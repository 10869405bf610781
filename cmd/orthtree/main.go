// Copyright 2023 The orthtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/gogama/orthtree"
	"github.com/gogama/orthtree/geom"
	"github.com/gogama/orthtree/instrument"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

// The orthtree version number. Set at build.
var version = "v0.1.0"

type config struct {
	Items       int     `cli:""        env:"ORTHTREE_ITEMS"        help:"Number of random items to insert."`
	Domain      float64 `cli:""        env:"ORTHTREE_DOMAIN"       help:"Extent of the domain along every dimension."`
	Spread      float64 `cli:""        env:"ORTHTREE_SPREAD"       help:"Items are drawn from [0, domain*spread), so values above 1 produce out-of-domain items."`
	Queries     int     `cli:""        env:"ORTHTREE_QUERIES"      help:"Number of random rectangle queries to run."`
	QueryExtent float64 `cli:""        env:"ORTHTREE_QUERY_EXTENT" help:"Extent of each query rectangle along every dimension."`
	Seed        int64   `cli:""        env:"ORTHTREE_SEED"         help:"Random seed, 0 for a time-based seed."`
	MaxDepth    int     `cli:",hidden" env:"ORTHTREE_MAX_DEPTH"    help:"Maximum tree depth."`
	Clamp       bool    `cli:""        env:"ORTHTREE_CLAMP"        help:"Clamp out-of-domain items instead of rejecting them."`
	PrintTree   bool    `cli:""        env:"ORTHTREE_PRINT_TREE"   help:"Print the tree listing to stdout."`
	MetricsAddr string  `cli:""        env:"ORTHTREE_METRICS_ADDR" help:"Listening address for Prometheus metrics; empty to exit when done."`
	LogLevel    string  `cli:""        env:"ORTHTREE_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent   bool    `cli:""        env:"ORTHTREE_LOG_INDENT"   help:"Indent logs."`
	Version     bool    `cli:""        env:"-"                     help:"Show version."`
	Help        bool    `cli:""        env:"-"                     help:"Show help."`
}

func main() {
	conf := config{
		Items:       10000,
		Domain:      1000,
		Spread:      1,
		Queries:     100,
		QueryExtent: 50,
		MaxDepth:    orthtree.DefaultMaxDepth,
		LogLevel:    logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Fills an orthant tree with random items and queries it.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	policy := orthtree.Reject
	if conf.Clamp {
		policy = orthtree.Clamp
	}
	tree := orthtree.NewWithConfig[item](geom.From(conf.Domain), &orthtree.Config{
		MaxDepth:    conf.MaxDepth,
		OutOfDomain: policy,
		Observer: instrument.Multi{
			instrument.NewMetrics(prometheus.DefaultRegisterer),
			instrument.Logger{},
		},
	})

	logs.WithTag("version", version).
		WithTag("dimensions", geom.D).
		WithTag("seed", seed).
		WithTag("out_of_domain", policy.String()).
		Info("starting orthtree demo")

	s := run(tree, rng, conf)

	logs.WithTag("inserted", s.Inserted).
		WithTag("rejected", s.Rejected).
		WithTag("depth", tree.Depth()).
		WithTag("insert_duration", s.InsertDuration.String()).
		WithTag("queries", conf.Queries).
		WithTag("found", s.Found).
		WithTag("query_duration", s.QueryDuration.String()).
		Info("orthtree demo finished")

	if conf.PrintTree {
		if err := tree.Format(os.Stdout); err != nil {
			logs.Warn(errors.New("printing tree failed").Wrap(err))
		}
	}

	if conf.MetricsAddr != "" {
		serveMetrics(ctx, conf.MetricsAddr)
	}
}

func validateConfig(conf config) error {
	switch {
	case conf.Items < 0:
		return errors.New("item count must not be negative").
			WithTag("items", conf.Items)
	case !(conf.Domain > 0):
		return errors.New("domain must be positive").
			WithTag("domain", conf.Domain)
	case !(conf.Spread > 0):
		return errors.New("spread must be positive").
			WithTag("spread", conf.Spread)
	case conf.Queries < 0:
		return errors.New("query count must not be negative").
			WithTag("queries", conf.Queries)
	case !(conf.QueryExtent > 0):
		return errors.New("query extent must be positive").
			WithTag("query_extent", conf.QueryExtent)
	case conf.MaxDepth <= 0:
		return errors.New("max depth must be positive").
			WithTag("max_depth", conf.MaxDepth)
	default:
		return nil
	}
}

func serveMetrics(ctx context.Context, addr string) {
	var mux http.ServeMux
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: &mux}

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			logs.Warn(errors.New("shutting down the metrics server failed").
				WithTag("addr", addr).
				Wrap(err))
		}
	}()

	logs.WithTag("addr", addr).Info("serving metrics")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logs.Fatal(errors.New("serving metrics failed").
			WithTag("addr", addr).
			Wrap(err))
	}
	logs.WithTag("addr", addr).Info("metrics server stopped")
}
