// Command aerodex serves a read-only airport lookup API over HTTP.
//
// The dataset is loaded once at startup from a local CSV file, S3, or a
// MinIO-compatible object store. A missing or malformed dataset aborts
// startup before the server accepts traffic.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	flag "github.com/spf13/pflag"

	"github.com/hupe1980/aerodex"
	"github.com/hupe1980/aerodex/api"
	"github.com/hupe1980/aerodex/source"
	miniosource "github.com/hupe1980/aerodex/source/minio"
	s3source "github.com/hupe1980/aerodex/source/s3"
)

var (
	addr       = flag.String("addr", ":8080", "listen address")
	csvPath    = flag.String("csv", "airports.csv", "path to the airports CSV file (local source)")
	sourceKind = flag.String("source", "local", "dataset source: local, s3 or minio")
	bucket     = flag.String("bucket", "", "bucket holding the dataset (s3 and minio sources)")
	key        = flag.String("key", "airports.csv", "object key of the dataset (s3 and minio sources)")
	endpoint   = flag.String("endpoint", "", "server endpoint (minio source)")
	accessKey  = flag.String("access-key", "", "access key (minio source)")
	secretKey  = flag.String("secret-key", "", "secret key (minio source)")
	useTLS     = flag.Bool("tls", true, "use TLS for the minio endpoint")
	logLevel   = flag.String("log-level", "info", "log level: debug, info, warn or error")
	logFormat  = flag.String("log-format", "text", "log format: text or json")
	rateLimit  = flag.Float64("rate-limit", 0, "global request rate limit per second (0 disables)")
	metrics    = flag.Bool("metrics", true, "expose prometheus metrics on /metrics")
)

func main() {
	flag.Parse()

	handler := newLogHandler(*logFormat, parseLevel(*logLevel))
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := buildSource(ctx)
	if err != nil {
		logger.Error("invalid source configuration", "error", err)
		os.Exit(1)
	}

	lk, err := aerodex.Open(ctx, src, aerodex.WithLogger(aerodex.NewLogger(handler)))
	if err != nil {
		logger.Error("failed to load dataset", "source", src.String(), "error", err)
		os.Exit(1)
	}

	opts := []api.Option{
		api.WithLogger(logger),
		api.WithGzip(),
	}
	if *metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, api.WithPrometheus(reg))
	}
	if *rateLimit > 0 {
		opts = append(opts, api.WithRateLimit(*rateLimit, int(*rateLimit)))
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.New(lk, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", "addr", *addr, "records", lk.Len())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func buildSource(ctx context.Context) (source.Source, error) {
	switch *sourceKind {
	case "local":
		return source.NewLocal(*csvPath), nil
	case "s3":
		if *bucket == "" {
			return nil, fmt.Errorf("s3 source requires --bucket")
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return s3source.New(awss3.NewFromConfig(cfg), *bucket, *key), nil
	case "minio":
		if *bucket == "" || *endpoint == "" {
			return nil, fmt.Errorf("minio source requires --bucket and --endpoint")
		}
		client, err := minio.New(*endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(*accessKey, *secretKey, ""),
			Secure: *useTLS,
		})
		if err != nil {
			return nil, err
		}
		return miniosource.New(client, *bucket, *key), nil
	default:
		return nil, fmt.Errorf("unknown source kind: %q", *sourceKind)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogHandler(format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(format) == "json" {
		return slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.NewTextHandler(os.Stderr, opts)
}
