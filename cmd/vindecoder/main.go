// Command vindecoder serves VIN lookups over HTTP, NATS and gRPC.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/WessleyAI/wessley-vin/engine/decoder"
	"github.com/WessleyAI/wessley-vin/engine/graph"
	"github.com/WessleyAI/wessley-vin/engine/lookup"
	"github.com/WessleyAI/wessley-vin/engine/patterns"
	"github.com/WessleyAI/wessley-vin/engine/provider"
	"github.com/WessleyAI/wessley-vin/engine/store"
	"github.com/WessleyAI/wessley-vin/pkg/config"
	"github.com/WessleyAI/wessley-vin/pkg/logging"
	"github.com/WessleyAI/wessley-vin/pkg/metrics"
	"github.com/WessleyAI/wessley-vin/pkg/mid"
	"github.com/WessleyAI/wessley-vin/pkg/resilience"
	"github.com/WessleyAI/wessley-vin/pkg/vincache"
)

const serviceName = "vindecoder"

func main() {
	configFile := flag.String("config", "", "optional config file (yaml, json or toml)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	decOpts := []decoder.Option{decoder.WithLogger(logger.Named("decoder"))}
	if cfg.Patterns.File != "" {
		set, err := patterns.Open(cfg.Patterns.File, cfg.Patterns.Replace)
		if err != nil {
			return fmt.Errorf("patterns: %w", err)
		}
		decOpts = append(decOpts, decoder.WithPatterns(set))
	}

	opts := []lookup.Option{lookup.WithLogger(logger), lookup.WithMetrics(m)}
	if c := newCollector(cfg, logger, m); c != nil {
		opts = append(opts, lookup.WithCollector(c))
		logger.Info("providers enabled", zap.Strings("providers", c.Providers()))
	}

	srv := &server{log: logger}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		cache := vincache.New[lookup.Outcome](rdb, cfg.Redis.TTL)
		if err := cache.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, lookups will miss until it recovers", zap.Error(err))
		}
		opts = append(opts, lookup.WithCache(cache))
	}

	if cfg.Postgres.DSN != "" {
		st, err := store.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		opts = append(opts, lookup.WithStore(st))
		srv.history = st
	}

	if cfg.Neo4j.URL != "" {
		driver, err := graph.Connect(ctx, cfg.Neo4j.URL, cfg.Neo4j.User, cfg.Neo4j.Pass)
		if err != nil {
			return err
		}
		defer driver.Close(context.Background())
		g := graph.New(driver, "")
		if err := g.EnsureSchema(ctx); err != nil {
			logger.Warn("neo4j schema", zap.Error(err))
		}
		opts = append(opts, lookup.WithGraph(g))
		srv.stats = g
	}

	var nc *nats.Conn
	if cfg.NATS.URL != "" {
		var err error
		nc, err = nats.Connect(cfg.NATS.URL, nats.Name(serviceName))
		if err != nil {
			return fmt.Errorf("nats connect: %w", err)
		}
		defer nc.Drain()
		opts = append(opts, lookup.WithPublisher(lookup.NATSPublisher{Conn: nc, Subject: cfg.NATS.Events}))
	}

	svc := lookup.New(decoder.New(decOpts...), opts...)
	srv.svc = svc

	if nc != nil {
		if _, err := svc.ServeNATS(nc, cfg.NATS.Subject, serviceName); err != nil {
			return fmt.Errorf("nats subscribe: %w", err)
		}
		logger.Info("nats responder ready", zap.String("subject", cfg.NATS.Subject))
	}

	// --- HTTP ---
	mux := http.NewServeMux()
	srv.routes(mux)
	mux.Handle("GET /metrics", m.Handler())
	httpSrv := &http.Server{
		Addr: ":" + strconv.Itoa(cfg.HTTP.Port),
		Handler: mid.Chain(mux,
			mid.Recover(logger),
			mid.OTel(serviceName),
			mid.RequestID(),
			mid.Logger(logger),
			mid.CORS(cfg.CORS.Origin),
			mid.Metrics(m),
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("http server starting", zap.Int("port", cfg.HTTP.Port))
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- gRPC ---
	var grpcSrv *grpc.Server
	if cfg.GRPC.Port > 0 {
		lis, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.GRPC.Port))
		if err != nil {
			return fmt.Errorf("grpc listen: %w", err)
		}
		grpcSrv = grpc.NewServer()
		lookup.RegisterGRPC(grpcSrv, svc)
		hs := health.NewServer()
		hs.SetServingStatus(lookup.GRPCService, healthpb.HealthCheckResponse_SERVING)
		healthpb.RegisterHealthServer(grpcSrv, hs)
		go func() {
			logger.Info("grpc server starting", zap.Int("port", cfg.GRPC.Port))
			if err := grpcSrv.Serve(lis); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	return httpSrv.Shutdown(shutCtx)
}

// newCollector builds the provider collector from cfg, or nil when no
// provider is enabled.
func newCollector(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *provider.Collector {
	client := provider.NewHTTPClient(cfg.Provider.Timeout)
	var providers []provider.Provider
	if cfg.Commercial.URL != "" {
		providers = append(providers, provider.NewCommercial("", cfg.Commercial.URL, cfg.Commercial.APIKey, client))
	}
	if cfg.NHTSA.Enabled {
		providers = append(providers, provider.NewNHTSA(cfg.NHTSA.BaseURL, client))
	}
	if len(providers) == 0 {
		return nil
	}
	return provider.NewCollector(providers,
		provider.WithTimeout(cfg.Provider.Timeout),
		provider.WithLimit(resilience.LimiterOpts{Rate: cfg.Provider.Rate, Burst: cfg.Provider.Burst}),
		provider.WithLogger(logger.Named("provider")),
		provider.WithMetrics(m),
	)
}
