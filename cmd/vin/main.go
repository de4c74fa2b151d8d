// Command vin decodes VINs and prints the identities as JSON. It decodes
// locally by default; -grpc or -nats send the lookup to a running
// vindecoder instead, and -watch prints decoded events from NATS.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/WessleyAI/wessley-vin/engine/decoder"
	"github.com/WessleyAI/wessley-vin/engine/lookup"
	"github.com/WessleyAI/wessley-vin/engine/patterns"
	"github.com/WessleyAI/wessley-vin/engine/provider"
	"github.com/WessleyAI/wessley-vin/pkg/logging"
	"github.com/WessleyAI/wessley-vin/pkg/natsutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	nhtsa    bool
	nhtsaURL string
	patterns string
	replace  bool
	public   bool
	timeout  time.Duration
	grpcAddr string
	natsURL  string
	subject  string
	watch    bool
	events   string
	logLevel string
}

// decodeFunc performs one lookup.
type decodeFunc func(ctx context.Context, req lookup.Request) (lookup.Outcome, error)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.BoolVar(&o.nhtsa, "nhtsa", false, "consult the NHTSA vPIC API")
	fs.StringVar(&o.nhtsaURL, "nhtsa-url", provider.DefaultNHTSABaseURL, "vPIC base URL")
	fs.StringVar(&o.patterns, "patterns", "", "YAML pattern tables extending the built-in set")
	fs.BoolVar(&o.replace, "patterns-replace", false, "use the -patterns tables instead of the built-in set")
	fs.BoolVar(&o.public, "public", false, "mask the VIN serial in output")
	fs.DurationVar(&o.timeout, "timeout", 10*time.Second, "per-VIN timeout")
	fs.StringVar(&o.grpcAddr, "grpc", "", "decode via a vindecoder gRPC address")
	fs.StringVar(&o.natsURL, "nats", "", "NATS URL for -watch or remote decoding")
	fs.StringVar(&o.subject, "subject", "vin.decode", "NATS request subject")
	fs.BoolVar(&o.watch, "watch", false, "print vin.decoded events until interrupted")
	fs.StringVar(&o.events, "events", "vin.decoded", "NATS event subject for -watch")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: vin [flags] VIN...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 && !o.watch {
		fs.Usage()
		return 2
	}

	logger, err := logging.New(o.logLevel, "console")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logger.Sync()

	var nc *nats.Conn
	if o.natsURL != "" {
		nc, err = nats.Connect(o.natsURL, nats.Name("vin-cli"))
		if err != nil {
			fmt.Fprintln(stderr, "nats:", err)
			return 1
		}
		defer nc.Close()
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	if o.watch {
		if nc == nil {
			fmt.Fprintln(stderr, "-watch requires -nats")
			return 2
		}
		return watch(ctx, nc, o.events, enc, stderr)
	}

	decode, closeFn, err := o.decoder(nc, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeFn()

	status := 0
	for _, raw := range fs.Args() {
		cctx, cancel := context.WithTimeout(ctx, o.timeout)
		out, err := decode(cctx, lookup.Request{VIN: raw, SkipProviders: !o.nhtsa})
		cancel()
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", raw, err)
			status = 1
			continue
		}
		if o.public {
			out = lookup.PublicView(out)
		}
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return status
}

// decoder picks remote gRPC, remote NATS or a local service, in that order.
func (o options) decoder(nc *nats.Conn, logger *zap.Logger) (decodeFunc, func(), error) {
	if o.grpcAddr != "" {
		conn, err := grpc.NewClient(o.grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("grpc: %w", err)
		}
		return func(ctx context.Context, req lookup.Request) (lookup.Outcome, error) {
			out, err := lookup.DecodeGRPC(ctx, conn, req)
			if err != nil {
				return lookup.Outcome{}, err
			}
			return *out, nil
		}, func() { conn.Close() }, nil
	}
	if nc != nil {
		return func(ctx context.Context, req lookup.Request) (lookup.Outcome, error) {
			return natsutil.Request[lookup.Request, lookup.Outcome](ctx, nc, o.subject, req)
		}, func() {}, nil
	}

	decOpts := []decoder.Option{decoder.WithLogger(logger)}
	if o.patterns != "" {
		set, err := patterns.Open(o.patterns, o.replace)
		if err != nil {
			return nil, nil, fmt.Errorf("patterns: %w", err)
		}
		decOpts = append(decOpts, decoder.WithPatterns(set))
	}
	opts := []lookup.Option{lookup.WithLogger(logger)}
	if o.nhtsa {
		client := provider.NewHTTPClient(o.timeout)
		opts = append(opts, lookup.WithCollector(provider.NewCollector(
			[]provider.Provider{provider.NewNHTSA(o.nhtsaURL, client)},
			provider.WithTimeout(o.timeout),
			provider.WithLogger(logger),
		)))
	}
	svc := lookup.New(decoder.New(decOpts...), opts...)
	return svc.Handle, func() {}, nil
}

func watch(ctx context.Context, nc natsutil.Conn, subject string, enc *json.Encoder, stderr io.Writer) int {
	events := make(chan lookup.Decoded, 16)
	sub, err := natsutil.Subscribe(nc, subject, func(_ context.Context, ev lookup.Decoded) {
		select {
		case events <- ev:
		default:
		}
	})
	if err != nil {
		fmt.Fprintln(stderr, "subscribe:", err)
		return 1
	}
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return 0
		case ev := <-events:
			ev.Identity.VIN = lookup.MaskVIN(ev.Identity.VIN)
			if err := enc.Encode(ev); err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
		}
	}
}
