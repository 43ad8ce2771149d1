// Command opcuajsonctl runs the debug console for the OPC UA JSON encoder.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/opcua-json/opcuajson/codec"
	"github.com/opcua-json/opcuajson/debugconsole"
	"github.com/opcua-json/opcuajson/encctx"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "listen address")
		configPath = flag.String("config", "", "path to a YAML encoding context configuration")
		h2c        = flag.Bool("h2c", false, "serve over cleartext HTTP/2")
		interval   = flag.Duration("stream-interval", 2*time.Second, "period between /stream pushes")
	)
	flag.Parse()

	cfg := encctx.DefaultConfig()
	if *configPath != "" {
		loaded, err := encctx.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	reg := codec.NewRegistry()
	codec.RegisterBuiltinCodecs(reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("debug console listening on %s", *addr)
	err := debugconsole.Serve(ctx, *addr, debugconsole.Options{
		Config:         cfg,
		Registry:       reg,
		StreamInterval: *interval,
		H2C:            *h2c,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("serve: %v", err)
	}
}
