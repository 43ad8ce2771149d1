package debugconsole

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"rivaas.dev/router"
	"rivaas.dev/router/middleware"

	"github.com/opcua-json/opcuajson/codec"
	"github.com/opcua-json/opcuajson/encctx"
)

// Options configures the debug console's router and server.
type Options struct {
	// Config is the encoding context configuration (namespace/server
	// tables, resource limits, optional basic-auth credentials for
	// /encode). Required.
	Config encctx.Config

	// Registry is the structure codec registry used to resolve
	// structure and message bodies. A nil Registry means a fresh one
	// holding only the codecs RegisterBuiltinCodecs provides.
	Registry *codec.Registry

	// AllowedOrigins configures the CORS middleware. Defaults to none.
	AllowedOrigins []string

	// StreamInterval is the period between synthetic DataValue pushes
	// on /stream. Defaults to 2 seconds.
	StreamInterval time.Duration

	// H2C, when true, serves the router over cleartext HTTP/2 using
	// golang.org/x/net/http2/h2c instead of plain HTTP/1.1.
	H2C bool
}

func (o Options) streamInterval() time.Duration {
	if o.StreamInterval <= 0 {
		return 2 * time.Second
	}
	return o.StreamInterval
}

func (o Options) registry() *codec.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	reg := codec.NewRegistry()
	codec.RegisterBuiltinCodecs(reg)
	return reg
}

// NewRouter builds the debug console's router: middleware stack, the
// /encode, /context and /stream routes, and the OpenAPI document
// describing them.
func NewRouter(opts Options) (*router.Router, error) {
	r := router.MustNew()

	r.Use(middleware.Recovery(), middleware.RequestID(), middleware.Security())
	if len(opts.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(middleware.WithAllowedOrigins(opts.AllowedOrigins)))
	}

	encode := handleEncode(opts)
	if opts.Config.AuthUsername != "" {
		if opts.Config.AuthPassword == "" {
			return nil, errors.New("debugconsole: authUsername set without authPassword")
		}
		auth := middleware.BasicAuth(middleware.WithBasicAuthUsers(map[string]string{
			opts.Config.AuthUsername: opts.Config.AuthPassword,
		}))
		r.POST("/encode", auth, encode)
	} else {
		r.POST("/encode", encode)
	}

	r.GET("/context", handleContext(opts))
	r.GET("/stream", handleStream(opts))

	if err := registerDocs(r); err != nil {
		return nil, err
	}

	return r, nil
}

// Serve runs the debug console's router on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, opts Options) error {
	r, err := NewRouter(opts)
	if err != nil {
		return err
	}

	var handler http.Handler = r
	if opts.H2C {
		handler = h2c.NewHandler(r, &http2.Server{})
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // /stream holds the connection open indefinitely
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
