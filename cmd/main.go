package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bornholm/comptoir/internal/config"
	"github.com/bornholm/comptoir/internal/setup"
	"github.com/bornholm/comptoir/pkg/log"
	"github.com/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

var (
	configFile string = ""
	dumpConfig bool   = false
)

func init() {
	flag.StringVar(&configFile, "config", configFile, "configuration file")
	flag.BoolVar(&dumpConfig, "dump-config", dumpConfig, "dump default configuration file and exit")
}

func main() {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if dumpConfig {
		if err := config.Dump(os.Stdout, config.NewDefaultConfig()); err != nil {
			slog.ErrorContext(ctx, "could not dump config file", log.Error(errors.WithStack(err)))
			os.Exit(1)
		}

		return
	}

	conf, err := loadConfig()
	if err != nil {
		slog.ErrorContext(ctx, "could not load configuration", log.Error(errors.WithStack(err)), slog.String("file", configFile))
		os.Exit(1)
	}

	slog.SetDefault(newLogger(os.Stderr, conf.Logger))
	slog.SetLogLoggerLevel(slog.Level(conf.Logger.Level))

	if err := run(ctx, conf); err != nil {
		slog.ErrorContext(ctx, "admin server stopped", log.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	conf := config.NewDefaultConfig()

	if configFile != "" {
		if err := config.LoadFile(configFile, conf); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := config.Interpolate(conf); err != nil {
		return nil, errors.WithStack(err)
	}

	return conf, nil
}

func newLogger(w io.Writer, conf config.Logger) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     slog.Level(conf.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if string(conf.Format) == config.LoggerFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(log.ContextHandler{Handler: handler})
}

func run(ctx context.Context, conf *config.Config) error {
	handler, err := setup.NewHandlerFromConfig(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "could not generate handler from config")
	}

	var readHeaderTimeout time.Duration
	if conf.HTTP.ReadHeaderTimeout != nil {
		readHeaderTimeout = time.Duration(*conf.HTTP.ReadHeaderTimeout)
	}

	server := &http.Server{
		Addr:              string(conf.HTTP.Address),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errs := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "admin server listening", slog.String("addr", server.Addr))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	slog.InfoContext(ctx, "shutting down admin server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
