package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"quiz-session/internal/bank"
	"quiz-session/internal/config"
	"quiz-session/internal/httpapi"
)

type options struct {
	configPath string
	addr       string
	dbPath     string
	importRef  string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file (defaults to $QUIZ_CONFIG)")
	flag.StringVar(&opts.addr, "addr", "", "HTTP listen address")
	flag.StringVar(&opts.dbPath, "db", "", "sqlite database holding the published bank")
	flag.StringVar(&opts.importRef, "import", "", "load this bank (file, URL or opentdb://) into the database before serving")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if opts.addr != "" {
		cfg.HTTPAddr = opts.addr
	}
	if opts.dbPath != "" {
		cfg.DBPath = opts.dbPath
	}

	log := config.NewLogger(cfg.LogLevel, cfg.LogFormat).WithField("service", "quiz-bank-service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts.importRef, log); err != nil {
		log.WithError(err).Fatal("quiz-bank-service stopped")
	}
}

func run(ctx context.Context, cfg config.Config, importRef string, log *logrus.Entry) error {
	store, err := bank.NewStore(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store %s: %w", cfg.DBPath, err)
	}
	defer store.Close()

	if importRef != "" {
		if err := importBank(ctx, store, importRef, cfg.HTTPTimeout, log); err != nil {
			return err
		}
	}

	if count, err := store.Count(ctx); err == nil {
		log.WithField("questions", count).Info("bank ready")
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(store, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", cfg.HTTPAddr).Info("listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	log.Info("shut down")
	return nil
}

func importBank(ctx context.Context, store *bank.Store, ref string, timeout time.Duration, log *logrus.Entry) error {
	source, err := bank.Open(ref, bank.Options{Timeout: timeout})
	if err != nil {
		return fmt.Errorf("import source: %w", err)
	}
	questions, err := bank.Load(ctx, source, log)
	if err != nil {
		return fmt.Errorf("import %s: %w", source, err)
	}
	if err := store.ReplaceBank(ctx, questions, source.String()); err != nil {
		return fmt.Errorf("store imported bank: %w", err)
	}
	return nil
}
