// Command molkit runs YAML edit scripts against fresh molecules and prints
// one summary row per script.
//
// Usage:
//
//	molkit [-config molkit.yaml] [-metrics] [-serve :9090] script.yaml...
//
// Each script gets its own editor and layer. With -serve, /metrics stays up
// after the run until SIGINT or SIGTERM, and the config file is watched so
// log.level changes apply without a restart.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/molkit/config"
	"github.com/katalvlaran/molkit/editor"
	"github.com/katalvlaran/molkit/layers"
	"github.com/katalvlaran/molkit/metrics"
	"github.com/katalvlaran/molkit/script"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("molkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to YAML config (built-in defaults when empty)")
	printMetrics := fs.Bool("metrics", false, "Print gathered metrics after the run")
	serveAddr := fs.String("serve", "", "Serve /metrics on this address after the run")
	listOps := fs.Bool("ops", false, "List script ops and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *listOps {
		fmt.Fprintln(stdout, strings.Join(script.Ops(), "\n"))
		return 0
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "molkit: no scripts given")
		fs.Usage()
		return 2
	}

	// ── Config & logging ─────────────────────────────────────────────────────
	var level slog.LevelVar
	bootLog := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: &level}))
	cfg := config.Default()
	var loader *config.Loader
	if *cfgPath != "" {
		var err error
		loader, err = config.NewLoader(*cfgPath, config.WithLogger(bootLog))
		if err != nil {
			bootLog.Error("failed to load config", "err", err)
			return 1
		}
		cfg = loader.Config()
	}
	log := cfg.Logger(&level)

	// ── Metrics ──────────────────────────────────────────────────────────────
	var reg *prometheus.Registry
	opts := cfg.EditorOptions()
	opts = append(opts, editor.WithLogger(log))
	if cfg.Metrics.Enabled || *printMetrics || *serveAddr != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, editor.WithMetrics(metrics.New(reg, cfg.Metrics.Namespace)))
	}

	// ── Scripts ──────────────────────────────────────────────────────────────
	model := layers.New()
	for _, path := range fs.Args() {
		s, err := script.Load(path)
		if err != nil {
			log.Error("failed to load script", "path", path, "err", err)
			return 1
		}
		ed := editor.New(opts...)
		name := s.Name
		if name == "" {
			name = path
		}
		id, _ := model.Add(name, ed)
		_ = model.SetActive(id)
		if err := script.NewRunner(ed, script.WithLogger(log.Logger)).Run(ctx, s); err != nil {
			log.Error("script failed", "path", path, "err", err)
			printRows(stdout, model.Rows())
			return 1
		}
	}
	printRows(stdout, model.Rows())

	if *printMetrics {
		if err := writeMetrics(stdout, reg); err != nil {
			log.Error("failed to write metrics", "err", err)
			return 1
		}
	}
	if *serveAddr == "" {
		return 0
	}

	// ── Hot-reload watcher ───────────────────────────────────────────────────
	if loader != nil {
		loader.OnChange(func(c *config.Config) {
			level.Set(c.Log.SlogLevel())
			log.Info("log level reloaded", "level", c.Log.Level)
		})
		stopWatch, err := loader.Watch()
		if err != nil {
			log.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	return serve(ctx, log.Logger, *serveAddr, reg)
}

func serve(ctx context.Context, log *slog.Logger, addr string, reg *prometheus.Registry) int {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutCtx)
	return 0
}

func printRows(w io.Writer, rows []layers.Row) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LAYER\tNAME\tATOMS\tBONDS\tGROUPS\tACTIVE")
	for _, r := range rows {
		active := ""
		if r.Active {
			active = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n", r.ID.String()[:8], r.Name, r.Atoms, r.Bonds, r.Groups, active)
	}
	_ = tw.Flush()
}

func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
