package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"github.com/skillscope/skillscope/pkg/analysis"
	"github.com/skillscope/skillscope/pkg/catalog"
	"github.com/skillscope/skillscope/pkg/config"
	"github.com/skillscope/skillscope/pkg/finder"
	"github.com/skillscope/skillscope/pkg/layout"
	"github.com/skillscope/skillscope/pkg/logging"
	"github.com/skillscope/skillscope/pkg/model"
	"github.com/skillscope/skillscope/pkg/output"
	"github.com/skillscope/skillscope/pkg/share"
	"github.com/skillscope/skillscope/pkg/watcher"
	"github.com/skillscope/skillscope/pkg/web"
)

func main() {
	flags := pflag.NewFlagSet("skillscope", pflag.ExitOnError)
	flags.String("input", ".", "Skills file or directory to analyze")
	flags.Bool("web", false, "Serve the dashboard API instead of printing a report")
	flags.Int("port", 8080, "Port for the dashboard API (only used with --web)")
	flags.Bool("watch", false, "Re-analyze when the input changes (only used with --web)")
	flags.Bool("open", false, "Open the dashboard in a browser (only used with --web)")
	flags.Int64("seed", 0, "Layout jitter seed; 0 uses the current time")
	flags.Bool("nojitter", false, "Disable layout jitter for reproducible positions")
	flags.String("verbosity", "", "Log level: debug, info, warn, error")
	flags.CountP("verbose", "v", "Increase log verbosity (-v debug)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logging.SetLevel(logLevel(cfg))

	opts := analysis.Options{
		Catalog: catalog.Default(),
		Jitter:  jitterFor(cfg),
	}

	if cfg.WebMode {
		runWeb(cfg, opts)
		return
	}

	result, err := runAnalysis(cfg.Input, opts)
	if err != nil {
		logging.Fatal("analysis failed", "error", err)
	}

	output.PrintReport(result)

	if code, err := share.Encode(result); err == nil {
		fmt.Printf("\nShare this analysis: %s\n", code)
	}
}

// runAnalysis reads the input and runs the pipeline once
func runAnalysis(input string, opts analysis.Options) (*model.AnalysisResult, error) {
	raw, err := finder.ReadInput(input)
	if err != nil {
		return nil, fmt.Errorf("reading skill input: %w", err)
	}

	start := time.Now()
	result := analysis.Analyze(raw, opts)
	logging.Debug("pipeline finished",
		"skills", result.Summary.TotalSkills,
		"edges", len(result.Data.Edges),
		"duration", time.Since(start),
	)
	return result, nil
}

func runWeb(cfg *config.Config, opts analysis.Options) {
	server := web.NewServer(opts)

	go func() {
		if err := server.Start(cfg.Port); err != nil {
			logging.Fatal("server failed", "error", err)
		}
	}()

	// First analysis runs in the background so the API is reachable
	// while it computes
	go func() {
		_ = server.PublishStatus("analyzing", "initial analysis")
		result, err := runAnalysis(cfg.Input, opts)
		if err != nil {
			logging.Error("initial analysis failed", "error", err)
			_ = server.PublishStatus("failed", err.Error())
			return
		}
		server.SetResult(result)
		_ = server.PublishStatus("ready", "analysis complete")
		logging.Info("initial analysis complete",
			"skills", result.Summary.TotalSkills,
			"healthScore", result.Summary.HealthScore,
		)
	}()

	if cfg.Open {
		url := fmt.Sprintf("http://localhost:%d", cfg.Port)
		// Give the listener a moment before pointing a browser at it
		time.Sleep(500 * time.Millisecond)
		openBrowser(url)
	}

	ctx := context.Background()

	if cfg.Watch {
		if err := watchInput(ctx, cfg, opts, server); err != nil {
			logging.Error("watch disabled", "error", err)
		}
	}

	select {}
}

// watchInput re-runs analysis on debounced input changes
func watchInput(ctx context.Context, cfg *config.Config, opts analysis.Options, server *web.Server) error {
	iw, err := watcher.NewInputWatcher(cfg.Input)
	if err != nil {
		return err
	}
	if err := iw.Start(ctx); err != nil {
		return err
	}

	deb := watcher.NewDebouncer(iw.Events(), 300*time.Millisecond, 2*time.Second)
	deb.Start(ctx)

	go func() {
		for ev := range deb.Events() {
			logging.Info("input changed, re-analyzing", "paths", len(ev.Paths))
			_ = server.PublishStatus("analyzing", "input changed")

			result, err := runAnalysis(cfg.Input, opts)
			if err != nil {
				logging.Error("re-analysis failed", "error", err)
				_ = server.PublishStatus("failed", err.Error())
				continue
			}
			server.SetResult(result)
			_ = server.PublishStatus("ready", "analysis complete")
		}
	}()

	return nil
}

func openBrowser(url string) {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "linux":
		cmd = "xdg-open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		logging.Warn("cannot open browser", "platform", runtime.GOOS)
		return
	}

	if err := exec.Command(cmd, args...).Start(); err != nil {
		logging.Warn("failed to open browser", "error", err)
	}
}

func jitterFor(cfg *config.Config) layout.Jitter {
	if cfg.NoJitter {
		return layout.NoJitter
	}
	if cfg.Seed != 0 {
		return layout.NewJitter(cfg.Seed)
	}
	return nil // analysis falls back to a time-seeded jitter
}

func logLevel(cfg *config.Config) slog.Level {
	switch cfg.Verbosity {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if cfg.VerboseCnt > 0 {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
