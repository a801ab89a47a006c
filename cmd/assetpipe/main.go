package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/PlaxKING/tower-game/internal/app"
)

func main() {
	cfgFileName := flag.String("c", "config.yml", "Path to config file")
	mode := flag.String("mode", "export", "Run mode: export, validate or tui")
	watch := flag.Bool("watch", false, "Keep running and re-export on model changes")
	flag.Parse()

	// A missing .env is fine; it only carries optional overrides.
	_ = godotenv.Load()

	a := app.New(*cfgFileName)
	a.Start()
	defer a.Stop()

	switch *mode {
	case "export":
		if err := a.RunExport(); err != nil {
			fmt.Fprintf(os.Stderr, "export run failed: %s\n", err)
			os.Exit(1)
		}
		if *watch {
			runWatch(a)
		}

	case "validate":
		if err := a.RunValidate(); err != nil {
			fmt.Fprintf(os.Stderr, "validation run failed: %s\n", err)
			os.Exit(1)
		}

	case "tui":
		if err := a.RunInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "console failed: %s\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown mode: %s\n", *mode)
		os.Exit(2)
	}
}

func runWatch(a *app.App) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Watch(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "watcher failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Println("done")
}
