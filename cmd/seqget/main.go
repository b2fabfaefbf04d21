package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/seqget/seqget/internal/config"
	"github.com/seqget/seqget/internal/download"
	"github.com/seqget/seqget/internal/http"
)

func main() {
	// Command line flags
	var (
		outputFlag      = flag.String("output", "", "Output directory (overrides config)")
		configFlag      = flag.String("config", "", "Path to config file")
		concurrencyFlag = flag.Int("concurrency", 0, "Max concurrent downloads (overrides config)")
		verboseFlag     = flag.Bool("verbose", false, "Show detailed communication logs")
		dryRunFlag      = flag.Bool("dry-run", false, "List the expanded URLs without downloading")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("seqget - Download sequentially numbered files")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  seqget [options] <Target_URL>")
		fmt.Println()
		fmt.Println("Target URL examples:")
		fmt.Println("  http://www.example.com/a[1-100].jpg")
		fmt.Println("      Downloads a1.jpg through a100.jpg.")
		fmt.Println("  http://www.example.com/b[2,4,8,10].jpg")
		fmt.Println("      Skipped numbers.")
		fmt.Println("  http://www.example.com/c[1,2-5,7,10-13,22-25].jpg")
		fmt.Println("      Singular numbers and ranges can be mixed.")
		fmt.Println("  http://www.example.com/[0001-0025].jpg")
		fmt.Println("      Zero-padded to the digits of the starting number.")
		fmt.Println()
		fmt.Println("For interactive mode, use: seqget-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
	}
	if *concurrencyFlag > 0 {
		settings.MaxConcurrentFetches = *concurrencyFlag
	}

	targetURL := flag.Arg(0)

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	client := http.NewClient(settings.UserAgent, settings.FetchTimeout)
	manager := download.NewManager(settings, client, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case download.LevelError:
			prefix = " ✗ "
		case download.LevelWarning:
			prefix = " ! "
		case download.LevelSuccess:
			prefix = " ✓ "
		case download.LevelInfo:
			prefix = " › "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Initialize(targetURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dryRunFlag {
		for _, item := range manager.Items() {
			fmt.Printf("%s => %s\n", item.URL, item.Path)
		}
		return
	}

	summary := manager.Run(ctx)

	done, total, received := manager.GetProgress()
	fmt.Println()
	fmt.Printf("Downloaded %d/%d files (%.2f MB)\n", done, total, float64(received)/1024/1024)

	if !summary.Ok() {
		fmt.Fprintf(os.Stderr, "\n%d file(s) failed:\n", summary.Failed)
		for _, failure := range summary.Failures {
			fmt.Fprintf(os.Stderr, "  %-10s %s: %v\n", failure.Item.Token, failure.Item.URL, failure.Err)
		}
		if ctx.Err() != nil {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
