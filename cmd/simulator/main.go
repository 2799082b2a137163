package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
)

var (
	serverURL   = flag.String("server", "http://localhost:8000", "ArkTech brain base URL")
	timeout     = flag.Duration("timeout", 90*time.Second, "Per-request timeout")
	interactive = flag.Bool("interactive", false, "Read utterances from stdin")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	// Setup logger
	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	simulator := NewSimulator(&SimulatorConfig{
		ServerURL: *serverURL,
		Timeout:   *timeout,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := simulator.CheckHealth(ctx); err != nil {
		logger.Fatal("Server is not healthy", zap.Error(err))
	}

	if *interactive {
		runInteractiveMode(ctx, simulator)
		return
	}

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: simulator [-server URL] <utterance> | -interactive")
		os.Exit(2)
	}
	reply, err := simulator.Ask(ctx, text)
	if err != nil {
		logger.Fatal("Ask failed", zap.Error(err))
	}
	fmt.Println(reply.Render())
}

func runInteractiveMode(ctx context.Context, sim *Simulator) {
	fmt.Println("ArkTech Front-end Simulator - Interactive Mode")
	fmt.Println("==============================================")
	fmt.Println("Type an utterance and press enter. 'quit' exits.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		reply, err := sim.Ask(ctx, line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(reply.Render())
	}
}
