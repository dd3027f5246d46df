package main

import (
	"flag"
	"io"
	"os"

	"github.com/hsdfat8/bssap/internal/config"
	"github.com/hsdfat8/bssap/pkg/logger"
)

// Exit codes
const (
	exitOK       = 0
	exitError    = 1
	exitFailures = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run decodes the configured input and returns the process exit code. It
// returns instead of exiting so that deferred cleanup always runs.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	// Command line flags
	fs := flag.NewFlagSet("bssmap-decode", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file (optional)")
	format := fs.String("format", "", "Input format: hex (one message per line) or binary (BSSAP framed stream)")
	input := fs.String("input", "", "Input file, - for stdin")
	pcapPath := fs.String("pcap", "", "Write every decoded message into this pcap file")
	summary := fs.Bool("summary", true, "Print a per message type summary at the end")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Errorw("Failed to load configuration", "error", err)
		return exitError
	}

	// flags given on the command line win over the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Input.Format = *format
		case "input":
			cfg.Input.Path = *input
		case "pcap":
			cfg.Output.Pcap = *pcapPath
		case "summary":
			cfg.Output.Summary = *summary
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Log.Errorw("Invalid configuration", "error", err)
		return exitError
	}

	logger.SetLevel(cfg.Logging.Level)

	in := stdin
	if cfg.Input.Path != "" && cfg.Input.Path != "-" {
		f, err := os.Open(cfg.Input.Path)
		if err != nil {
			logger.Log.Errorw("Failed to open input", "path", cfg.Input.Path, "error", err)
			return exitError
		}
		defer f.Close()
		in = f
	}

	d, err := newDecoder(cfg)
	if err != nil {
		logger.Log.Errorw("Failed to set up decoder", "error", err)
		return exitError
	}

	runErr := d.run(in)
	if closeErr := d.close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	if cfg.Output.Summary {
		d.printSummary(stdout)
	}
	if runErr != nil {
		logger.Log.Errorw("Decoding stopped", "error", runErr)
		return exitError
	}
	if d.failures() > 0 {
		return exitFailures
	}
	return exitOK
}
