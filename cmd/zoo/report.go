package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/zoo/internal/config"
	"github.com/nao1215/zoo/internal/log"
	"github.com/nao1215/zoo/internal/model"
	"github.com/nao1215/zoo/internal/report"
	"github.com/spf13/cobra"
)

// runReportCmd executes the root command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	return runReport(cfg, cmd.OutOrStdout(), cmd.InOrStdin(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	formats, err := cmd.Flags().GetStringSlice("format")
	if err != nil {
		return nil, err
	}
	cfg.OutputFormats, err = config.ParseFormats(formats)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	noPause, err := cmd.Flags().GetBool("no-pause")
	if err != nil {
		return nil, err
	}
	cfg.Pause = !noPause

	return cfg, nil
}

// runReport builds the roster, writes it to out and optionally waits for
// a line on in.
func runReport(cfg *config.Config, out io.Writer, in io.Reader, logger *slog.Logger) error {
	ids := model.NewIDGenerator()
	animals, err := model.DefaultRoster(ids)
	if err != nil {
		return fmt.Errorf("failed to build roster: %w", err)
	}
	logger.Debug("roster built", "animals", len(animals), "lastID", ids.Last())

	writer, err := report.NewFormatsWriter(cfg.OutputFormats, out, logger)
	if err != nil {
		return err
	}
	if _, err := writer.Write(animals); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !cfg.Pause {
		return nil
	}
	logger.Debug("waiting for enter")
	return waitForEnter(in)
}

// waitForEnter blocks until a full line or EOF is read from r.
func waitForEnter(r io.Reader) error {
	_, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	return nil
}
