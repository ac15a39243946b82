package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Ritvik-Gupta/scraprs/internal/browser"
	"github.com/Ritvik-Gupta/scraprs/internal/config"
	"github.com/Ritvik-Gupta/scraprs/internal/page"
	"github.com/Ritvik-Gupta/scraprs/internal/potd"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/Ritvik-Gupta/scraprs/internal/wait"
	"github.com/Ritvik-Gupta/scraprs/pkg/logger"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var htmlPath string

	cmd := &cobra.Command{
		Use:           "potd <output-path>",
		Short:         "potd writes the problem of the day to an existing TOML file.",
		Args:          outputPathArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg, args[0], htmlPath)
		},
	}
	cmd.Flags().StringVar(&htmlPath, "html", "", "read a saved problem-set page instead of driving a browser")

	return cmd
}

// outputPathArg requires exactly one argument naming an existing path.
func outputPathArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", scrapeerr.ErrInvalidInput, err)
	}
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("%w: output path must exist: %v", scrapeerr.ErrInvalidInput, err)
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, outPath, htmlPath string) error {
	extractor := potd.NewExtractor(cfg.POTDBaseURL)
	opts := wait.Options{Timeout: cfg.WaitTimeout, Interval: cfg.PollInterval}

	var (
		rec *potd.Record
		err error
	)
	if htmlPath != "" {
		rec, err = scrapeSnapshot(ctx, extractor, htmlPath, opts)
	} else {
		rec, err = scrapeLive(ctx, cfg, extractor, opts)
	}
	if err != nil {
		return err
	}

	if err := potd.WriteTOML(outPath, rec, time.Now()); err != nil {
		return err
	}

	logger.Log.Info().
		Uint32("number", rec.Number).
		Str("name", rec.Name).
		Bool("has_solution", rec.SolutionURL != nil).
		Str("output", outPath).
		Msg("problem of the day written")
	return nil
}

func scrapeLive(ctx context.Context, cfg *config.Config, extractor *potd.Extractor, opts wait.Options) (*potd.Record, error) {
	session, err := browser.Open(ctx, browser.Options{RemoteURL: cfg.BrowserURL})
	if err != nil {
		return nil, err
	}
	defer session.Close()

	root, err := session.Navigate(ctx, cfg.POTDBaseURL+potd.ProblemSetPath)
	if err != nil {
		return nil, err
	}
	return extractor.Scrape(ctx, root, opts)
}

func scrapeSnapshot(ctx context.Context, extractor *potd.Extractor, htmlPath string, opts wait.Options) (*potd.Record, error) {
	f, err := os.Open(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open snapshot: %v", scrapeerr.ErrIO, err)
	}
	defer f.Close()

	root, err := page.Parse(f)
	if err != nil {
		return nil, err
	}
	return extractor.Scrape(ctx, root, opts)
}
