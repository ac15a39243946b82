package main

import (
	"fmt"

	"github.com/Ritvik-Gupta/scraprs/internal/config"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/Ritvik-Gupta/scraprs/internal/wiki"
	"github.com/Ritvik-Gupta/scraprs/pkg/logger"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "wikilinks <ref>",
		Short:   "wikilinks prints the article links found in a wiki page's body paragraphs.",
		Example: `  wikilinks "/wiki/Rust_(programming_language)"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return fmt.Errorf("%w: relative wiki page path must be provided: %v", scrapeerr.ErrInvalidInput, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := wiki.NewClient(cfg.WikiBaseURL).FetchLinks(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			logger.Log.Debug().Str("ref", args[0]).Int("links", len(links)).Msg("links extracted")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%q\n", links)
			return err
		},
	}
}
