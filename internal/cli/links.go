package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/catlint/internal/logging"
	"github.com/yaklabco/catlint/pkg/linkcheck"
)

type linksFlags struct {
	dupOnly bool
}

func newLinksCommand() *cobra.Command {
	flags := &linksFlags{}

	cmd := &cobra.Command{
		Use:   "links FILE",
		Short: "Audit the links in a catalog listing",
		Long: `Extract every hyperlink from a catalog listing, report duplicates, and
probe each link's liveness over the network.

Extraction starts at the "## Index" marker when present. Duplicate
detection normalizes a single trailing slash. Probing issues one GET per
link, sequentially, with a bounded timeout; anti-bot challenge pages from
known CDNs are not reported as failures.

Examples:
  catlint links README.md
  catlint links --dup-only README.md   # skip the network probes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dupOnly, "dup-only", false,
		"only check for duplicate links, skip liveness probing")

	return cmd
}

func runLinks(cmd *cobra.Command, args []string, flags *linksFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	links := linkcheck.ExtractLinks(string(data))
	logger.Debug("links extracted",
		logging.FieldPath, path,
		logging.FieldLinks, len(links),
	)

	styles := newStyles(cmd)
	out := cmd.OutOrStdout()

	logger.Info("checking for duplicate links", logging.FieldLinks, len(links))
	hasDuplicates, duplicates := linkcheck.FindDuplicates(links)
	styles.WriteDuplicates(out, duplicates)
	if hasDuplicates {
		logger.Debug("duplicates found", logging.FieldDuplicates, len(duplicates))
		return ErrFindings
	}

	if flags.dupOnly {
		return nil
	}

	logger.Info("checking links are working",
		logging.FieldLinks, len(links),
		logging.FieldTimeout, cfg.Timeout.Std(),
	)

	prober := linkcheck.NewProber(linkcheck.Options{
		Timeout:      cfg.Timeout.Std(),
		MaxRedirects: cfg.MaxRedirects,
		UserAgents:   cfg.UserAgents,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	failures := prober.ProbeAll(ctx, links)
	styles.WriteProbeFailures(out, len(links), failures)
	if len(failures) > 0 {
		for _, f := range failures {
			logger.Debug("link failed",
				logging.FieldLink, f.URL,
				logging.FieldKind, f.Kind,
			)
		}
		logger.Debug("probe failures", logging.FieldFailures, len(failures))
		return ErrFindings
	}

	return nil
}
