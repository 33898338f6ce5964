package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/catlint/internal/logging"
	"github.com/yaklabco/catlint/internal/ui/pretty"
	"github.com/yaklabco/catlint/pkg/catalog"
	"github.com/yaklabco/catlint/pkg/config"
	"github.com/yaklabco/catlint/pkg/format"
)

// ErrFindings is returned when a checker reported issues. It only signals
// the exit code; nothing is logged for it.
var ErrFindings = errors.New("findings reported")

// ErrConfig marks configuration loading failures.
var ErrConfig = errors.New("configuration error")

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate catalog formatting",
		Long: `Validate a catalog listing against the formatting rules.

Checks category alphabetical order, entry field syntax (title, description,
auth, https, cors), cell padding, minimum entries per category, and the
Index section cross-references. Prints every finding as "(L000) message",
in document order.

Examples:
  catlint check README.md
  catlint check --debug README.md`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	lines, err := readLines(path)
	if err != nil {
		return err
	}

	logger.Debug("document loaded",
		logging.FieldPath, path,
		logging.FieldLines, len(lines),
		logging.FieldCategories, len(catalog.ExtractCategories(lines).Names),
	)

	validator := format.NewValidator()
	validator.MinEntriesPerCategory = cfg.MinEntriesPerCategory
	validator.MaxDescriptionLength = cfg.MaxDescriptionLength

	diags := validator.Validate(lines)

	styles := newStyles(cmd)
	styles.WriteDiagnostics(cmd.OutOrStdout(), diags)

	if len(diags) > 0 {
		logger.Debug("check finished",
			logging.FieldPath, path,
			logging.FieldDiagnostics, len(diags),
		)
		return ErrFindings
	}

	return nil
}

// loadConfig resolves the configuration: the explicit --config path wins,
// then a discovered .catlint.yaml, then the built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if path == "" {
		workDir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		discovered, found := config.Discover(workDir)
		if !found {
			return config.Default(), nil
		}
		path = discovered
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	logging.Default().Debug("configuration loaded", logging.FieldPath, path)
	return cfg, nil
}

// newStyles builds the output styles honoring the --color flag.
func newStyles(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// ExitCodeForError maps a command error to the process exit code.
func ExitCodeForError(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFindings):
		return ExitFindings
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
