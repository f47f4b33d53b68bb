package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/buildinfo"
	"github.com/teller-dev/teller/internal/config"
)

// DefaultBankName is used when no config file supplies one.
const DefaultBankName = "Universal Banking"

// NewRootCommand creates the root CLI command. Running it starts an
// interactive banking session over a fresh in-memory ledger.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Interactive terminal banking over an in-memory ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			return RunSession(cfg)
		},
	}

	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to teller.yaml (built-in defaults when omitted)")

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(DefaultBankName), nil
	}
	return config.Load(path)
}
