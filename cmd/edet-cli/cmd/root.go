package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"edet/internal/application/facade"
	"edet/internal/bootstrap"
)

var (
	configPath   string
	outputFormat string
	app          *bootstrap.App
)

const skipApp = "skip-app"

// errReported marks a failure that has already been printed
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "edet-cli",
	Short: "CLI for the EDET seminar organizer",
	Long: `edet-cli manages the folder structure and knowledge-base integration
for the seven EDET seminars.

It creates the main folder and one folder per seminar, connects seminar
folders to the knowledge base, records downloaded resources and stores
the organizer settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help and config commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Annotations[skipApp] != "" {
			return nil
		}
		if outputFormat != "" && outputFormat != "json" {
			return fmt.Errorf("unsupported output format: %s (expected json)", outputFormat)
		}

		var err error
		app, err = bootstrap.Open(cmd.Context(), configPath)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app != nil {
			return app.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if app != nil {
			app.Close()
		}
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file (default $XDG_CONFIG_HOME/edet/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: json for the raw result envelope")
}

// GetFacade returns the initialized facade
func GetFacade() *facade.ConfigurationFacade {
	return app.Facade
}
