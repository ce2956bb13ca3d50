package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edet/internal/adapters/editor"
	"edet/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the configuration file path",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipApp: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Println(resolveConfigPath())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Long: `Open the configuration file in $EDITOR, writing the defaults first
when the file does not exist yet. The file is validated after the editor
exits.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipApp: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()

		created, err := config.WriteDefault(path)
		if err != nil {
			return err
		}
		if created {
			pterm.Info.Printf("Wrote default configuration to %s\n", path)
		}

		if err := editor.NewOpener().OpenFile(path); err != nil {
			return err
		}

		if _, err := config.Load(path); err != nil {
			pterm.Error.Println(err)
			return errReported
		}
		pterm.Success.Println("Configuration is valid")
		return nil
	},
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	if env := os.Getenv("EDET_CONFIG"); env != "" {
		return env
	}
	return config.DefaultPath()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}
