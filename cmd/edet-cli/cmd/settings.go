package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edet/internal/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the organizer settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the stored settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(GetFacade().LoadSettings(cmd.Context()), printSettings)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the stored settings",
	Long: `Change the stored settings. Flags that are not given keep their
stored value.

Examples:
  edet-cli settings set --enable-rag
  edet-cli settings set --auto-organize=false --sync-drive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		f := GetFacade()

		current := f.LoadSettings(ctx)
		if !current.Success {
			return emit(current, printSettings)
		}

		s := current.Data
		flags := cmd.Flags()
		if flags.Changed("auto-organize") {
			s.AutoOrganize, _ = flags.GetBool("auto-organize")
		}
		if flags.Changed("enable-rag") {
			s.EnableRAG, _ = flags.GetBool("enable-rag")
		}
		if flags.Changed("sync-drive") {
			s.SyncDrive, _ = flags.GetBool("sync-drive")
		}

		return emit(f.SaveSettings(ctx, s), func(saved domain.Settings) {
			pterm.Success.Println("Settings saved")
			printSettings(saved)
		})
	},
}

func printSettings(s domain.Settings) {
	rows := pterm.TableData{
		{"Setting", "Value"},
		{"Auto-organize", yesNo(s.AutoOrganize)},
		{"RAG", yesNo(s.EnableRAG)},
		{"Sync drive", yesNo(s.SyncDrive)},
	}
	if !s.Timestamp.IsZero() {
		rows = append(rows, []string{"Saved at", s.Timestamp.Local().Format("2006-01-02 15:04:05")})
	}
	printTable(rows)
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().Bool("auto-organize", false, "organize downloaded files automatically")
	settingsSetCmd.Flags().Bool("enable-rag", false, "enable the knowledge-base integration")
	settingsSetCmd.Flags().Bool("sync-drive", false, "sync folders with the remote drive")
}
