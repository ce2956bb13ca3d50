package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edet/internal/application/registry"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the main folder and the seminar folders",
	Long: `Create the main folder and one subfolder per seminar.

Folders that already exist are reused, so running init again is safe and
finishes a structure that was only partly created.

Examples:
  edet-cli init
  edet-cli init -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := GetFacade().Initialize(cmd.Context())
		return emit(res, func(r registry.InitializeResult) {
			pterm.Success.Println(r.Message)
			printTable(pterm.TableData{
				{"Property", "Value"},
				{"Main folder", r.MainFolderID},
				{"Seminars", pterm.Sprint(r.SeminarsCount)},
				{"Last sync", r.LastSync.Local().Format("2006-01-02 15:04:05")},
			})
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
