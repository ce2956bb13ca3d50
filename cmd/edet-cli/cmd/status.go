package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edet/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the folder structure is initialized",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := GetFacade().GetStatus(cmd.Context())
		return emit(res, func(s domain.StatusSnapshot) {
			if !s.Initialized {
				pterm.Warning.Println("Folder structure not initialized. Run: edet-cli init")
			}

			rows := pterm.TableData{
				{"Property", "Value"},
				{"Initialized", yesNo(s.Initialized)},
			}
			if s.MainFolderID != "" {
				rows = append(rows, []string{"Main folder", s.MainFolderID})
			}
			if s.LastSync != nil {
				rows = append(rows, []string{"Last sync", s.LastSync.Local().Format("2006-01-02 15:04:05")})
			}
			rows = append(rows, []string{"Seminars", pterm.Sprint(s.TotalSeminars)})
			rows = append(rows, []string{"Store", app.Config.Store.Kind})
			rows = append(rows, []string{"Folders", app.Config.Folders.Kind})
			printTable(rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
