package cmd

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edet/internal/domain"
)

var seminarsCmd = &cobra.Command{
	Use:   "seminars",
	Short: "List the seminars",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(GetFacade().ListSeminars(), printSeminars)
	},
}

func printSeminars(seminars []domain.SeminarEntry) {
	rows := pterm.TableData{{"ID", "Name", "Folder"}}
	for _, s := range seminars {
		rows = append(rows, []string{strconv.Itoa(s.ID), s.DisplayName, s.FolderName})
	}
	printTable(rows)
}

func init() {
	rootCmd.AddCommand(seminarsCmd)
}
