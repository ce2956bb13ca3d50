package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edet/internal/application/commands"
	"edet/internal/domain"
)

var connectCmd = &cobra.Command{
	Use:   "connect <seminar-id>",
	Short: "Connect a seminar folder to the knowledge base",
	Long: `Connect a seminar folder to the knowledge-base integration.

The folder structure must be initialized first. Connecting again
replaces the stored integration with a fresh one.

Examples:
  edet-cli connect 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeminarID(args[0])
		if err != nil {
			return err
		}

		res := GetFacade().ConnectIntegration(cmd.Context(), id)
		return emit(res, func(r commands.ConnectResult) {
			pterm.Success.Println(r.Message)
			printIntegration(r.Config)
		})
	},
}

var integrationCmd = &cobra.Command{
	Use:   "integration <seminar-id>",
	Short: "Show the stored integration of a seminar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeminarID(args[0])
		if err != nil {
			return err
		}

		res := GetFacade().GetIntegration(cmd.Context(), id)
		return emit(res, printIntegration)
	},
}

func printIntegration(c domain.IntegrationConfig) {
	printTable(pterm.TableData{
		{"Property", "Value"},
		{"Seminar", fmt.Sprintf("%d %s", c.SeminarID, c.SeminarName)},
		{"Folder", c.FolderID},
		{"RAG enabled", yesNo(c.RAGEnabled)},
		{"Connected at", c.Timestamp.Local().Format("2006-01-02 15:04:05")},
	})
}

func parseSeminarID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid seminar id: %s (expected a number from 1 to %d)", s, domain.SeminarCount())
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(integrationCmd)
}
