package cmd

import (
	"strconv"

	"github.com/gobwas/glob"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"edet/internal/domain"
)

var includePattern string

var organizeCmd = &cobra.Command{
	Use:   "organize <seminar-id> <path>...",
	Short: "Record local files as resources of a seminar",
	Long: `Record local files as resources of a seminar.

Each path may be a file or a directory; directories are walked
recursively. The MIME type of every file is detected from its content.
Use --include to keep only files whose name matches a glob.

Examples:
  edet-cli organize 2 ~/Downloads/caso-clinico.pdf
  edet-cli organize 5 ~/Downloads/edet --include "*.{pdf,pptx}"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSeminarID(args[0])
		if err != nil {
			return err
		}

		var include glob.Glob
		if includePattern != "" {
			include, err = glob.Compile(includePattern)
			if err != nil {
				return err
			}
		}

		files, err := collectFiles(args[1:], include)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			pterm.Warning.Println("No files matched")
		}

		res := GetFacade().OrganizeResources(cmd.Context(), files, id)
		return emit(res, func(rec domain.OrganizationRecord) {
			pterm.Success.Printf("Organized %d files into %s\n", rec.TotalFiles, rec.Seminar)
			if rec.TotalFiles == 0 {
				return
			}
			rows := pterm.TableData{{"File", "Size", "Type", "Destination"}}
			for _, f := range rec.ProcessedFiles {
				rows = append(rows, []string{f.Filename, strconv.FormatInt(f.Size, 10), f.Type, f.Destination})
			}
			printTable(rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(organizeCmd)
	organizeCmd.Flags().StringVar(&includePattern, "include", "", "only organize files whose name matches this glob")
}
