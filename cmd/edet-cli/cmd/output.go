package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"

	"edet/internal/application"
)

// emit prints a result envelope. Failures are printed with pterm.Error and
// turned into errReported so the process exits with status 1.
func emit[T any](r application.Result[T], render func(T)) error {
	if outputFormat == "json" {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		if !r.Success {
			return errReported
		}
		return nil
	}

	if !r.Success {
		pterm.Error.Println(r.Error)
		return errReported
	}
	render(r.Data)
	return nil
}

// printTable renders rows with the first row as header
func printTable(rows pterm.TableData) {
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
