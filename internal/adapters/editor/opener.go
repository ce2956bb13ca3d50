package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbacks are tried in order when neither $EDITOR nor $VISUAL is set
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener launches the user's editor on a file
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates an opener that reads the real environment
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// OpenFile opens a file and waits for the editor to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd attached to the terminal.
// $EDITOR may carry arguments, e.g. "code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.findEditor()
	if len(argv) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	args := append(argv[1:], path)

	cmd := exec.Command(argv[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor argv. Only environment values are split
// on whitespace; a resolved fallback path is used as is.
func (o *Opener) findEditor() []string {
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(o.getenv(key)); len(fields) > 0 {
			return fields
		}
	}

	for _, editor := range fallbacks {
		if path, err := o.lookPath(editor); err == nil {
			return []string{path}
		}
	}
	return nil
}
