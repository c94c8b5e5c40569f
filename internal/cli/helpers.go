// Shared helpers for rolodex CLI commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/script"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// errUsage marks errors caused by bad flags or configuration values.
var errUsage = errors.New("usage error")

// stdinArg is the script argument that reads from standard input.
const stdinArg = "-"

// loadScript parses the script named by arg, or standard input for "-".
func loadScript(cmd *cobra.Command, arg string) (*script.Script, error) {
	var r io.Reader
	if arg == stdinArg {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	sc, err := script.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", arg, err)
	}
	return sc, nil
}

// runScript applies sc to a fresh Directory and returns it. Step output
// goes to out.
func (s *session) runScript(cmd *cobra.Command, sc *script.Script, out io.Writer) (*types.Directory, error) {
	dir := types.NewDirectory()
	rn := &script.Runner{Out: out, Logger: s.log()}
	if err := rn.Run(cmd.Context(), dir, sc); err != nil {
		s.log().Error("script failed", "err", err)
		return nil, err
	}
	s.log().Info("script applied", "steps", len(sc.Steps), "records", dir.Len())
	return dir, nil
}

// printDirectory writes every record of dir in text form.
func printDirectory(w io.Writer, dir *types.Directory) error {
	for _, r := range dir.All() {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
