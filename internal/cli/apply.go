package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/jsonl"
)

func newApplyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <script.yaml|->",
		Short: "Run a script and print the resulting directory",
		Long: `Run the steps of a YAML script against an empty directory, then print
every record. With --json the records are printed as JSON Lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScript(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			dir, err := s.runScript(cmd, sc, out)
			if err != nil {
				return err
			}
			if s.jsonOutput() {
				return jsonl.Write(out, dir)
			}
			return printDirectory(out, dir)
		},
	}
}
