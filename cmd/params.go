package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/user/ffcmd/internal/ffmpeg"
	"github.com/user/ffcmd/internal/params"
)

// CreateParamsCmd creates the params command.
func CreateParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List supported conversion parameters",
		Long: `Prints the fixed parameter vocabulary and the CLI pattern each parameter ` +
			`renders through, in canonical rendering order. Patterns without a placeholder ` +
			`are boolean flags.`,
		Run: func(_ *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PARAMETER\tPATTERN")
			for _, name := range params.All() {
				pattern, _ := ffmpeg.Pattern(name)
				fmt.Fprintf(w, "%s\t%s\n", name, pattern)
			}
			w.Flush()
		},
	}
}
