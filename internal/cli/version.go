package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mgn version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSONOutput() {
			outputSuccess(map[string]string{
				"version": version.String(),
				"commit":  version.Commit,
				"date":    version.Date,
			}, nil)
			return nil
		}
		fmt.Printf("mgn %s\n", version.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
