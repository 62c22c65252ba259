package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Display version, commit, build date, and repository URL.`,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewVersionRenderer(app.Theme)
	fmt.Println(renderer.Render(app.BuildInfo))

	return nil
}
