package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dimmer/pkg/domtree"
)

var domCmd = &cobra.Command{
	Use:   "dom [file]",
	Short: "Serialize an HTML document's tag tree",
	Long: `Parse an HTML document and print its tag tree, one escaped tag per
line indented by depth, followed by the flat open/close token list.
Reads from stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDom,
}

func init() {
	rootCmd.AddCommand(domCmd)
}

func runDom(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var input io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		input = f
	}

	root, err := domtree.Parse(input)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	result := domtree.Serialize(root)
	fmt.Print(result.Markup)

	t := app.Theme
	fmt.Println()
	fmt.Println(t.Subtitle.Render(fmt.Sprintf("Tokens (%d)", len(result.Tokens))))
	for _, token := range result.Tokens {
		fmt.Printf("%s %s\n", t.Subtle.Render(token.Kind.String()), t.Normal.Render(token.Name))
	}

	return nil
}
