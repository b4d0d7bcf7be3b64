package cmd

import (
	"fmt"

	"github.com/benoitkugler/hexturtle/fonts"
	"github.com/spf13/cobra"
)

var fontsCmd = &cobra.Command{
	Use:   "fonts [font...]",
	Short: "List the built-in fonts, or check font directories",
	Long: `Without argument, lists the built-in fonts.
Otherwise, loads every glyph of the given fonts (built-in names or
directories) and reports the first problem of each.`,
	RunE: runFonts,
}

func init() {
	rootCmd.AddCommand(fontsCmd)
	fontsCmd.Flags().BoolVar(&strictFlag, "strict", false, "reject unsupported svg elements")
}

func runFonts(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range fonts.Names() {
			suffix := ""
			if name == fonts.Default {
				suffix = " (default)"
			}
			fmt.Fprintf(out, "%s%s\n", name, suffix)
		}
		return nil
	}

	var failed int
	for _, name := range args {
		font, err := openFont(name, strictFlag)
		if err == nil {
			err = font.Check()
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s: ok\n", name)
	}
	if failed != 0 {
		return fmt.Errorf("%d invalid font(s)", failed)
	}
	return nil
}
