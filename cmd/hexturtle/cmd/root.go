package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/benoitkugler/hexturtle/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	verbose   bool
	debugFont bool

	// flag values, applied over the configuration when set
	fontFlag    string
	scaleFlag   float64
	speedFlag   int
	advanceFlag float64
	backendFlag string
	outputFlag  string
	strictFlag  bool
	columnsFlag int
)

var rootCmd = &cobra.Command{
	Use:   "hexturtle [number]",
	Short: "Draw numbers in hexadecimal with an SVG line font",
	Long: `hexturtle converts a decimal number to hexadecimal and draws it,
digit by digit, with a pen following the straight line paths of an
SVG font directory (one file per digit: 0.svg ... F.svg, plus x.svg).

The number is read from standard input when not given as argument.

Examples:
  hexturtle 48879
  hexturtle --font block --backend pdf -o beef.pdf 48879
  hexturtle --backend term 255
  hexturtle --debug-font --font ./myfont`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, TOML or YAML (default: none)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each rendered glyph")

	flags := rootCmd.Flags()
	flags.StringVarP(&fontFlag, "font", "f", "", `built-in font name or font directory (default "segment")`)
	flags.Float64Var(&scaleFlag, "scale", 0, "font scale (default 5)")
	flags.IntVar(&speedFlag, "speed", 0, "moves drawn per frame in the window, 0 for instant drawing")
	flags.Float64Var(&advanceFlag, "advance", 0, "distance between glyphs, in font units (default: width of the 0 glyph)")
	flags.BoolVar(&debugFont, "debug-font", false, "render all the glyphs of the font")
	flags.StringVar(&backendFlag, "backend", "", "output backend: "+strings.Join(config.Backends, ", ")+` (default "png")`)
	flags.StringVarP(&outputFlag, "output", "o", "", "output file for the png and pdf backends (default hexturtle.<backend>)")
	flags.BoolVar(&strictFlag, "strict", false, "reject fonts using unsupported svg elements")
	flags.IntVar(&columnsFlag, "columns", 0, "glyphs per row with --debug-font (default 6)")
}

// loadConfig reads the config file, if any, and applies the flags
// explicitly set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("font") {
		cfg.Font = fontFlag
	}
	if flags.Changed("scale") {
		cfg.Scale = scaleFlag
	}
	if flags.Changed("speed") {
		cfg.Speed = speedFlag
	}
	if flags.Changed("advance") {
		cfg.Advance = advanceFlag
	}
	if flags.Changed("backend") {
		cfg.Backend = backendFlag
	}
	if flags.Changed("output") {
		cfg.Output = outputFlag
	}
	if flags.Changed("strict") {
		cfg.Strict = strictFlag
	}
	if flags.Changed("columns") {
		cfg.GalleryColumns = columnsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readNumber returns the first non blank line of `r`
func readNumber(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no number given")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	job := job{cfg: cfg, gallery: debugFont, out: cmd.OutOrStdout()}
	if verbose {
		job.logger = log.Default()
	}
	if !debugFont {
		if len(args) == 1 {
			job.number = args[0]
		} else if job.number, err = readNumber(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	return job.run()
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
