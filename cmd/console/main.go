// Command console runs Logo programs without a window: a script file,
// an interactive shell, or both. The finished canvas can be exported to
// a PNG.
package main

import (
	"bufio"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gologo/pkg/config"
	"gologo/pkg/logo"
	"gologo/pkg/turtle"
)

var (
	flagInteractive bool
	flagDebug       bool
	flagConfig      string
	flagOut         string
)

var rootCmd = &cobra.Command{
	Use:   "console [script]",
	Short: "Run Logo programs headless",
	Long: `Runs a Logo script and/or an interactive shell without opening a
window. Drawing happens on an in-memory canvas that can be written out
as a PNG with --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "start a shell after the script (default when no script is given)")
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "print tokens and parsed statements for each fragment")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the canvas to this PNG file on exit")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return err
		}
	}

	background, err := config.ParseColor(cfg.Canvas.Background)
	if err != nil {
		return err
	}
	penColor, err := config.ParseColor(cfg.Canvas.PenColor)
	if err != nil {
		return err
	}

	interp := logo.NewInterpreter()
	var t *turtle.Turtle
	t = turtle.New(turtle.Options{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Background: background,
		PenColor:   penColor,
		Output:     os.Stdout,
		OnExit: func() {
			saveCanvas(t)
			os.Exit(0)
		},
	})

	if len(args) == 1 {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		if !runFragment(interp, t, string(source)) {
			os.Exit(1)
		}
		if !flagInteractive {
			saveCanvas(t)
			return nil
		}
	}

	shell(interp, t, cfg.Repl.Prompt)
	saveCanvas(t)
	return nil
}

// runFragment pushes one source fragment through the pipeline and hands
// the instructions to the turtle. It reports whether the fragment ran
// without error.
func runFragment(interp *logo.Interpreter, t *turtle.Turtle, source string) bool {
	if flagDebug {
		dumpStages(source)
	}

	instructions, err := interp.Run(source)
	// Instructions produced before a runtime failure are still applied:
	// partial effects persist, matching the evaluator's own state.
	t.Execute(instructions)
	if err != nil {
		color.Red("Error: %v", err)
		return false
	}
	return true
}

// dumpStages prints the token list and statement list of a fragment.
// Presentation only; the fragment is then run through Interpreter.Run
// as usual.
func dumpStages(source string) {
	tokens, err := logo.Lex(source)
	if err != nil {
		return // the real run will report it
	}
	fmt.Println("tokens:")
	for _, tok := range tokens {
		fmt.Printf("  %s\n", tok)
	}

	program, err := logo.Parse(tokens)
	if err != nil {
		return
	}
	fmt.Println("statements:")
	for _, stmt := range program {
		fmt.Printf("  %s\n", stmt)
	}
}

// shell reads fragments line by line until EOF. Errors are reported and
// the shell keeps prompting; interpreter state carries across lines.
func shell(interp *logo.Interpreter, t *turtle.Turtle, prompt string) {
	promptColor := color.New(color.FgCyan)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		promptColor.Print(prompt)
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		runFragment(interp, t, line)
	}
}

func saveCanvas(t *turtle.Turtle) {
	if flagOut == "" {
		return
	}
	f, err := os.Create(flagOut)
	if err != nil {
		log.Printf("writing canvas: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, t.Canvas()); err != nil {
		log.Printf("encoding canvas: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
