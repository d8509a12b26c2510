// Command desktop runs Logo with a live window: the shell reads from
// the terminal while the turtle draws in an ebiten window. A script
// argument is run before the shell starts.
package main

import (
	"bufio"
	"fmt"
	imagecolor "image/color"
	"log"
	"math"
	"os"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	"gologo/pkg/config"
	"gologo/pkg/logo"
	"gologo/pkg/turtle"
)

var (
	flagDebug  bool
	flagConfig string
)

// markerColor is the on-screen turtle triangle; it is overlay only and
// never touches the canvas.
var markerColor = imagecolor.RGBA{R: 0, G: 160, B: 0, A: 255}

// Game owns the render loop. Instruction batches arrive from the shell
// goroutine over a channel and are applied between frames, so the
// turtle is only ever touched from Update.
type Game struct {
	t         *turtle.Turtle
	canvasImg *ebiten.Image // reused, blitted from the turtle's pixels
	batches   <-chan []logo.Instruction
	quit      bool
}

func (g *Game) Update() error {
	for {
		select {
		case batch, ok := <-g.batches:
			if !ok {
				return ebiten.Termination
			}
			g.t.Execute(batch)
			if g.quit {
				return ebiten.Termination
			}
		default:
			return nil
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.t.Size()
	if g.canvasImg == nil {
		g.canvasImg = ebiten.NewImage(w, h)
	}
	g.canvasImg.WritePixels(g.t.Pixels())
	screen.DrawImage(g.canvasImg, nil)

	if g.t.Visible() {
		g.drawMarker(screen)
	}
	if flagDebug {
		x, y := g.t.Pos()
		msg := fmt.Sprintf("pos (%.0f, %.0f)  heading %.0f", x, y, g.t.Heading())
		ebitenutil.DebugPrintAt(screen, msg, 4, h-18)
	}
}

// drawMarker strokes a small triangle at the turtle's position, pointed
// along its heading.
func (g *Game) drawMarker(screen *ebiten.Image) {
	px, py := g.t.ScreenPos()
	cx, cy := float64(px), float64(py)
	rad := g.t.Heading() * math.Pi / 180

	const size = 8.0
	tip := point(cx, cy, rad, size)
	left := point(cx, cy, rad+2.5, size)
	right := point(cx, cy, rad-2.5, size)

	stroke := func(a, b [2]float64) {
		vector.StrokeLine(screen,
			float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]),
			1, markerColor, true)
	}
	stroke(tip, left)
	stroke(left, right)
	stroke(right, tip)
}

// point offsets (cx, cy) by dist in the direction rad (0 = up,
// clockwise), in screen coordinates.
func point(cx, cy, rad, dist float64) [2]float64 {
	return [2]float64{cx + dist*math.Sin(rad), cy - dist*math.Cos(rad)}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.t.Size()
}

var rootCmd = &cobra.Command{
	Use:   "desktop [script]",
	Short: "Run Logo with a turtle window",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "print tokens/statements and show a HUD")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "TOML config file")
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

	batches := make(chan []logo.Instruction, 16)
	game := &Game{batches: batches}

	game.t = turtle.New(turtle.Options{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Background: background,
		PenColor:   penColor,
		Output:     os.Stdout,
		// The exit instruction runs inside Update via Execute; flag the
		// game loop down instead of killing the process.
		OnExit: func() { game.quit = true },
	})

	var script string
	if len(args) == 1 {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		script = string(source)
	}

	go shell(logo.NewInterpreter(), script, cfg.Repl.Prompt, batches)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(game)
}

// shell runs the interpreter on its own goroutine, sending each
// fragment's instruction batch to the game loop. Closing the channel
// shuts the window down.
func shell(interp *logo.Interpreter, script, prompt string, batches chan<- []logo.Instruction) {
	defer close(batches)

	if script != "" {
		runFragment(interp, script, batches)
	}

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
		runFragment(interp, line, batches)
	}
}

func runFragment(interp *logo.Interpreter, source string, batches chan<- []logo.Instruction) {
	if flagDebug {
		dumpStages(source)
	}
	instructions, err := interp.Run(source)
	// Partial output before a runtime failure is still drawn, matching
	// the evaluator's persistent state.
	if len(instructions) > 0 {
		batches <- instructions
	}
	if err != nil {
		color.Red("Error: %v", err)
	}
}

// dumpStages prints the token and statement lists of a fragment.
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

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
