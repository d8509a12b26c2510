// Package turtle executes instruction streams from the language core
// against an in-memory RGBA canvas. It owns turtle state (position,
// heading, pen) and rasterisation, but no window: frontends blit the
// canvas however they like.
package turtle

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"gologo/pkg/logo"
)

// Options configures a new Turtle. Zero values fall back to defaults.
type Options struct {
	Width, Height int         // canvas size in pixels
	Background    color.RGBA  // initial canvas color
	PenColor      color.RGBA  // initial pen color
	Output        io.Writer   // destination for the show command; default os.Stdout
	OnExit        func()      // called on the exit instruction; default os.Exit(0)
}

// Turtle is a classic turtle-graphics state machine over a pixel canvas.
// Logo coordinates are center-origin with y growing upward; heading 0
// points up and turns clockwise.
type Turtle struct {
	canvas        *image.RGBA
	width, height int

	x, y    float64
	heading float64 // degrees

	penDown   bool
	penSize   int
	penColor  color.RGBA
	fillColor color.RGBA
	bgColor   color.RGBA

	visible bool
	out     io.Writer
	onExit  func()
}

// New returns a Turtle at home on a freshly painted canvas.
func New(opts Options) *Turtle {
	if opts.Width <= 0 {
		opts.Width = 512
	}
	if opts.Height <= 0 {
		opts.Height = 512
	}
	if opts.Background == (color.RGBA{}) {
		opts.Background = color.RGBA{255, 255, 255, 255}
	}
	if opts.PenColor == (color.RGBA{}) {
		opts.PenColor = color.RGBA{0, 0, 0, 255}
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.OnExit == nil {
		opts.OnExit = func() { os.Exit(0) }
	}

	t := &Turtle{
		canvas:    image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		width:     opts.Width,
		height:    opts.Height,
		penDown:   true,
		penSize:   1,
		penColor:  opts.PenColor,
		fillColor: opts.PenColor,
		bgColor:   opts.Background,
		visible:   true,
		out:       opts.Output,
		onExit:    opts.OnExit,
	}
	t.clearCanvas()
	return t
}

// Execute applies instructions in order. The producing evaluator
// guarantees command tags and arities; the renderer does not re-validate
// them, per the instruction stream contract.
func (t *Turtle) Execute(instructions []logo.Instruction) {
	for _, in := range instructions {
		t.apply(in)
	}
}

func (t *Turtle) apply(in logo.Instruction) {
	args := in.Args
	switch in.Cmd {
	case logo.Forward:
		t.move(float64(args[0]))
	case logo.Backward:
		t.move(-float64(args[0]))
	case logo.Left:
		t.heading = normalizeDegrees(t.heading - float64(args[0]))
	case logo.Right:
		t.heading = normalizeDegrees(t.heading + float64(args[0]))
	case logo.SetHeading:
		t.heading = normalizeDegrees(float64(args[0]))
	case logo.SetXY:
		t.goTo(float64(args[0]), float64(args[1]))
	case logo.Home:
		t.home()
	case logo.PenUp:
		t.penDown = false
	case logo.PenDown:
		t.penDown = true
	case logo.SetPenSize:
		if args[0] > 0 {
			t.penSize = args[0]
		}
	case logo.SetPenColor:
		t.penColor = rgb(args[0], args[1], args[2])
	case logo.HideTurtle:
		t.visible = false
	case logo.ShowTurtle:
		t.visible = true
	case logo.ClearScreen:
		t.clearCanvas()
		t.home()
	case logo.Clean:
		t.clearCanvas()
	case logo.Fill:
		t.floodFill()
	case logo.SetScreenColor:
		t.bgColor = rgb(args[0], args[1], args[2])
		t.clearCanvas()
	case logo.SetFillColor:
		t.fillColor = rgb(args[0], args[1], args[2])
	case logo.Show:
		fmt.Fprintln(t.out, args[0])
	case logo.Exit:
		t.onExit()
	}
}

// Pos returns the turtle's position in Logo coordinates.
func (t *Turtle) Pos() (x, y float64) { return t.x, t.y }

// Heading returns the heading in degrees, 0 = up, clockwise, [0, 360).
func (t *Turtle) Heading() float64 { return t.heading }

// Visible reports whether the turtle marker should be drawn.
func (t *Turtle) Visible() bool { return t.visible }

// IsPenDown reports whether movement currently draws.
func (t *Turtle) IsPenDown() bool { return t.penDown }

// Canvas exposes the backing image for frontends and PNG export.
func (t *Turtle) Canvas() *image.RGBA { return t.canvas }

// Pixels returns the raw RGBA bytes, ready for ebiten's WritePixels.
func (t *Turtle) Pixels() []byte { return t.canvas.Pix }

// Size returns the canvas dimensions in pixels.
func (t *Turtle) Size() (w, h int) { return t.width, t.height }

// ScreenPos returns the turtle's position in pixel coordinates.
func (t *Turtle) ScreenPos() (px, py int) {
	px, py = t.toScreen(t.x, t.y)
	return px, py
}

func (t *Turtle) home() {
	t.x, t.y = 0, 0
	t.heading = 0
}

// move advances the turtle dist units along its heading, drawing when
// the pen is down. Negative dist moves backward.
func (t *Turtle) move(dist float64) {
	rad := t.heading * math.Pi / 180
	nx := t.x + dist*math.Sin(rad)
	ny := t.y + dist*math.Cos(rad)
	t.goTo(nx, ny)
}

func (t *Turtle) goTo(nx, ny float64) {
	if t.penDown {
		x0, y0 := t.toScreen(t.x, t.y)
		x1, y1 := t.toScreen(nx, ny)
		t.strokeLine(x0, y0, x1, y1)
	}
	t.x, t.y = nx, ny
}

// toScreen maps center-origin Logo coordinates to pixel coordinates.
func (t *Turtle) toScreen(x, y float64) (int, int) {
	return int(math.Round(float64(t.width)/2 + x)),
		int(math.Round(float64(t.height)/2 - y))
}

func (t *Turtle) clearCanvas() {
	for i := 0; i < len(t.canvas.Pix); i += 4 {
		t.canvas.Pix[i] = t.bgColor.R
		t.canvas.Pix[i+1] = t.bgColor.G
		t.canvas.Pix[i+2] = t.bgColor.B
		t.canvas.Pix[i+3] = 255
	}
}

// strokeLine rasterises a pen stroke between two pixel positions,
// stamping a penSize square at each step.
func (t *Turtle) strokeLine(x0, y0, x1, y1 int) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		t.stamp(x0, y0)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		t.stamp(x, y)
	}
}

// stamp paints a penSize square centered on (x, y), clipped to the
// canvas.
func (t *Turtle) stamp(x, y int) {
	half := t.penSize / 2
	for py := y - half; py <= y+half; py++ {
		for px := x - half; px <= x+half; px++ {
			if px >= 0 && px < t.width && py >= 0 && py < t.height {
				t.canvas.SetRGBA(px, py, t.penColor)
			}
		}
	}
}

// floodFill repaints the connected same-colored region under the turtle
// with the fill color.
func (t *Turtle) floodFill() {
	sx, sy := t.toScreen(t.x, t.y)
	if sx < 0 || sx >= t.width || sy < 0 || sy >= t.height {
		return
	}
	target := t.canvas.RGBAAt(sx, sy)
	if target == t.fillColor {
		return
	}

	queue := []image.Point{{X: sx, Y: sy}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.X < 0 || p.X >= t.width || p.Y < 0 || p.Y >= t.height {
			continue
		}
		if t.canvas.RGBAAt(p.X, p.Y) != target {
			continue
		}
		t.canvas.SetRGBA(p.X, p.Y, t.fillColor)
		queue = append(queue,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}
}

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{clampByte(r), clampByte(g), clampByte(b), 255}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
