package logo

import "fmt"

// Command identifies one of the closed set of built-in turtle verbs.
// Commands are distinct from user procedures: a call name resolves
// against the command table first, then the procedure table.
type Command int

const (
	// movement
	Forward Command = iota
	Backward
	Left
	Right
	SetHeading
	SetXY
	Home

	// pen
	PenUp
	PenDown
	SetPenSize
	SetPenColor

	// canvas
	HideTurtle
	ShowTurtle
	ClearScreen // wipe the canvas and return the turtle home
	Clean       // wipe the canvas only
	Fill
	SetScreenColor
	SetFillColor

	// other
	Show
	Exit
)

var commandNames = [...]string{
	Forward:        "forward",
	Backward:       "backward",
	Left:           "left",
	Right:          "right",
	SetHeading:     "setheading",
	SetXY:          "setxy",
	Home:           "home",
	PenUp:          "penup",
	PenDown:        "pendown",
	SetPenSize:     "setpensize",
	SetPenColor:    "setpencolor",
	HideTurtle:     "hideturtle",
	ShowTurtle:     "showturtle",
	ClearScreen:    "clearscreen",
	Clean:          "clean",
	Fill:           "fill",
	SetScreenColor: "setscreencolor",
	SetFillColor:   "setfillcolor",
	Show:           "show",
	Exit:           "exit",
}

func (c Command) String() string {
	if int(c) >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// commands maps every canonical name and short alias to its Command.
var commands = map[string]Command{
	"forward": Forward, "fd": Forward,
	"backward": Backward, "bk": Backward,
	"left": Left, "lt": Left,
	"right": Right, "rt": Right,
	"setheading": SetHeading, "seth": SetHeading,
	"setxy": SetXY,
	"home":  Home,
	"penup": PenUp, "pu": PenUp,
	"pendown": PenDown, "pd": PenDown,
	"setpensize":  SetPenSize,
	"setpencolor": SetPenColor, "setpc": SetPenColor,
	"hideturtle": HideTurtle, "ht": HideTurtle,
	"showturtle": ShowTurtle, "st": ShowTurtle,
	"clearscreen": ClearScreen, "cs": ClearScreen,
	"clean": Clean,
	"fill":  Fill,
	"setscreencolor": SetScreenColor, "setsc": SetScreenColor,
	"setfillcolor": SetFillColor,
	"show":         Show,
	"exit":         Exit,
}

// LookupCommand resolves a call name against the built-in command table.
func LookupCommand(name string) (Command, bool) {
	c, ok := commands[name]
	return c, ok
}

// Arity returns the fixed number of numeric arguments the command takes.
func (c Command) Arity() int {
	switch c {
	case Forward, Backward, Left, Right, SetHeading, SetPenSize, Show:
		return 1
	case SetXY:
		return 2
	case SetPenColor, SetScreenColor, SetFillColor:
		return 3
	default:
		return 0
	}
}

// Instruction is the evaluator's output unit: one fully-resolved command
// plus its evaluated arguments, ready for external execution. The
// argument count always equals the command's arity.
type Instruction struct {
	Cmd  Command
	Args []int
}

func (in Instruction) String() string {
	s := in.Cmd.String()
	for _, a := range in.Args {
		s += fmt.Sprintf(" %d", a)
	}
	return s
}
