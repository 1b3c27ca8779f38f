package cli

import (
	"boardeditor/src"
	"boardeditor/src/base"
	"boardeditor/src/board"
	"boardeditor/src/render"
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type CLIProcessing struct {
	builder *src.EditorBuilder
	draw    DrawFunc
	in      io.Reader
	out     io.Writer
	cursor  int
	palette render.Palette
}

func NewCLI(b *src.EditorBuilder, draw DrawFunc) *CLIProcessing {
	return NewCLIWithIO(b, draw, os.Stdin, os.Stdout)
}

func NewCLIWithIO(b *src.EditorBuilder, draw DrawFunc, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{
		builder: b,
		draw:    draw,
		in:      in,
		out:     out,
		cursor:  board.NoTile,
		palette: render.LightPalette,
	}
}

func (c *CLIProcessing) SetPalette(p render.Palette) {
	c.palette = p
}

func (c *CLIProcessing) redraw() {
	c.draw(c.out, c.builder.Frame(), c.cursor)
	c.printStatus()
}

// Run uses raw key mode on a terminal and line mode otherwise.
// raw keys:
// - arrows move the cursor
// - space/enter press and release on the cursor tile
// - s start position, c clear, g grid labels, x remove piece
// - d followed by a piece letter (KQRBNP white, kqrbnp black) drops a piece
// - Ctrl+C or Ctrl+D to exit
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	out := c.out
	c.out = crlfWriter{w: out}
	defer func() { c.out = out }()

	r := bufio.NewReader(f)
	c.cursor = 0
	c.redraw()
	fmt.Fprint(c.out, "\nArrows move, space clicks, 's' start, 'c' clear, 'g' grid, 'x' remove, 'd'+letter drop, Ctrl+C quits.\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch b {
		case 3, 4: // Ctrl+C, Ctrl+D
			fmt.Fprintln(c.out, "\nBye")
			return nil
		case 0x1b: // CSI arrows
			b1, err := r.ReadByte()
			if err != nil || b1 != '[' {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			c.moveCursor(b2)
		case ' ', '\r', '\n':
			if err := c.builder.Click(c.cursor); err != nil {
				fmt.Fprintf(c.out, "click: %v\n", err)
			}
		case 's':
			c.builder.Reset()
		case 'c':
			c.builder.Clear()
		case 'g':
			c.builder.ToggleLabels()
		case 'x':
			c.builder.Remove(c.cursor)
		case 'd':
			l, err := r.ReadByte()
			if err != nil {
				continue
			}
			kind := base.ConvertPieceFromRune(rune(l))
			if kind == base.NoPiece || !c.builder.DropAt(kind.String(), c.cursor) {
				fmt.Fprintf(c.out, "cannot drop %q here\n", l)
				continue
			}
		default:
			continue
		}
		c.redraw()
	}
}

func (c *CLIProcessing) moveCursor(arrow byte) {
	row, col := base.ConvIndexToRowCol(c.cursor)
	switch arrow {
	case 'A':
		row--
	case 'B':
		row++
	case 'C':
		col++
	case 'D':
		col--
	default:
		return
	}
	if row < 0 || row >= base.Rows || col < 0 || col >= base.Cols {
		return
	}
	c.cursor = base.ConvRowColToIndex(row, col)
}

func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Type 'help' for commands, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			return nil
		}
		redraw, err := c.execute(strings.Fields(line))
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
			continue
		}
		if redraw {
			c.redraw()
		}
	}
	return scanner.Err()
}

// execute runs one line command and reports whether the board should be
// drawn again.
func (c *CLIProcessing) execute(args []string) (bool, error) {
	switch args[0] {
	case "help":
		fmt.Fprintln(c.out, helpText)
		return false, nil
	case "down", "move", "up":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: %s X Y", args[0])
		}
		p, err := parsePoint(args[1], args[2])
		if err != nil {
			return false, err
		}
		switch args[0] {
		case "down":
			c.builder.Down(p)
		case "move":
			c.builder.Move(p)
		default:
			c.builder.Up(p)
		}
		return true, nil
	case "click":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: click SQUARE")
		}
		i, err := parseSquare(args[1])
		if err != nil {
			return false, err
		}
		return true, c.builder.Click(i)
	case "drag":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: drag FROM TO")
		}
		from, err := parseSquare(args[1])
		if err != nil {
			return false, err
		}
		to, err := parseSquare(args[2])
		if err != nil {
			return false, err
		}
		return true, c.builder.Drag(from, to)
	case "drop":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: drop KIND SQUARE")
		}
		i, err := parseSquare(args[2])
		if err != nil {
			return false, err
		}
		if !c.builder.DropAt(args[1], i) {
			fmt.Fprintf(c.out, "drop %s on %s ignored\n", args[1], args[2])
			return false, nil
		}
		return true, nil
	case "remove":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: remove SQUARE")
		}
		i, err := parseSquare(args[1])
		if err != nil {
			return false, err
		}
		return c.builder.Remove(i), nil
	case "reset":
		c.builder.Reset()
		return true, nil
	case "clear":
		if !c.builder.Clear() {
			fmt.Fprintln(c.out, "board is already empty")
			return false, nil
		}
		return true, nil
	case "labels":
		c.builder.ToggleLabels()
		return true, nil
	case "layout":
		fmt.Fprintln(c.out, c.builder.Layout())
		return false, nil
	case "state":
		c.printStatus()
		return false, nil
	case "save":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: save FILE.png|FILE.svg")
		}
		if err := render.SaveFile(args[1], c.builder.Frame(), c.palette); err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "saved %s\n", args[1])
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *CLIProcessing) printStatus() {
	f := c.builder.Frame()
	fmt.Fprintf(c.out, "State: %v\n", f.State)
	if f.SelectedTile != board.NoTile {
		name, _ := base.AlgebraicFromIndex(f.SelectedTile)
		fmt.Fprintf(c.out, "Selected: %d (%s)\n", f.SelectedTile, name)
	}
	fmt.Fprintf(c.out, "Layout: %s\n", c.builder.Layout())
}

// parseSquare accepts a tile index ("27") or a square name ("d5").
func parseSquare(s string) (int, error) {
	if i, err := strconv.Atoi(s); err == nil {
		if !base.IsValidIndex(i) {
			return board.NoTile, fmt.Errorf("%w: %d", board.ErrTileIndex, i)
		}
		return i, nil
	}
	return base.IndexFromAlgebraic(strings.ToLower(s))
}

func parsePoint(xs, ys string) (base.Point, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return base.Point{}, fmt.Errorf("bad x %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return base.Point{}, fmt.Errorf("bad y %q", ys)
	}
	return base.Point{X: x, Y: y}, nil
}

// crlfWriter restores line starts while the terminal is raw.
type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(p []byte) (int, error) {
	if _, err := cw.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}

const helpText = `Commands:
  down X Y | move X Y | up X Y   pointer events in board units
  click SQ                       press and release on a tile (index or name, e.g. 12 or e7)
  drag FROM TO                   drag a piece between tiles
  drop KIND SQ                   place a new piece (w_king ... b_pawn)
  remove SQ                      delete the piece on a tile
  reset | clear | labels         editor commands
  layout | state                 print the placement string or state
  save FILE.png|FILE.svg         write a snapshot
  q                              quit`
