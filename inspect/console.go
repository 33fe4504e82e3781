package inspect

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/btindex/btree"
	"golang.org/x/term"
)

// DefaultLineWidth is used if output does not go to a terminal.
const DefaultLineWidth = 65

// Options controls console output.
type Options struct {
	LineWidth int            // lines are wrapped beyond this many characters
	Palette   []*color.Color // level colors, used round robin
}

// OptionsFromTerminal checks whether stdout is a terminal, and if so it reads
// the terminal's width and sets LineWidth accordingly.
func OptionsFromTerminal() *Options {
	opts := &Options{LineWidth: DefaultLineWidth}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			switch {
			case w > 65:
				opts.LineWidth = w - 10
			case w > 30:
				opts.LineWidth = w - 5
			case w > 10:
				opts.LineWidth = w
			default:
				opts.LineWidth = 10
			}
		}
	}
	tracer().Infof("inspect: setting line width to %d", opts.LineWidth)
	return opts
}

func defaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgMagenta),
	}
}

// Console writes one line per tree level to w, starting with the root. Keys
// are grouped per node in brackets, and every level is printed in a color of
// its own. opts may be nil.
func Console[V any](w io.Writer, tree *btree.Tree[V], opts *Options) error {
	if tree == nil {
		return ErrNilTree
	}
	if opts == nil {
		opts = &Options{}
	}
	width := opts.LineWidth
	if width <= 0 {
		width = DefaultLineWidth
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = defaultPalette()
	}
	levels := make([][]string, tree.Height())
	tree.WalkNodes(func(node btree.NodeInfo) bool {
		levels[node.Depth] = append(levels[node.Depth], nodeLabel(node.Keys))
		return true
	})
	var sb strings.Builder
	for depth, nodes := range levels {
		c := palette[depth%len(palette)]
		prefix := fmt.Sprintf("L%d:", depth)
		indent := strings.Repeat(" ", len(prefix))
		sb.WriteString(prefix)
		col := len(prefix)
		for _, label := range nodes {
			if col+1+len(label) > width && col > len(prefix) {
				sb.WriteString("\n")
				sb.WriteString(indent)
				col = len(indent)
			}
			sb.WriteString(" ")
			sb.WriteString(c.Sprint(label))
			col += 1 + len(label)
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func nodeLabel(keys []int64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(k, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
