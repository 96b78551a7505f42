package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/flexui/core"
	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/frame"
	"github.com/npillmayer/flexui/engine/frame/framedebug"
	"github.com/npillmayer/flexui/engine/frame/layout"
	"github.com/npillmayer/flexui/engine/style/css"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"golang.org/x/text/language"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	root     *layout.Node
	current  *layout.Node
	viewport dimen.Vec2
	scale    float32
	lang     language.Tag
}

// NewIntp creates an interpreter for a tree of nodes.
func NewIntp(root *layout.Node, viewport dimen.Vec2) *Intp {
	return &Intp{
		root:     root,
		current:  root,
		viewport: viewport,
		scale:    1,
		lang:     language.English,
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Debugf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// execute interprets a single command line. It returns true if the user
// asked to quit.
func (intp *Intp) execute(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true, nil
	case "help":
		help()
	case "tree":
		intp.printTree()
	case "select", "sel":
		return false, intp.selectNode(arg)
	case "up":
		if p := intp.current.Parent(); p != nil {
			intp.current = p
		}
		intp.printNode()
	case "style":
		return false, intp.restyle(arg)
	case "show":
		intp.printNode()
	case "solve":
		return false, intp.resize(arg)
	case "scale":
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil || f <= 0 {
			return false, core.Error(core.EINVALID, "scale factor must be a positive number")
		}
		intp.scale = float32(f)
		return false, intp.solve()
	case "lang":
		tag, err := language.Parse(arg)
		if err != nil {
			return false, core.WrapError(err, core.EINVALID, "unknown language %q", arg)
		}
		intp.lang = tag
		return false, intp.solve()
	case "paint":
		intp.printPaintOrder()
	case "hit":
		return false, intp.hitTest(arg)
	case "dot":
		return false, intp.writeDot(arg)
	default:
		return false, core.Error(core.EUNSUPPORTED, "unknown command %q, try 'help'", cmd)
	}
	return false, nil
}

func help() {
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"command", "effect"},
		{"tree", "print the node tree with computed rectangles"},
		{"select <name>", "make a node the current node"},
		{"up", "select the parent of the current node"},
		{"show", "print style and output of the current node"},
		{"style <decls>", "apply CSS-like declarations to the current node, e.g. 'width: 50%'"},
		{"solve [w h]", "solve the layout, optionally for a new viewport size"},
		{"scale <f>", "set the UI scale factor and solve"},
		{"lang <tag>", "set the root language and solve"},
		{"paint", "print nodes in paint order"},
		{"hit <x> <y>", "find the topmost node at a point"},
		{"dot <file>", "write the node tree as a Graphviz DOT file"},
		{"quit", "leave the CLI"},
	}).Render()
}

func (intp *Intp) solve() error {
	solver := layout.NewFlexSolver(
		layout.WithScaleFactor(intp.scale),
		layout.WithLanguage(intp.lang),
	)
	if err := solver.Solve(intp.root, intp.viewport); err != nil {
		return err
	}
	tracer().Infof("solved layout for viewport %v", intp.viewport)
	return nil
}

func (intp *Intp) resize(arg string) error {
	if arg != "" {
		v, err := parseVec(arg)
		if err != nil {
			return err
		}
		intp.viewport = v
	}
	if err := intp.solve(); err != nil {
		return err
	}
	intp.printNode()
	return nil
}

func (intp *Intp) selectNode(name string) error {
	n := intp.root.Find(name)
	if n == nil {
		return core.Error(core.EMISSING, "no node named %q", name)
	}
	intp.current = n
	intp.printNode()
	return nil
}

func (intp *Intp) restyle(decls string) error {
	s, err := css.Apply(intp.current.Style(), decls)
	if err != nil {
		return err
	}
	intp.current.SetStyle(s)
	if err := intp.solve(); err != nil {
		return err
	}
	intp.printNode()
	return nil
}

func (intp *Intp) writeDot(path string) error {
	if path == "" {
		return core.Error(core.EMISSING, "usage: dot <file>")
	}
	f, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %q", path)
	}
	if err = framedebug.ToGraphViz(intp.root, f, tracer()); err != nil {
		f.Close()
		return core.WrapError(err, core.EINTERNAL, "cannot write %q", path)
	}
	if err = f.Close(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot close %q", path)
	}
	pterm.Success.Printfln("wrote %s", path)
	return nil
}

func (intp *Intp) hitTest(arg string) error {
	p, err := parseVec(arg)
	if err != nil {
		return err
	}
	for _, s := range frame.HitOrder(intp.root) {
		n := s.(*layout.Node)
		if !hits(n.Output(), p) {
			continue
		}
		pterm.Info.Printfln("%v at %v", n, p)
		intp.current = n
		return nil
	}
	pterm.Info.Printfln("no node at %v", p)
	return nil
}

// hits is true if p is inside the (clipped) border box of a node.
func hits(out frame.Output, p dimen.Vec2) bool {
	if !out.Rect().Contains(p) {
		return false
	}
	if clip, ok := out.Clip(); ok {
		return clip.Contains(p)
	}
	return true
}

func parseVec(arg string) (dimen.Vec2, error) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return dimen.Zero, core.Error(core.EINVALID, "expected two numbers, have %q", arg)
	}
	x, err1 := strconv.ParseFloat(fields[0], 32)
	y, err2 := strconv.ParseFloat(fields[1], 32)
	if err1 != nil || err2 != nil {
		return dimen.Zero, core.Error(core.EINVALID, "expected two numbers, have %q", arg)
	}
	return dimen.V(float32(x), float32(y)), nil
}

// --- Output ----------------------------------------------------------------

func (intp *Intp) printTree() {
	var list pterm.LeveledList
	intp.root.Walk(func(n *layout.Node, depth int) bool {
		text := fmt.Sprintf("%v  %v", n, n.Output())
		if n == intp.current {
			text = pterm.FgCyan.Sprint(text)
		}
		list = append(list, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	pterm.DefaultTree.WithRoot(putils.TreeFromLeveledList(list)).Render()
}

func (intp *Intp) printNode() {
	n := intp.current
	s := n.Style()
	out := n.Output()
	clip := "-"
	if r, ok := out.Clip(); ok {
		clip = r.String()
	}
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"node", n.String()},
		{"position", out.Position().String()},
		{"size", out.Size().String()},
		{"clip", clip},
		{"display", s.Display.String()},
		{"flex-direction", s.FlexDirection.String()},
		{"flex-wrap", s.FlexWrap.String()},
		{"justify-content", s.JustifyContent.String()},
		{"align-items", s.AlignItems.String()},
		{"size (style)", s.Size.String()},
		{"margin", s.Margin.String()},
		{"padding", s.Padding.String()},
		{"flex", fmt.Sprintf("%g %g %v", s.FlexGrow, s.FlexShrink, s.FlexBasis)},
	}).Render()
}

func (intp *Intp) printPaintOrder() {
	order := frame.PaintOrder(intp.root)
	data := pterm.TableData{{"#", "node", "z-index"}}
	for i, s := range order {
		n := s.(*layout.Node)
		data = append(data, []string{strconv.Itoa(i), n.String(), n.ZIndex().String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
