package layout

import (
	"github.com/npillmayer/flexui/core"
	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/core/parameters"
	"github.com/npillmayer/flexui/engine/frame"
	"github.com/npillmayer/flexui/engine/style"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// Solver computes the outputs of a tree of nodes.
//
// Every pass overwrites the output of every node of the tree. Solvers keep no
// state between passes: solving an unchanged tree twice yields identical
// outputs.
type Solver interface {
	Solve(root *Node, viewport dimen.Vec2) error
}

// FlexSolver is a Solver for the flexbox model.
type FlexSolver struct {
	scale     float32
	lang      language.Tag
	direction bidi.Direction
	hasDir    bool
}

// Option configures a FlexSolver.
type Option func(*FlexSolver)

// WithScaleFactor sets the UI scale factor. Pixel lengths are multiplied by
// it, percentages and intrinsic sizes are not. Values <= 0 are ignored.
func WithScaleFactor(f float32) Option {
	return func(s *FlexSolver) {
		if f > 0 && dimen.IsFinite(f) {
			s.scale = f
		}
	}
}

// WithLanguage sets the language of the root node. Unless a root direction
// is set, the text direction of the root follows the script of the language.
func WithLanguage(tag language.Tag) Option {
	return func(s *FlexSolver) {
		s.lang = tag
	}
}

// WithRootDirection sets the text direction which nodes inherit at the root.
func WithRootDirection(dir bidi.Direction) Option {
	return func(s *FlexSolver) {
		s.direction = dir
		s.hasDir = true
	}
}

// NewFlexSolver creates a flexbox solver. Defaults are a scale factor of 1
// and English, left-to-right text.
func NewFlexSolver(opts ...Option) *FlexSolver {
	s := &FlexSolver{scale: 1, lang: language.English}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Solver = &FlexSolver{}

// Solve lays out the tree starting at root within a viewport.
func (s *FlexSolver) Solve(root *Node, viewport dimen.Vec2) error {
	if root == nil {
		return core.Error(core.EMISSING, "no root node to lay out")
	}
	if !dimen.IsFinite(viewport.X) || !dimen.IsFinite(viewport.Y) ||
		viewport.X < 0 || viewport.Y < 0 {
		return core.Error(core.EINVALID, "illegal viewport size %v", viewport)
	}
	if root.parent != nil {
		tracer().Infof("laying out subtree at %v as a root", root)
	}
	pass := &flexPass{regs: parameters.NewRegisters()}
	pass.regs.Push(parameters.P_LANGUAGE, s.lang)
	pass.regs.Push(parameters.P_SCALEFACTOR, s.scale)
	dir := parameters.DirectionOf(s.lang)
	if s.hasDir {
		dir = s.direction
	}
	pass.regs.Push(parameters.P_TEXTDIRECTION, dir)
	tracer().Debugf("solving layout for %v in viewport %v, scale=%g, dir=%v",
		root, viewport, s.scale, dir)
	//
	viewportRect := dimen.R(dimen.Zero, viewport)
	pass.layoutChildren(style.Default(), viewportRect, []*Node{root}, nil)
	tracer().Debugf("layout done, %d nodes placed", pass.count)
	return nil
}

// flexPass holds the state of a single solver pass.
type flexPass struct {
	regs  *parameters.Registers
	count int
}

func (p *flexPass) scale() float32 {
	return p.regs.ScaleFactor()
}

func (p *flexPass) rtl() bool {
	return p.regs.Direction() == bidi.RightToLeft
}

// finish sets the output of a node and lays out its children.
func (p *flexPass) finish(n *Node, border dimen.Rect, box frame.Box, clip *dimen.Rect) {
	preserve := false
	if in, ok := n.Intrinsic(); ok {
		preserve = in.PreserveAspectRatio
	}
	out := frame.MakeOutput(border.Min, border.Size(), preserve)
	if clip != nil {
		out = out.WithClip(*clip)
	}
	n.output = out
	n.dirty = false
	p.count++
	tracer().Debugf("%v → %v", n, out)
	//
	childClip := clip
	if n.style.Overflow == style.OverflowHidden {
		r := dimen.R(out.Position(), out.Size())
		if clip != nil {
			r = r.Intersect(*clip)
		}
		childClip = &r
	}
	p.regs.Begingroup()
	defer p.regs.Endgroup()
	switch n.style.Direction {
	case style.DirectionLeftToRight:
		p.regs.Push(parameters.P_TEXTDIRECTION, bidi.LeftToRight)
	case style.DirectionRightToLeft:
		p.regs.Push(parameters.P_TEXTDIRECTION, bidi.RightToLeft)
	}
	p.layoutChildren(n.style, box.ContentRect(out.Rect()), n.children, childClip)
}

// hide zeroes the output of a subtree with display 'none'.
func (p *flexPass) hide(n *Node) {
	n.Walk(func(node *Node, _ int) bool {
		node.output = frame.Output{}
		node.dirty = false
		return true
	})
}
