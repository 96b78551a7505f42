/*
Package framedebug writes layout trees as Graphviz DOT files, for debugging.

	f, _ := os.Create("layout.dot")
	err := framedebug.ToGraphViz(root, f, nil)

Every node shows its name and computed rectangle. Nodes with display 'none'
are drawn dashed, clipped nodes with a double border.
*/
package framedebug

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/flexui/engine/frame/layout"
	"github.com/npillmayer/flexui/engine/style"
	"github.com/npillmayer/schuko/tracing"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxNodes guards against runaway output for very large trees.
const maxNodes = 4096

// ToGraphViz creates a graphical representation of a layout tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
// If tracer is nil, tracing goes to 'flexui.frame'.
func ToGraphViz(root *layout.Node, w io.Writer, tracer tracing.Trace) error {
	if tracer == nil {
		tracer = tracing.Select("flexui.frame")
	}
	header, err := template.New("layoutTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"label": label,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*layout.Node]string, 256)
	if err = nodes(root, w, dict, &gparams, tracer); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(n *layout.Node, w io.Writer, dict map[*layout.Node]string, gparams *graphParamsType,
	tracer tracing.Trace) error {
	//
	gparams.cnt++
	if gparams.cnt > maxNodes {
		tracer.Infof("layout tree too large for drawing, truncated")
		return nil
	}
	if err := box(n, w, dict, gparams); err != nil {
		return err
	}
	tracer.Debugf("node = %v", n)
	for _, child := range n.Children() {
		if err := nodes(child, w, dict, gparams, tracer); err != nil {
			return err
		}
		if err := edge(n, child, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

// Helper structs
type cbox struct {
	N      *layout.Node
	Name   string
	Fill   string
	Border string
}

type cedge struct {
	N1, N2 string
}

func box(n *layout.Node, w io.Writer, dict map[*layout.Node]string, gparams *graphParamsType) error {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	b := &cbox{N: n, Name: name, Fill: "fillcolor=lightblue3"}
	if n.Style().Display == style.DisplayNone {
		b.Fill = "fillcolor=grey90"
		b.Border = "style=\"filled,dashed\""
	} else if _, clipped := n.Output().Clip(); clipped {
		b.Border = "peripheries=2"
	}
	if _, ok := n.Intrinsic(); ok {
		b.Fill = "fillcolor=grey95 fontname=\"Courier\""
	}
	return gparams.BoxTmpl.Execute(w, b)
}

func edge(n1, n2 *layout.Node, w io.Writer, dict map[*layout.Node]string, gparams *graphParamsType) error {
	return gparams.EdgeTmpl.Execute(w, cedge{dict[n1], dict[n2]})
}

// ---------------------------------------------------------------------------

func label(n *layout.Node) string {
	if n == nil {
		return "\"<empty node>\""
	}
	out := n.Output()
	return fmt.Sprintf("%q", fmt.Sprintf("%v\n%v", n, out.Rect()))
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ .Name }}	[ label={{ label .N }} shape=box style=filled {{ .Fill }} {{ .Border }} ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
