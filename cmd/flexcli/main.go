/*
Command flexcli is an interactive inspector for flexbox layouts.

It builds a demo scene, lets the user restyle nodes with CSS-like
declarations, solves the layout and prints the resulting geometry.

	flexcli -width 1000 -height 700 -lang ar

Commands are entered at the prompt; type 'help' for a list.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/flexui/core/dimen"
	"github.com/npillmayer/flexui/engine/frame/layout"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// tracer traces with key 'flexui.cli'
func tracer() tracing.Trace {
	return tracing.Select("flexui.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.flexui.cli":    "Info",
		"trace.flexui.layout": "Error",
		"trace.flexui.frame":  "Error",
		"trace.flexui.style":  "Error",
		"trace.flexui.core":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	width := flag.Float64("width", 1000, "Viewport width")
	height := flag.Float64("height", 700, "Viewport height")
	scale := flag.Float64("scale", 1, "UI scale factor")
	lang := flag.String("lang", "en", "Language of the root node")
	flag.Parse()
	setTraceLevel(tracer(), *tlevel)
	pterm.Info.Println("Welcome to the flexbox layout CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	tag, err := language.Parse(*lang)
	if err != nil {
		tracer().Errorf("illegal language %q: %v", *lang, err)
		os.Exit(2)
	}
	intp := NewIntp(layout.DemoScene(), dimen.V(float32(*width), float32(*height)))
	intp.scale = float32(*scale)
	intp.lang = tag
	//
	// set up REPL
	repl, err := readline.New("flex > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	if err := intp.solve(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                               // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(t tracing.Trace, l string) {
	switch l {
	case "Debug":
		t.SetTraceLevel(tracing.LevelDebug)
	case "Error":
		t.SetTraceLevel(tracing.LevelError)
	default:
		t.SetTraceLevel(tracing.LevelInfo)
	}
}
