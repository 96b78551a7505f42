/*
Package parameters holds layout parameters which are inherited down the
node tree, e.g. the text direction.

Parameters live in registers. Entering a subtree opens a group, leaving it
closes the group again; values pushed within a group shadow the values of
enclosing groups and vanish with the group.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// LayoutParameter is a key for an inherited layout parameter.
type LayoutParameter int

const (
	none LayoutParameter = iota
	P_LANGUAGE
	P_TEXTDIRECTION
	P_SCALEFACTOR
	P_STOPPER
)

func (p LayoutParameter) String() string {
	switch p {
	case P_LANGUAGE:
		return "P_LANGUAGE"
	case P_TEXTDIRECTION:
		return "P_TEXTDIRECTION"
	case P_SCALEFACTOR:
		return "P_SCALEFACTOR"
	}
	return fmt.Sprintf("LayoutParameter(%d)", int(p))
}

// ParameterGroup holds the values pushed within one group level.
type ParameterGroup struct {
	params map[LayoutParameter]interface{}
	level  int
	next   *ParameterGroup
}

// Registers is a stack of parameter groups on top of a set of base values.
// Registers are not safe for concurrent use; a solver pass owns its registers.
type Registers struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewRegisters creates registers with default base values: English,
// left-to-right, scale factor 1.
func NewRegisters() *Registers {
	regs := &Registers{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = language.English
	p[P_TEXTDIRECTION] = bidi.LeftToRight
	p[P_SCALEFACTOR] = float32(1)
}

// Begingroup opens a new group level.
func (regs *Registers) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the current group level, dropping every value pushed
// within it.
func (regs *Registers) Endgroup() {
	if regs.grouplevel == 0 {
		return
	}
	if regs.groups != nil && regs.groups.level == regs.grouplevel {
		regs.groups = regs.groups.next
	}
	regs.grouplevel--
}

// Level returns the current group level, 0 being the base level.
func (regs *Registers) Level() int {
	return regs.grouplevel
}

// Push sets a parameter value for the current group level.
// At level 0 the base value is replaced.
func (regs *Registers) Push(key LayoutParameter, value interface{}) {
	checkKey(key)
	if regs.grouplevel == 0 {
		regs.base[key] = value
		return
	}
	g := regs.groups
	if g == nil || g.level < regs.grouplevel {
		g = &ParameterGroup{
			params: make(map[LayoutParameter]interface{}),
			level:  regs.grouplevel,
			next:   regs.groups,
		}
		regs.groups = g
	}
	g.params[key] = value
}

// Get returns the innermost value of a parameter.
func (regs *Registers) Get(key LayoutParameter) interface{} {
	checkKey(key)
	for g := regs.groups; g != nil; g = g.next {
		if value, ok := g.params[key]; ok {
			return value
		}
	}
	return regs.base[key]
}

func checkKey(key LayoutParameter) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of layout parameters")
	}
}

// Direction returns the current text direction.
func (regs *Registers) Direction() bidi.Direction {
	return regs.Get(P_TEXTDIRECTION).(bidi.Direction)
}

// Language returns the current language.
func (regs *Registers) Language() language.Tag {
	return regs.Get(P_LANGUAGE).(language.Tag)
}

// ScaleFactor returns the current UI scale factor.
func (regs *Registers) ScaleFactor() float32 {
	return regs.Get(P_SCALEFACTOR).(float32)
}

// --- Text direction by language --------------------------------------------

// Scripts written right-to-left (ISO 15924 codes).
var rtlScripts = map[string]bool{
	"Arab": true, "Hebr": true, "Syrc": true, "Thaa": true, "Nkoo": true,
	"Adlm": true, "Rohg": true, "Samr": true, "Mand": true,
}

// DirectionOf returns the writing direction of the (likely) script of a
// language.
func DirectionOf(tag language.Tag) bidi.Direction {
	script, _ := tag.Script()
	if rtlScripts[script.String()] {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}
