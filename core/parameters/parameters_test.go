package parameters

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

func TestRegisterGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	regs := NewRegisters()
	assert.Equal(t, bidi.LeftToRight, regs.Direction())
	regs.Begingroup()
	regs.Push(P_TEXTDIRECTION, bidi.RightToLeft)
	assert.Equal(t, bidi.RightToLeft, regs.Direction())
	regs.Begingroup() // nothing pushed here
	assert.Equal(t, bidi.RightToLeft, regs.Direction())
	regs.Endgroup()
	assert.Equal(t, 1, regs.Level())
	regs.Endgroup()
	assert.Equal(t, 0, regs.Level())
	assert.Equal(t, bidi.LeftToRight, regs.Direction())
}

func TestRegisterBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	regs := NewRegisters()
	regs.Push(P_SCALEFACTOR, float32(2))
	regs.Endgroup() // no-op at base level
	assert.Equal(t, float32(2), regs.ScaleFactor())
	assert.Equal(t, language.English, regs.Language())
	assert.Panics(t, func() { regs.Get(P_STOPPER) })
}

func TestDirectionOfLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	assert.Equal(t, bidi.RightToLeft, DirectionOf(language.Arabic))
	assert.Equal(t, bidi.RightToLeft, DirectionOf(language.Hebrew))
	assert.Equal(t, bidi.LeftToRight, DirectionOf(language.German))
	assert.Equal(t, bidi.LeftToRight, DirectionOf(language.Japanese))
}
