package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	err := Error(EINVALID, "cannot parse %q", "12qx")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, `cannot parse "12qx"`, UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
}

func TestWrapError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "flexui.core")
	defer teardown()
	//
	base := errors.New("base")
	err := WrapError(base, EUNSUPPORTED, "property %s", "grid-area")
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, EUNSUPPORTED, Code(err))
	err = ErrorWithCode(nil, EMISSING)
	assert.Equal(t, "not found", UserMessage(err))
	//
	var b bytes.Buffer
	ReportError(&b, WrapError(base, EINVALID, "bad value"))
	assert.Equal(t, "[123] bad value\n", b.String())
}
