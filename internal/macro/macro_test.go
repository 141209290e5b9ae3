package macro

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestResolve(t *testing.T) {
	r := New().Add("number", "0042")
	assert.Equal(t, "/site/page_0042.html", r.Resolve("/site/page_%(number).html"))
}

func TestResolveMultipleOccurrences(t *testing.T) {
	r := New().Add("number", "7")
	assert.Equal(t, "7/7", r.Resolve("%(number)/%(number)"))
}

func TestResolveUnknownMacroLeftVerbatim(t *testing.T) {
	r := New().Add("number", "1")
	assert.Equal(t, "/site/%(date)_1.html", r.Resolve("/site/%(date)_%(number).html"))
}

func TestResolveNoMacros(t *testing.T) {
	r := New()
	assert.Equal(t, "/site/page.html", r.Resolve("/site/page.html"))
}

func TestResolveUnterminatedMacro(t *testing.T) {
	r := New().Add("number", "1")
	assert.Equal(t, "/site/page_%(number", r.Resolve("/site/page_%(number"))
}

func TestAddReplacesValue(t *testing.T) {
	r := New().Add("number", "1").Add("number", "2")
	assert.Equal(t, "p2", r.Resolve("p%(number)"))
}
