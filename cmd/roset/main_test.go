package main

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	report := "p.go:5:6: Animal must be an enum interface to derive EnumFrom\n" +
		"p.go:9:6: Dog must carry enum_from str"

	out := colorize(report)
	assert.Contains(t, out, "\x1b[31;1mp.go:5:6:\x1b[0m")
	assert.Contains(t, out, "\x1b[31;1mp.go:9:6:\x1b[0m")

	// Only the positions are highlighted, not the messages.
	assert.Contains(t, out, " Animal must be an enum interface")
}

func TestColorizeNoPosition(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	assert.Equal(t, "no packages found", colorize("no packages found"))
}

func TestRePos(t *testing.T) {
	assert.Equal(t, []string{"p.go:5:6:"}, rePos.FindAllString("p.go:5:6: boom", -1))
	assert.Nil(t, rePos.FindAllString("p.go:5: boom", -1))
	assert.Nil(t, rePos.FindAllString("not a position", -1))
}
