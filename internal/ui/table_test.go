package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRenderPadsAndTruncates(t *testing.T) {
	tbl := NewTable([]Column{
		{Title: "Key", Width: 10},
		{Title: "Chain ID", Width: 8},
	})
	tbl.AddRow(Row{"ethereum", "1"})
	tbl.AddRow(Row{"averyverylongnetworkkey", "42161"})

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header + divider + two data rows
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Key")
	assert.Contains(t, lines[2], "ethereum")

	// Overlong cells are cut to the column width.
	assert.Contains(t, lines[3], "averyveryl")
	assert.NotContains(t, lines[3], "averyverylo")
}

func TestTableRenderShortRow(t *testing.T) {
	tbl := NewTable([]Column{{Title: "A", Width: 4}, {Title: "B", Width: 4}})
	tbl.AddRow(Row{"x"}) // missing second cell

	assert.NotPanics(t, func() { tbl.Render() })
}

func TestKeyValueBlock(t *testing.T) {
	out := KeyValueBlock("Transaction Details", [][2]string{
		{"Hash", "0xabc"},
		{"Status", "confirmed"},
	})

	assert.Contains(t, out, "Transaction Details")
	assert.Contains(t, out, "Hash:")
	assert.Contains(t, out, "confirmed")
}
