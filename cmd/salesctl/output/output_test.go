package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, []string{"Region", "Sales"}, [][]string{
		{"North", "$1,200"},
		{"South", "$0"},
	})

	out := buf.String()
	for _, want := range []string{"Region", "Sales", "North", "$1,200", "South", "$0"} {
		assert.Contains(t, out, want)
	}
}

func TestKeyValues(t *testing.T) {
	var buf bytes.Buffer
	KeyValues(&buf, [][2]string{
		{"Orders", "12"},
		{"Profit Margin", "23.3%"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Orders")
	assert.Contains(t, lines[1], "23.3%")
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	Success(&buf, "wrote %d", 3)
	Warning(&buf, "careful")
	Error(&buf, "failed: %s", "disk")

	out := buf.String()
	assert.Contains(t, out, "wrote 3")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "failed: disk")
}
