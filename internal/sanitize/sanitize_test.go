package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "FBB325", "FBB325"},
		{"trim", "  FBB325\t", "FBB325"},
		{"nbsp to space then trim", " FBB325 ", "FBB325"},
		{"narrow nbsp", "FDT325FAT22 FBB325", "FDT325FAT22 FBB325"},
		{"straight quotes", `"FBB325"`, "FBB325"},
		{"curly quotes", "“FBB325”", "FBB325"},
		{"ltr rtl marks", "‎FBB325‏", "FBB325"},
		{"arabic letter mark", "؜FBB325", "FBB325"},
		{"isolates", "⁦FBB325⁩", "FBB325"},
		{"embedded override", "‪FBB‮325‬", "FBB325"},
		{"zero width and bom", "\ufeffFBB\u200b325", "FBB325"},
		{"carriage return", "FBB325\r", "FBB325"},
		{"empty", "   ", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Line(c.in))
		})
	}
}

func TestLines(t *testing.T) {
	got := Lines("a\r\n \nb")
	assert.Equal(t, []string{"a", "", "b"}, got)
}

func TestFields(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a b\tc", []string{"a", "b", "c"}},
		{"a   b", []string{"a", "b"}},
		{"a ‎b", []string{"a", "b"}}, // mark inside a token is stripped again
		{"", []string{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Fields(c.in), "input %q", c.in)
	}
}
