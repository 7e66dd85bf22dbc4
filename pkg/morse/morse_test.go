package morse

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	cases := map[Symbols]string{
		".":      "E",
		"-":      "T",
		".-":     "A",
		"...-.-": "<SK>",
		".-...":  "<AS>",
		"----":   "CH",
		"---.":   "Ö",
		"-----":  "0",
		"..--..": "?",
	}
	for symbols, expected := range cases {
		t.Run(string(symbols), func(t *testing.T) {
			actual, ok := Decode(symbols)
			assert.True(t, ok)
			assert.Equal(t, expected, actual)
		})
	}
}

func TestDecode_exactMatchOnly(t *testing.T) {
	for _, symbols := range []Symbols{"......", "", ".-.-..", "x", ".- "} {
		t.Run(string(symbols), func(t *testing.T) {
			_, ok := Decode(symbols)
			assert.False(t, ok)
		})
	}
}

func TestTable_isConsistent(t *testing.T) {
	seen := map[string]Symbols{}
	for symbols, v := range table {
		assert.Empty(t, strings.Trim(string(symbols), ".-"), "%q", symbols)
		assert.LessOrEqual(t, len(symbols), 6, "%q", symbols)
		assert.NotEmpty(t, symbols)
		if other, ok := seen[v]; ok {
			t.Errorf("%q is decoded from %q and %q", v, symbols, other)
		}
		seen[v] = symbols
	}
	assert.Len(t, table, 51)
}

func TestSymbols_Append(t *testing.T) {
	var instance Symbols

	assert.True(t, instance.IsZero())
	instance = instance.Append(Dit).Append(Dah)

	assert.Equal(t, Symbols(".-"), instance)
	assert.False(t, instance.IsZero())
}
