package listlit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single quoted", "['Swimming']", []string{"Swimming"}},
		{"mixed quotes", `['Men\'s 100m', "Women's 4 x 100m"]`, []string{"Men's 100m", "Women's 4 x 100m"}},
		{"double quoted first", `["Men's 100m", 'Women\'s 4 x 100m']`, []string{"Men's 100m", "Women's 4 x 100m"}},
		{"empty list", "[]", []string{}},
		{"surrounding space", "  [ 'a' ,'b' ]  ", []string{"a", "b"}},
		{"trailing comma", "['a', ]", []string{"a"}},
		{"codes", "['1532872', '1535500']", []string{"1532872", "1535500"}},
		{"non ascii", "['Équitation']", []string{"Équitation"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"Swimming",
		"[Swimming]",
		"['a'",
		"['a' 'b']",
		"['unterminated]",
		"['a'] extra",
		"[1, 2]",
		"['Men''s 100m']",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			var syntaxErr *SyntaxError
			assert.ErrorAs(t, err, &syntaxErr)
		})
	}
}

func TestParseLenient(t *testing.T) {
	assert.Equal(t, []string{"Athletics", "Swimming"}, ParseLenient("['Athletics', 'Swimming']"))
	assert.Equal(t, []string{"Swimming"}, ParseLenient("[Swimming]"))
	assert.Equal(t, []string{"Road Cycling"}, ParseLenient("Road Cycling"))
	assert.Equal(t, []string{""}, ParseLenient(""))
}
