package tagparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		tag      string
		expected TagInfo
	}{
		{
			name:     "empty",
			tag:      "",
			expected: TagInfo{},
		},
		{
			name:     "ignored",
			tag:      "-",
			expected: TagInfo{Ignored: true},
		},
		{
			name: "bare flags",
			tag:  "required,uniqueItems",
			expected: TagInfo{Rules: []Rule{
				{Name: "required"},
				{Name: "uniqueItems"},
			}},
		},
		{
			name: "parameters",
			tag:  "minLength=1,pattern=^[a-z]+$",
			expected: TagInfo{Rules: []Rule{
				{Name: "minLength", Param: "1"},
				{Name: "pattern", Param: "^[a-z]+$"},
			}},
		},
		{
			name: "parameter containing equals",
			tag:  "pattern=^a=b$",
			expected: TagInfo{Rules: []Rule{
				{Name: "pattern", Param: "^a=b$"},
			}},
		},
		{
			name: "escaped comma in parameter",
			tag:  `pattern=^a\,b$,required`,
			expected: TagInfo{Rules: []Rule{
				{Name: "pattern", Param: "^a,b$"},
				{Name: "required"},
			}},
		},
		{
			name:     "ignore rule",
			tag:      "ignore",
			expected: TagInfo{Ignored: true},
		},
		{
			name: "ignore alongside other rules",
			tag:  "minLength=1,ignore",
			expected: TagInfo{Ignored: true, Rules: []Rule{
				{Name: "minLength", Param: "1"},
			}},
		},
		{
			name: "multi-valued parameter",
			tag:  "enum=red|green|blue",
			expected: TagInfo{Rules: []Rule{
				{Name: "enum", Param: "red|green|blue"},
			}},
		},
		{
			name: "whitespace tolerated",
			tag:  "minLength=1, required",
			expected: TagInfo{Rules: []Rule{
				{Name: "minLength", Param: "1"},
				{Name: "required"},
			}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.tag))
		})
	}
}

func TestValues(t *testing.T) {
	assert.Nil(t, Values(""))
	assert.Equal(t, []string{"one"}, Values("one"))
	assert.Equal(t, []string{"a", "b", "c"}, Values("a|b|c"))
}
