package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		path     string
		testName string
		function string
		params   string
		segments int
	}{
		{
			name:     "plain function",
			id:       "tests/test_math.py::test_add",
			path:     "tests/test_math.py",
			testName: "test_add",
			function: "test_add",
			segments: 2,
		},
		{
			name:     "class method",
			id:       "tests/test_math.py::TestAdd::test_add",
			path:     "tests/test_math.py",
			testName: "test_add",
			function: "test_add",
			segments: 3,
		},
		{
			name:     "parametrized",
			id:       "tests/test_math.py::test_add[1-2]",
			path:     "tests/test_math.py",
			testName: "test_add[1-2]",
			function: "test_add",
			params:   "1-2",
			segments: 2,
		},
		{
			name:     "separator inside params",
			id:       "tests/test_ns.py::TestNs::test_lookup[a::b]",
			path:     "tests/test_ns.py",
			testName: "test_lookup[a::b]",
			function: "test_lookup",
			params:   "a::b",
			segments: 3,
		},
		{
			name:     "unmatched bracket in path",
			id:       "tests/a[b/test_x.py::test_y",
			path:     "tests/a[b/test_x.py",
			testName: "test_y",
			function: "test_y",
			segments: 2,
		},
		{
			name:     "no separator",
			id:       "test_only.py",
			path:     "test_only.py",
			testName: "test_only.py",
			function: "test_only.py",
			segments: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := Parse(tt.id)
			assert.Equal(t, tt.path, id.Path())
			assert.Equal(t, tt.testName, id.Name())
			assert.Equal(t, tt.function, id.Function())
			assert.Equal(t, tt.params, id.Params())
			assert.Len(t, id.Segments, tt.segments)
		})
	}
}

func TestParse_PathIsFirstNameIsLast(t *testing.T) {
	id := Parse("a/b.py::C::D::e")

	assert.Equal(t, "a/b.py", id.Path())
	assert.Equal(t, "e", id.Name())
	assert.Equal(t, "b.py", id.File())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "test_x.py::test_case", DisplayName("project/tests/test_x.py::test_case"))
	assert.Equal(t, "test_x.py::test_case", DisplayName("test_x.py::test_case"))
	assert.Equal(t, "test_x.py::test_case", Parse("tests/test_x.py::test_case").DisplayName())
}

func TestStripParams(t *testing.T) {
	assert.Equal(t, "test_add", StripParams("test_add[1-2]"))
	assert.Equal(t, "test_add", StripParams("test_add"))
	assert.Equal(t, "test_add[", StripParams("test_add["))
}
