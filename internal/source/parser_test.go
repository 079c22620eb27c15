package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pythonTests = `import pytest

from calc import add


def helper():
    return 1


def test_add():
    assert add(1, 1) == 2

    assert add(2, 2) == 4


@pytest.mark.parametrize("a,b", [(1, 2), (3, 4)])
def test_add_params(a, b):
    assert add(a, b) == a + b


class TestCalc:
    @pytest.mark.slow
    def test_method(self):
        value = add(
            1,
            2,
        )
        assert value == 3

    def test_other(self):
        assert True


async def test_async():
    assert True


def test_long_signature(
    a=1,
    b=2,
):
    assert a < b


@pytest.mark.parametrize(
    "a,b",
    [(1, 2), (3, 4)],
)
def test_add_many(a, b):
    assert a < b


def test_doc():
    """Doc
second line at column zero
    """
    assert True
`

func writeTests(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_calc.py")
	require.NoError(t, os.WriteFile(path, []byte(pythonTests), 0644))
	return path
}

func TestParser_FindTestFunctions(t *testing.T) {
	parser := NewParser()
	path := writeTests(t)

	t.Run("finds test functions and methods", func(t *testing.T) {
		names, err := parser.FindTestFunctions(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"test_add", "test_add_many", "test_add_params", "test_async", "test_doc", "test_long_signature", "test_method", "test_other"}, names)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestFunctions("/non/existent/test_file.py")
		assert.Error(t, err)
	})
}

func TestParser_Extract(t *testing.T) {
	parser := NewParser()
	path := writeTests(t)

	tests := []struct {
		name     string
		function string
		expected string
	}{
		{
			name:     "blank lines inside body are kept, trailing ones dropped",
			function: "test_add",
			expected: "def test_add():\n    assert add(1, 1) == 2\n\n    assert add(2, 2) == 4\n",
		},
		{
			name:     "decorators included",
			function: "test_add_params",
			expected: "@pytest.mark.parametrize(\"a,b\", [(1, 2), (3, 4)])\ndef test_add_params(a, b):\n    assert add(a, b) == a + b\n",
		},
		{
			name:     "class method keeps its indentation",
			function: "test_method",
			expected: "    @pytest.mark.slow\n    def test_method(self):\n        value = add(\n            1,\n            2,\n        )\n        assert value == 3\n",
		},
		{
			name:     "async function",
			function: "test_async",
			expected: "async def test_async():\n    assert True\n",
		},
		{
			name:     "multi-line signature",
			function: "test_long_signature",
			expected: "def test_long_signature(\n    a=1,\n    b=2,\n):\n    assert a < b\n",
		},
		{
			name:     "multi-line decorator",
			function: "test_add_many",
			expected: "@pytest.mark.parametrize(\n    \"a,b\",\n    [(1, 2), (3, 4)],\n)\ndef test_add_many(a, b):\n    assert a < b\n",
		},
		{
			name:     "docstring line at column zero",
			function: "test_doc",
			expected: "def test_doc():\n    \"\"\"Doc\nsecond line at column zero\n    \"\"\"\n    assert True\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := parser.Extract(path, tt.function)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, src)
		})
	}
}

func TestParser_Extract_Errors(t *testing.T) {
	parser := NewParser()
	path := writeTests(t)

	t.Run("unknown function", func(t *testing.T) {
		_, err := parser.Extract(path, "test_missing")

		var notFound *ErrFunctionNotFound
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "test_missing", notFound.Function)
	})

	t.Run("prefix of another name does not match", func(t *testing.T) {
		_, err := parser.Extract(path, "test_ad")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.Extract("/non/existent/test_file.py", "test_add")
		assert.Error(t, err)
	})
}
