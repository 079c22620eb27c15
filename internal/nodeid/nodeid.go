// Package nodeid parses pytest node ids such as
// "tests/test_math.py::TestAdd::test_add[1-2]".
package nodeid

import (
	"path"
	"strings"
)

// Separator splits the file path from the class and function parts of a node id.
const Separator = "::"

// NodeID is a parsed pytest node id.
type NodeID struct {
	Raw      string
	Segments []string
}

// Parse splits id on "::". Separators inside a parametrization suffix
// ("test_x[a::b]") do not split. Brackets in the file path are ordinary
// characters.
func Parse(id string) NodeID {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(id); i++ {
		switch id[i] {
		case '[':
			if len(segments) > 0 {
				depth++
			}
		case ']':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 && strings.HasPrefix(id[i:], Separator) {
				segments = append(segments, id[start:i])
				i++
				start = i + 1
			}
		}
	}
	segments = append(segments, id[start:])
	return NodeID{Raw: id, Segments: segments}
}

// Path is the first segment: the test file relative to the report root.
func (n NodeID) Path() string {
	return n.Segments[0]
}

// Name is the last segment, including any parametrization suffix.
func (n NodeID) Name() string {
	return n.Segments[len(n.Segments)-1]
}

// Function is Name without the parametrization suffix.
func (n NodeID) Function() string {
	return StripParams(n.Name())
}

// Params returns the text between the brackets of a parametrized name, or "".
func (n NodeID) Params() string {
	name := n.Name()
	i := strings.IndexByte(name, '[')
	if i < 0 || !strings.HasSuffix(name, "]") {
		return ""
	}
	return name[i+1 : len(name)-1]
}

// DisplayName is the node id with everything up to the last "/" removed.
func (n NodeID) DisplayName() string {
	return DisplayName(n.Raw)
}

// StripParams removes a trailing "[...]" from a test name.
func StripParams(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 && strings.HasSuffix(name, "]") {
		return name[:i]
	}
	return name
}

// DisplayName returns the text after the final "/" of id, or id itself when
// it has none.
func DisplayName(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		return id[i+1:]
	}
	return id
}

// File returns the base name of the file segment.
func (n NodeID) File() string {
	return path.Base(n.Path())
}
