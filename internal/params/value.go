package params

import "strconv"

// CLIValuer is satisfied by values that can render themselves as a single
// CLI argument fragment, such as a video filter chain.
type CLIValuer interface {
	FFmpegCLIValue() (string, error)
}

// Kind discriminates the variants a parameter value can take.
type Kind int

// Value kinds
const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindString
	KindRenderer
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindRenderer:
		return "renderer"
	default:
		return "invalid"
	}
}

// Value is a closed tagged union over the types a parameter may hold:
// booleans for flags, integers, strings, and CLI-renderable objects.
// The zero Value is invalid and rejected by the adapter.
type Value struct {
	kind Kind
	b    bool
	n    int
	s    string
	r    CLIValuer
}

// Bool wraps a boolean flag value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps an integer value.
func Int(v int) Value { return Value{kind: KindInt, n: v} }

// String wraps a string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Renderer wraps a CLI-renderable object such as a filter chain.
func Renderer(r CLIValuer) Value { return Value{kind: KindRenderer, r: r} }

// Kind returns the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// BoolVal returns the boolean payload; ok is false for other kinds.
func (v Value) BoolVal() (val, ok bool) { return v.b, v.kind == KindBool }

// IntVal returns the integer payload; ok is false for other kinds.
func (v Value) IntVal() (int, bool) { return v.n, v.kind == KindInt }

// StringVal returns the string payload; ok is false for other kinds.
func (v Value) StringVal() (string, bool) { return v.s, v.kind == KindString }

// RendererVal returns the renderable payload; ok is false for other kinds.
func (v Value) RendererVal() (CLIValuer, bool) { return v.r, v.kind == KindRenderer }

// Text returns the payload formatted for substitution into a CLI pattern.
// Renderer values propagate their rendering error; bool values have no
// textual form and report ok=false.
func (v Value) Text() (string, error) {
	switch v.kind {
	case KindInt:
		return strconv.Itoa(v.n), nil
	case KindString:
		return v.s, nil
	case KindRenderer:
		return v.r.FFmpegCLIValue()
	default:
		return "", NewError(ErrCodeUnsupportedParamValue,
			"value of kind "+v.kind.String()+" has no textual form", nil)
	}
}
