package godot

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the literal forms a property value can take.
type ValueKind int

const (
	KindFloat ValueKind = iota
	KindInt
	KindBool
	KindString
	KindVector2
	KindVector3
	KindColor
	KindQuaternion
	KindNodePath
	KindExtResource
	KindLiteral
)

// Value is a typed property literal. ExtResource values carry the
// referenced target path; the document assigns the id at declaration.
type Value struct {
	Kind ValueKind
	// Raw is the serialized literal form.
	Raw string
	// Path is the referenced resource path (ExtResource only).
	Path string
}

// Float formats a float the shortest way that round-trips.
func Float(f float64) Value {
	return Value{Kind: KindFloat, Raw: Ftoa(f)}
}

// Float32 formats a single-precision float; use it for values derived
// from the source engine's single-precision data so arithmetic noise
// below float32 precision does not leak into the output text.
func Float32(f float32) Value {
	return Value{Kind: KindFloat, Raw: Ftoa32(f)}
}

// Int is an integer literal.
func Int(i int) Value {
	return Value{Kind: KindInt, Raw: strconv.Itoa(i)}
}

// Bool is a boolean literal.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Raw: strconv.FormatBool(b)}
}

// Str is a quoted string literal.
func Str(s string) Value {
	return Value{Kind: KindString, Raw: strconv.Quote(s)}
}

// Vector2 is an inline two-component vector constructor. Components
// are float32 because the source data is single-precision.
func Vector2(x, y float32) Value {
	return Value{Kind: KindVector2, Raw: fmt.Sprintf("Vector2(%s, %s)", Ftoa32(x), Ftoa32(y))}
}

// Vector3 is an inline three-component vector constructor.
func Vector3(x, y, z float32) Value {
	return Value{Kind: KindVector3, Raw: fmt.Sprintf("Vector3(%s, %s, %s)", Ftoa32(x), Ftoa32(y), Ftoa32(z))}
}

// Color is an inline color constructor.
func Color(r, g, b, a float32) Value {
	return Value{Kind: KindColor, Raw: fmt.Sprintf("Color(%s, %s, %s, %s)", Ftoa32(r), Ftoa32(g), Ftoa32(b), Ftoa32(a))}
}

// Quaternion is an inline orientation constructor.
func Quaternion(x, y, z, w float32) Value {
	return Value{Kind: KindQuaternion, Raw: fmt.Sprintf("Quaternion(%s, %s, %s, %s)", Ftoa32(x), Ftoa32(y), Ftoa32(z), Ftoa32(w))}
}

// NodePath is an inline node-path constructor.
func NodePath(path string) Value {
	return Value{Kind: KindNodePath, Raw: fmt.Sprintf("NodePath(%q)", path)}
}

// Literal is a raw constructor-style literal emitted verbatim, e.g.
// `BoxShape3D.new(size = Vector3(1, 2, 3))`.
func Literal(raw string) Value {
	return Value{Kind: KindLiteral, Raw: raw}
}

// Ftoa formats a float for the document text: shortest form that
// parses back exactly.
func Ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Ftoa32 formats a single-precision float the same way.
func Ftoa32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
