package scene

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Color", Pattern: `#[0-9A-Fa-f]{6}(?:[0-9A-Fa-f]{2})?`},
		{Name: "Number", Pattern: `[-+]?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[][(),;]`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
	)
)

// Script is the root AST node of a scene script.
type Script struct {
	Statements []*Statement `parser:"( @@ ';' )*"`
}

// Statement is one drawing statement.
type Statement struct {
	Pos lexer.Position `parser:""`

	Text     *TextStmt     `parser:"  @@"`
	Bezier   *BezierStmt   `parser:"| @@"`
	BSpline  *BSplineStmt  `parser:"| @@"`
	Polyline *PolylineStmt `parser:"| @@"`
	Cube     *CubeStmt     `parser:"| @@"`
	Sphere   *SphereStmt   `parser:"| @@"`
	Grid     *GridStmt     `parser:"| @@"`
}

// Kind returns the statement keyword.
func (s *Statement) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Text != nil:
		return "text"
	case s.Bezier != nil:
		return "bezier"
	case s.BSpline != nil:
		return "bspline"
	case s.Polyline != nil:
		return "polyline"
	case s.Cube != nil:
		return "cube"
	case s.Sphere != nil:
		return "sphere"
	case s.Grid != nil:
		return "grid"
	default:
		return "unknown"
	}
}

// Vector is a parenthesized (x, y, z) triple.
type Vector struct {
	X float64 `parser:"'(' @Number"`
	Y float64 `parser:"',' @Number"`
	Z float64 `parser:"',' @Number ')'"`
}

// ColorRef is a hex color literal or a palette name.
type ColorRef struct {
	Hex  *string `parser:"  @Color"`
	Name *string `parser:"| @Ident"`
}

func (c *ColorRef) String() string {
	if c.Hex != nil {
		return *c.Hex
	}
	if c.Name != nil {
		return *c.Name
	}
	return ""
}

// TextStmt draws a string.
type TextStmt struct {
	Text    string        `parser:"'text' @String"`
	At      *Vector       `parser:"( 'at' @@ )?"`
	Options []*TextOption `parser:"@@*"`
}

// TextOption is one trailing option of a text statement.
type TextOption struct {
	Size        *float64  `parser:"  'size' @Number"`
	Spacing     *float64  `parser:"| 'spacing' @Number"`
	LineSpacing *float64  `parser:"| 'linespacing' @Number"`
	Font        *string   `parser:"| 'font' @Ident"`
	Color       *ColorRef `parser:"| 'color' @@"`
	SDF         bool      `parser:"| @'sdf'"`
	Alpha       bool      `parser:"| @'alpha'"`
	Backface    bool      `parser:"| @'backface'"`
	Bounds      bool      `parser:"| @'bounds'"`
	Center      bool      `parser:"| @'center'"`
}

// LineOption is one trailing option of a curve statement.
type LineOption struct {
	Segments *int      `parser:"  'segments' @Number"`
	Density  *int      `parser:"| 'density' @Number"`
	Color    *ColorRef `parser:"| 'color' @@"`
}

// BezierStmt draws a cubic Bezier segment.
type BezierStmt struct {
	P1      Vector        `parser:"'bezier' @@"`
	C2      Vector        `parser:"@@"`
	C3      Vector        `parser:"@@"`
	P4      Vector        `parser:"@@"`
	Options []*LineOption `parser:"@@*"`
}

// BSplineStmt draws a uniform cubic B-spline chain.
type BSplineStmt struct {
	Points  []*Vector     `parser:"'bspline' '[' @@ ( ',' @@ )* ']'"`
	Options []*LineOption `parser:"@@*"`
}

// PolylineStmt draws straight segments through its points.
type PolylineStmt struct {
	Points  []*Vector     `parser:"'polyline' '[' @@ ( ',' @@ )* ']'"`
	Options []*LineOption `parser:"@@*"`
}

// Size is a uniform scalar or a per-axis vector.
type Size struct {
	Vec    *Vector  `parser:"  @@"`
	Scalar *float64 `parser:"| @Number"`
}

// CubeStmt draws a box.
type CubeStmt struct {
	At      Vector        `parser:"'cube' 'at' @@"`
	Options []*MeshOption `parser:"@@*"`
}

// SphereStmt draws a sphere.
type SphereStmt struct {
	At      Vector        `parser:"'sphere' 'at' @@"`
	Options []*MeshOption `parser:"@@*"`
}

// MeshOption is one trailing option of a cube or sphere statement.
type MeshOption struct {
	Size   *Size     `parser:"  'size' @@"`
	Radius *float64  `parser:"| 'radius' @Number"`
	Color  *ColorRef `parser:"| 'color' @@"`
}

// GridStmt draws the reference grid.
type GridStmt struct {
	Slices  int      `parser:"'grid' @Number"`
	Spacing *float64 `parser:"( 'spacing' @Number )?"`
}

// Parse parses a scene script from r.
func Parse(r io.Reader) (*Script, error) {
	return scriptParser.Parse("", r)
}

// ParseString parses a scene script.
func ParseString(src string) (*Script, error) {
	return scriptParser.ParseString("", src)
}
