package layout

import "fmt"

type constraintKind uint8

const (
	kindLength constraintKind = iota
	kindMin
	kindMax
	kindFill
	kindRatio
	kindPercentage
)

// Constraint is a sizing rule for one slot of a layout.
type Constraint struct {
	kind constraintKind
	a    uint16
	b    uint16
}

// Length requests exactly n cells.
func Length(n uint16) Constraint { return Constraint{kind: kindLength, a: n} }

// Min requests at least n cells.
func Min(n uint16) Constraint { return Constraint{kind: kindMin, a: n} }

// Max requests at most n cells.
func Max(n uint16) Constraint { return Constraint{kind: kindMax, a: n} }

// Fill shares leftover space with other Fill slots in proportion to weight.
func Fill(weight uint16) Constraint { return Constraint{kind: kindFill, a: weight} }

// Ratio requests num/den of the available span.
func Ratio(num, den uint16) Constraint { return Constraint{kind: kindRatio, a: num, b: den} }

// Percentage requests pct percent of the available span. Values above 100
// are treated as 100.
func Percentage(pct uint16) Constraint { return Constraint{kind: kindPercentage, a: pct} }

// IsFill reports whether c is a Fill constraint.
func (c Constraint) IsFill() bool { return c.kind == kindFill }

// Weight returns the Fill weight, or 0 for other kinds.
func (c Constraint) Weight() uint16 {
	if c.kind != kindFill {
		return 0
	}
	return c.a
}

// Apply returns the size c resolves to on its own within available cells.
// Fill resolves to 0 because its size depends on its siblings.
func (c Constraint) Apply(available uint16) uint16 {
	avail := uint32(available)
	switch c.kind {
	case kindLength, kindMin:
		return c.a
	case kindMax:
		return min(available, c.a)
	case kindRatio:
		if c.b == 0 {
			return 0
		}
		return clampU16(avail * uint32(c.a) / uint32(c.b))
	case kindPercentage:
		return uint16(avail * uint32(min(c.a, 100)) / 100)
	default:
		return 0
	}
}

func (c Constraint) String() string {
	switch c.kind {
	case kindLength:
		return fmt.Sprintf("Length(%d)", c.a)
	case kindMin:
		return fmt.Sprintf("Min(%d)", c.a)
	case kindMax:
		return fmt.Sprintf("Max(%d)", c.a)
	case kindFill:
		return fmt.Sprintf("Fill(%d)", c.a)
	case kindRatio:
		return fmt.Sprintf("Ratio(%d, %d)", c.a, c.b)
	case kindPercentage:
		return fmt.Sprintf("Percentage(%d)", c.a)
	}
	return "Constraint(?)"
}

func clampU16(v uint32) uint16 {
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
