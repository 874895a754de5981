package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidWKT is returned by ParseWKT for text it cannot read back.
var ErrInvalidWKT = errors.New("invalid wkt")

// WKT renders c as POLYGON((x y, ...)) when closed, repeating the first point
// at the end, or LINESTRING(x y, ...) when open. An empty contour yields the
// EMPTY form of the type.
func (c Contour) WKT(closed bool) string {
	typ := "LINESTRING"
	if closed {
		typ = "POLYGON"
	}
	if len(c) == 0 {
		return typ + " EMPTY"
	}
	var b strings.Builder
	b.WriteString(typ)
	if closed {
		b.WriteString("((")
	} else {
		b.WriteString("(")
	}
	write := func(p Point) {
		b.WriteString(strconv.Itoa(p.X))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(p.Y))
	}
	for i, p := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		write(p)
	}
	if closed {
		b.WriteString(", ")
		write(c[0])
		b.WriteString("))")
	} else {
		b.WriteString(")")
	}
	return b.String()
}

// ParseWKT reads back a contour written by WKT. Only POLYGON and LINESTRING
// are supported; the closing repeat of a polygon ring is dropped.
func ParseWKT(wkt string) (c Contour, closed bool, err error) {
	s := strings.TrimSpace(wkt)
	up := strings.ToUpper(s)
	var open, end string
	switch {
	case strings.HasPrefix(up, "POLYGON"):
		closed, open, end = true, "((", "))"
	case strings.HasPrefix(up, "LINESTRING"):
		open, end = "(", ")"
	default:
		return nil, false, fmt.Errorf("%w: unsupported type in %q", ErrInvalidWKT, s)
	}
	if strings.HasSuffix(up, " EMPTY") {
		return Contour{}, closed, nil
	}
	i := strings.Index(s, open)
	j := strings.LastIndex(s, end)
	if i < 0 || j <= i {
		return nil, false, fmt.Errorf("%w: unbalanced parentheses", ErrInvalidWKT)
	}
	for _, tup := range strings.Split(s[i+len(open):j], ",") {
		parts := strings.Fields(tup)
		if len(parts) != 2 {
			return nil, false, fmt.Errorf("%w: bad coordinate %q", ErrInvalidWKT, strings.TrimSpace(tup))
		}
		x, err1 := strconv.Atoi(parts[0])
		y, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return nil, false, fmt.Errorf("%w: bad coordinate %q", ErrInvalidWKT, strings.TrimSpace(tup))
		}
		c = append(c, Point{x, y})
	}
	if closed {
		if len(c) < 2 || c[0] != c[len(c)-1] {
			return nil, false, fmt.Errorf("%w: polygon ring is not closed", ErrInvalidWKT)
		}
		c = c[:len(c)-1]
	}
	return c, closed, nil
}
