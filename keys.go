package iconset

import "image"

// Key constrains the enumerated types that can address a grid. Any
// type whose underlying type is an integer qualifies, which covers
// ordinary iota enumerations.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IconKey returns the icon addressed by the underlying value of an
// enumerated key, with the same fallback semantics as Grid.Icon.
func IconKey[K Key](g *Grid, key K) image.Image {
	return g.Icon(int(key))
}

// IconKeyAt returns the icon addressed by enumerated column and row
// keys, with the same fallback semantics as Grid.IconAt.
func IconKeyAt[C, R Key](g *Grid, col C, row R) image.Image {
	return g.IconAt(int(col), int(row))
}

// IsValidKey reports whether an icon exists at the underlying value of
// an enumerated key.
func IsValidKey[K Key](g *Grid, key K) bool {
	return g.IsValid(int(key))
}

// IsValidKeyAt reports whether an icon exists at the underlying values
// of enumerated column and row keys.
func IsValidKeyAt[C, R Key](g *Grid, col C, row R) bool {
	return g.IsValidAt(int(col), int(row))
}
