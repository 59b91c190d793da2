package envcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folding is a case mapping strategy used to compare and rewrite variable names.
type Folding interface {
	// Name identifies the strategy, e.g. "ascii" or "unicode".
	Name() string
	ToLower(s string) string
	ToUpper(s string) string
	// EqualFold reports whether a and b are equal under case folding.
	EqualFold(a, b string) bool
}

var (
	// ASCIIFolding maps only A-Z and a-z; all other bytes pass through unchanged.
	ASCIIFolding Folding = asciiFolding{}
	// UnicodeFolding applies full Unicode case mappings, including
	// multi-rune expansions such as 'ß' -> "SS".
	UnicodeFolding Folding = unicodeFolding{}
)

type asciiFolding struct{}

func (asciiFolding) Name() string {
	return "ascii"
}

func (asciiFolding) ToLower(s string) string {
	return asciiMap(s, 'A', 'Z', 'a'-'A')
}

func (asciiFolding) ToUpper(s string) string {
	return asciiMap(s, 'a', 'z', 'A'-'a')
}

func (asciiFolding) EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if asciiLower(a[i]) != asciiLower(b[i]) {
			return false
		}
	}
	return true
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// asciiMap shifts bytes within [lo, hi] by delta. The input is returned as is
// when there is nothing to map.
func asciiMap(s string, lo, hi byte, delta int) string {
	first := -1
	for i := 0; i < len(s); i++ {
		if lo <= s[i] && s[i] <= hi {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}
	b := []byte(s)
	for i := first; i < len(b); i++ {
		if lo <= b[i] && b[i] <= hi {
			b[i] = byte(int(b[i]) + delta)
		}
	}
	return string(b)
}

// unicodeFolding builds a new caser on every call since casers keep
// transformation state and must not be shared between goroutines.
type unicodeFolding struct{}

func (unicodeFolding) Name() string {
	return "unicode"
}

func (unicodeFolding) ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func (unicodeFolding) ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func (unicodeFolding) EqualFold(a, b string) bool {
	if a == b {
		return true
	}
	return cases.Fold().String(a) == cases.Fold().String(b)
}

// FoldingByName returns the strategy registered under name.
func FoldingByName(name string) (Folding, bool) {
	switch name {
	case ASCIIFolding.Name():
		return ASCIIFolding, true
	case UnicodeFolding.Name():
		return UnicodeFolding, true
	}
	return nil, false
}

// asciiMappedEqual reports whether s with bytes in [lo, hi] shifted by delta
// equals key, without building the mapped string.
func asciiMappedEqual(s, key string, lo, hi byte, delta int) bool {
	if len(s) != len(key) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if lo <= c && c <= hi {
			c = byte(int(c) + delta)
		}
		if c != key[i] {
			return false
		}
	}
	return true
}
