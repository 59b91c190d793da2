//go:build envcase_unicode

package envcase

// UnicodeEnabled reports whether the package was built with the envcase_unicode tag.
const UnicodeEnabled = true

// DefaultFolding returns the folding compiled in as the package default.
func DefaultFolding() Folding {
	return UnicodeFolding
}
