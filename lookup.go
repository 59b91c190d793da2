package envcase

import (
	"fmt"
	"iter"
)

// Option configures a Lookup.
type Option func(*Lookup)

// WithFolding sets the case folding strategy. A nil folding keeps the default.
func WithFolding(f Folding) Option {
	return func(l *Lookup) {
		if f != nil {
			l.folding = f
		}
	}
}

// Lookup resolves variable names against a single Source using a case policy.
// It holds no state besides its configuration and is safe for concurrent use
// as long as the source is.
type Lookup struct {
	src     Source
	folding Folding
}

// New creates a Lookup over src. A nil src means the process environment.
func New(src Source, opts ...Option) *Lookup {
	if src == nil {
		src = EnvSource{}
	}
	l := &Lookup{
		src:     src,
		folding: DefaultFolding(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Source returns the underlying source.
func (l *Lookup) Source() Source {
	return l.src
}

// Folding returns the case folding strategy in use.
func (l *Lookup) Folding() Folding {
	return l.folding
}

// ExactVar returns the value of the variable named exactly key.
func (l *Lookup) ExactVar(key string) (string, error) {
	return l.Var(Exact, key)
}

// UncasedVar returns the value of the first variable whose name equals key
// regardless of case.
func (l *Lookup) UncasedVar(key string) (string, error) {
	return l.Var(Uncased, key)
}

// LowerVar returns the value of the first variable whose lowercased name equals key.
func (l *Lookup) LowerVar(key string) (string, error) {
	return l.Var(Lower, key)
}

// UpperVar returns the value of the first variable whose uppercased name equals key.
func (l *Lookup) UpperVar(key string) (string, error) {
	return l.Var(Upper, key)
}

// LowerKeyVar returns the value of the variable named exactly like the lowercased key.
func (l *Lookup) LowerKeyVar(key string) (string, error) {
	return l.Var(LowerKey, key)
}

// UpperKeyVar returns the value of the variable named exactly like the uppercased key.
func (l *Lookup) UpperKeyVar(key string) (string, error) {
	return l.Var(UpperKey, key)
}

// Var resolves key using the given policy.
// A miss is reported as an Error wrapping ErrNotFound.
func (l *Lookup) Var(p Policy, key string) (string, error) {
	val, _, err := l.Match(p, key)
	return val, err
}

// Match is like Var but also returns the name of the matched variable.
func (l *Lookup) Match(p Policy, key string) (value, name string, err error) {
	switch p {
	case Exact:
		return l.exact(p, key, key)
	case LowerKey:
		return l.exact(p, key, l.folding.ToLower(key))
	case UpperKey:
		return l.exact(p, key, l.folding.ToUpper(key))
	}

	match, err := l.matcher(p, key)
	if err != nil {
		return "", "", err
	}
	var found bool
	err = l.src.Each(func(n, v string) bool {
		if match(n) {
			name, value, found = n, v, true
			return false
		}
		return true
	})
	if err != nil {
		return "", "", fmt.Errorf("source %s: %w", l.src.Name(), err)
	}
	if !found {
		return "", "", notFound(key, p)
	}
	return value, name, nil
}

func (l *Lookup) exact(p Policy, key, name string) (string, string, error) {
	val, found, err := l.src.Lookup(name)
	if err != nil {
		return "", "", fmt.Errorf("source %s: %w", l.src.Name(), err)
	}
	if !found {
		return "", "", notFound(key, p)
	}
	return val, name, nil
}

func (l *Lookup) matcher(p Policy, key string) (func(name string) bool, error) {
	_, ascii := l.folding.(asciiFolding)
	switch p {
	case Uncased:
		return func(name string) bool {
			return l.folding.EqualFold(name, key)
		}, nil
	case Lower:
		if ascii {
			return func(name string) bool {
				return asciiMappedEqual(name, key, 'A', 'Z', 'a'-'A')
			}, nil
		}
		return func(name string) bool {
			return l.folding.ToLower(name) == key
		}, nil
	case Upper:
		if ascii {
			return func(name string) bool {
				return asciiMappedEqual(name, key, 'a', 'z', 'A'-'a')
			}, nil
		}
		return func(name string) bool {
			return l.folding.ToUpper(name) == key
		}, nil
	}
	return nil, fmt.Errorf("%s: %w", p, ErrUnknownPolicy)
}

// Each enumerates the source, passing names rewritten for the policy:
// lowercased for Lower and LowerKey, uppercased for Upper and UpperKey,
// unchanged otherwise.
func (l *Lookup) Each(p Policy, fn func(name, value string) bool) error {
	rewrite := func(s string) string { return s }
	switch p {
	case Lower, LowerKey:
		rewrite = l.folding.ToLower
	case Upper, UpperKey:
		rewrite = l.folding.ToUpper
	case Exact, Uncased:
	default:
		return fmt.Errorf("%s: %w", p, ErrUnknownPolicy)
	}
	err := l.src.Each(func(name, value string) bool {
		return fn(rewrite(name), value)
	})
	if err != nil {
		return fmt.Errorf("source %s: %w", l.src.Name(), err)
	}
	return nil
}

// LowerVars yields every variable with a lowercased name.
// A source error ends the sequence; use Each to observe it.
func (l *Lookup) LowerVars() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		_ = l.Each(Lower, yield)
	}
}

// UpperVars yields every variable with an uppercased name.
// A source error ends the sequence; use Each to observe it.
func (l *Lookup) UpperVars() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		_ = l.Each(Upper, yield)
	}
}

// UncasedVars yields every variable keyed by an UncasedKey.
// A source error ends the sequence; use Each to observe it.
func (l *Lookup) UncasedVars() iter.Seq2[UncasedKey, string] {
	return func(yield func(UncasedKey, string) bool) {
		_ = l.Each(Uncased, func(name, value string) bool {
			return yield(UncasedKey{name: name, folding: l.folding}, value)
		})
	}
}

// UncasedKey is a variable name that compares to keys regardless of case.
type UncasedKey struct {
	name    string
	folding Folding
}

// Equal reports whether key matches the name under the key's folding.
// A zero UncasedKey uses DefaultFolding.
func (k UncasedKey) Equal(key string) bool {
	f := k.folding
	if f == nil {
		f = DefaultFolding()
	}
	return f.EqualFold(k.name, key)
}

// String returns the original variable name.
func (k UncasedKey) String() string {
	return k.name
}
