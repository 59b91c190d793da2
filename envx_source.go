package envcase

import (
	"errors"
	"fmt"

	"github.com/velmie/x/envx"
)

var _ envx.Source = (*EnvxSource)(nil)

// EnvxSource exposes a Lookup as an envx.Source, matching every requested
// name under a fixed policy.
type EnvxSource struct {
	lookup *Lookup
	policy Policy
}

// NewEnvxSource creates an envx source over l. A nil l reads the process environment.
func NewEnvxSource(l *Lookup, p Policy) *EnvxSource {
	if l == nil {
		l = New(nil)
	}
	return &EnvxSource{lookup: l, policy: p}
}

// Lookup returns the value of the variable matching name under the policy.
func (s *EnvxSource) Lookup(name string) (string, bool, error) {
	val, err := s.lookup.Var(s.policy, name)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Name returns the source name.
func (s *EnvxSource) Name() string {
	return fmt.Sprintf("%s[%s]", s.lookup.Source().Name(), s.policy)
}
