package envcase

import "fmt"

// Policy selects how a requested key is matched against variable names.
type Policy int

const (
	// Exact matches the name as given, like os.LookupEnv.
	Exact Policy = iota
	// Uncased matches names equal to the key under case folding.
	Uncased
	// Lower matches names whose lowercase form equals the key.
	Lower
	// Upper matches names whose uppercase form equals the key.
	Upper
	// LowerKey lowercases the key and looks it up exactly.
	LowerKey
	// UpperKey uppercases the key and looks it up exactly.
	UpperKey
)

var policyNames = [...]string{
	Exact:    "exact",
	Uncased:  "uncased",
	Lower:    "lower",
	Upper:    "upper",
	LowerKey: "lower-key",
	UpperKey: "upper-key",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// Policies returns all known policies in declaration order.
func Policies() []Policy {
	return []Policy{Exact, Uncased, Lower, Upper, LowerKey, UpperKey}
}

// ParsePolicy converts a policy name such as "uncased" into a Policy.
func ParsePolicy(name string) (Policy, error) {
	for i, n := range policyNames {
		if n == name {
			return Policy(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
}
