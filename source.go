package envcase

//go:generate go run go.uber.org/mock/mockgen@v0.3.0 -source source.go -destination ./mock/source.go

// Source is an interface for any environment table that can be queried and enumerated.
type Source interface {
	// Lookup retrieves a value by its exact name.
	// It returns the value, a boolean flag indicating if the value was found,
	// and an error if there was a problem accessing the source.
	Lookup(name string) (value string, found bool, err error)

	// Each calls fn for every variable in the source until fn returns false.
	// The enumeration order is defined by the source.
	Each(fn func(name, value string) bool) error

	// Name returns a human-readable name of the source for debugging or logging purposes.
	Name() string
}
