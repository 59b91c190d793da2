package envcase

import (
	"errors"
	"fmt"
)

// Resolver defines methods that any resolver must implement.
type Resolver interface {
	// Get looks up a variable by name.
	Get(name string) (*Variable, error)

	// Coalesce tries a list of variable names and returns the first one found.
	Coalesce(names ...string) (*Variable, error)

	// AddSource adds a new source to the resolver.
	AddSource(src Source)
}

// ErrorHandler defines how errors from sources should be handled
type ErrorHandler func(err error, sourceName string) (bool, error)

// ContinueOnError is an error handler that ignores errors and continues to next source
func ContinueOnError(err error, sourceName string) (bool, error) {
	return true, nil
}

// BreakOnError is an error handler that stops resolution on first error
func BreakOnError(err error, sourceName string) (bool, error) {
	return false, err
}

// StandardResolver implements Resolver interface and manages multiple sources,
// matching names in them sequentially under a single case policy.
type StandardResolver struct {
	sources      []Source
	policy       Policy
	folding      Folding
	errorHandler ErrorHandler
	logger       Logger
}

// NewResolver creates a new StandardResolver with the given sources.
// Sources will be queried in the order they are provided.
// By default, it matches names with the Uncased policy, uses the package
// default folding and BreakOnError as the error handler.
func NewResolver(sources ...Source) *StandardResolver {
	return &StandardResolver{
		sources:      sources,
		policy:       Uncased,
		folding:      DefaultFolding(),
		errorHandler: BreakOnError,
		logger:       NoopLogger{},
	}
}

// WithPolicy sets the case policy and returns the resolver for chaining.
func (r *StandardResolver) WithPolicy(p Policy) *StandardResolver {
	r.policy = p
	return r
}

// WithFolding sets the case folding strategy and returns the resolver for chaining.
func (r *StandardResolver) WithFolding(f Folding) *StandardResolver {
	if f != nil {
		r.folding = f
	}
	return r
}

// WithErrorHandler sets a custom error handler and returns the resolver for chaining.
func (r *StandardResolver) WithErrorHandler(handler ErrorHandler) *StandardResolver {
	r.errorHandler = handler
	return r
}

// WithLogger sets the logger used to trace resolution and returns the resolver for chaining.
func (r *StandardResolver) WithLogger(logger Logger) *StandardResolver {
	if logger == nil {
		logger = NoopLogger{}
	}
	r.logger = logger
	return r
}

// AddSource adds a new source to the resolver.
// The new source is added to the end of the source list (lowest priority).
func (r *StandardResolver) AddSource(src Source) {
	r.sources = append(r.sources, src)
}

// Get looks up a variable by name in all registered sources.
// Returns the first match or a Variable with Exist set to false.
// Returns error if a source fails and the error handler decides to break.
func (r *StandardResolver) Get(name string) (*Variable, error) {
	if err := r.checkPolicy(); err != nil {
		return nil, err
	}
	for _, src := range r.sources {
		v, err := r.lookup(src, name)
		if err != nil {
			if cont, herr := r.handle(err, src); !cont {
				return nil, herr
			}
			continue
		}
		if v != nil {
			v.AllNames = []string{name}
			return v, nil
		}
	}

	r.logger.Debug("variable not found", "name", name, "policy", r.policy.String())
	return r.missing(name, []string{name}), nil
}

// Coalesce tries a list of variable names and returns the first one found
// with a non-empty value. It tries each name in all sources before moving to
// the next name.
// Within a source only the first variable matching a name under the policy is
// considered: if several names match (e.g. "k" and "K" under Uncased) and the
// first one enumerated is empty, the name is skipped even when another match
// holds a value. Which match comes first is defined by the source.
// Returns error if a source fails and the error handler decides to break.
func (r *StandardResolver) Coalesce(names ...string) (*Variable, error) {
	if len(names) == 0 {
		return &Variable{folding: r.folding}, nil
	}
	if err := r.checkPolicy(); err != nil {
		return nil, err
	}

	allNames := make([]string, len(names))
	copy(allNames, names)

	for _, name := range names {
		for _, src := range r.sources {
			v, err := r.lookup(src, name)
			if err != nil {
				if cont, herr := r.handle(err, src); !cont {
					return nil, herr
				}
				continue
			}
			if v != nil && v.Val != "" {
				// the first name is the one reported in errors
				v.Name = names[0]
				v.AllNames = allNames
				return v, nil
			}
		}
	}

	return r.missing(names[0], allNames), nil
}

// lookup returns nil without error when src has no match.
func (r *StandardResolver) lookup(src Source, name string) (*Variable, error) {
	val, matched, err := New(src, WithFolding(r.folding)).Match(r.policy, name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.logger.Debug("variable resolved",
		"name", name,
		"matched", matched,
		"source", src.Name(),
		"policy", r.policy.String(),
	)
	return &Variable{
		Name:        name,
		Val:         val,
		Exist:       true,
		MatchedName: matched,
		SourceName:  src.Name(),
		folding:     r.folding,
	}, nil
}

func (r *StandardResolver) handle(err error, src Source) (bool, error) {
	if r.errorHandler == nil {
		r.logger.Error("source failed", "source", src.Name(), "error", err)
		return false, err
	}
	cont, herr := r.errorHandler(err, src.Name())
	if cont {
		r.logger.Debug("skipping failed source", "source", src.Name(), "error", err)
	} else {
		r.logger.Error("source failed", "source", src.Name(), "error", err)
	}
	return cont, herr
}

func (r *StandardResolver) missing(name string, allNames []string) *Variable {
	return &Variable{
		Name:     name,
		Exist:    false,
		AllNames: allNames,
		folding:  r.folding,
	}
}

func (r *StandardResolver) checkPolicy() error {
	for _, p := range Policies() {
		if p == r.policy {
			return nil
		}
	}
	return fmt.Errorf("%s: %w", r.policy, ErrUnknownPolicy)
}

// DefaultResolver is the resolver used by the package functions Get and Coalesce.
// It reads the process environment with the Uncased policy and ignores source errors.
var DefaultResolver Resolver = NewResolver(EnvSource{}).WithErrorHandler(ContinueOnError)

// Get looks up a variable by name using the DefaultResolver.
// Errors from the resolver are ignored.
func Get(name string) *Variable {
	v, _ := DefaultResolver.Get(name)
	return v
}

// Coalesce tries a list of variable names and returns the first one found
// using the DefaultResolver.
// Errors from the resolver are ignored.
func Coalesce(names ...string) *Variable {
	v, _ := DefaultResolver.Coalesce(names...)
	return v
}
