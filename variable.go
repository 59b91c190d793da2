package envcase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Variable is the result of a resolution. Runners attached to it are applied
// before every conversion.
type Variable struct {
	// Name is the requested name
	Name string
	Val  string
	// Exist reports whether a variable matched
	Exist bool
	// MatchedName is the name of the variable as it is set in the source
	MatchedName string
	SourceName  string
	// AllNames holds every name tried by Coalesce
	AllNames []string

	folding   Folding
	defaulted bool
	runners   []Runner
}

// Runner is applied to a variable before its value is converted.
type Runner func(v *Variable) error

func (v *Variable) Default(val string) *Variable {
	v.runners = append(v.runners, DefaultVal(val))
	return v
}

func (v *Variable) Required() *Variable {
	v.runners = append(v.runners, Required)
	return v
}

func (v *Variable) NotEmpty() *Variable {
	v.runners = append(v.runners, NotEmpty)
	return v
}

func (v *Variable) OneOf(values ...string) *Variable {
	v.runners = append(v.runners, OneOf(values, false))
	return v
}

// OneOfFold is like OneOf but compares values regardless of case.
func (v *Variable) OneOfFold(values ...string) *Variable {
	v.runners = append(v.runners, OneOf(values, true))
	return v
}

func (v *Variable) WithRunners(runners ...Runner) *Variable {
	v.runners = append(v.runners, runners...)
	return v
}

// String returns the value. A missing variable without a default is an
// error wrapping ErrNotFound.
func (v *Variable) String() (string, error) {
	if err := v.resolve(); err != nil {
		return "", err
	}
	return v.Val, nil
}

func (v *Variable) StringSlice(delimiter ...string) ([]string, error) {
	delim := ","
	if len(delimiter) > 0 {
		delim = delimiter[0]
	}
	if err := v.resolve(); err != nil {
		return nil, err
	}
	if v.Val == "" {
		return []string{}, nil
	}
	return strings.Split(v.Val, delim), nil
}

func (v *Variable) Boolean() (bool, error) {
	if err := v.resolve(); err != nil {
		return false, err
	}
	result, err := strconv.ParseBool(v.Val)
	if err != nil {
		return false, v.invalid("boolean")
	}
	return result, nil
}

func (v *Variable) Int() (int, error) {
	result, err := v.Int64()
	return int(result), err
}

func (v *Variable) Int64() (int64, error) {
	if err := v.resolve(); err != nil {
		return 0, err
	}
	result, err := strconv.ParseInt(v.Val, 10, 64)
	if err != nil {
		return 0, v.invalid("integer")
	}
	return result, nil
}

func (v *Variable) Duration() (time.Duration, error) {
	if err := v.resolve(); err != nil {
		return 0, err
	}
	result, err := time.ParseDuration(v.Val)
	if err != nil {
		return 0, v.invalid("time duration")
	}
	return result, nil
}

func (v *Variable) invalid(kind string) error {
	return Error{
		VarName: v.Name,
		Reason:  fmt.Sprintf("must be a valid %s value, got '%s'", kind, v.Val),
		Cause:   ErrInvalidValue,
	}
}

func (v *Variable) resolve() error {
	for _, r := range v.runners {
		if err := r(v); err != nil {
			return err
		}
	}
	if !v.set() {
		return errNotSet(v)
	}
	return nil
}

// set reports whether the variable has a value, matched or defaulted.
// Value checks leave unset variables to the final not-found error.
func (v *Variable) set() bool {
	return v.Exist || v.defaulted
}

func errNotSet(v *Variable) error {
	return Error{
		VarName: v.Name,
		Reason:  "is not set",
		Cause:   ErrNotFound,
	}
}

func DefaultVal(val string) Runner {
	return func(v *Variable) error {
		if !v.Exist {
			v.Val = val
			v.defaulted = true
		}
		return nil
	}
}

func Required(v *Variable) error {
	if !v.Exist {
		return errNotSet(v)
	}
	return nil
}

func NotEmpty(v *Variable) error {
	if !v.set() {
		return nil
	}
	if v.Val == "" {
		return Error{
			VarName: v.Name,
			Reason:  "has empty value",
			Cause:   ErrEmpty,
		}
	}
	return nil
}

// OneOf checks that the value is one of values. With fold set, values are
// compared under the variable's folding.
func OneOf(values []string, fold bool) Runner {
	return func(v *Variable) error {
		if !v.set() {
			return nil
		}
		f := v.folding
		if f == nil {
			f = DefaultFolding()
		}
		for _, value := range values {
			if value == v.Val || (fold && f.EqualFold(value, v.Val)) {
				return nil
			}
		}
		return Error{
			VarName: v.Name,
			Reason: fmt.Sprintf(
				"must be one of the following values '%s'; got '%s'",
				strings.Join(values, "', '"),
				v.Val,
			),
			Cause: ErrInvalidValue,
		}
	}
}
