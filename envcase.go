// Package envcase reads environment variables by lowercase, uppercase or
// case-insensitive keys.
//
// Case mapping follows ASCII rules unless the package is built with the
// envcase_unicode tag, which switches the package-level functions to full
// Unicode case mappings. A Lookup can select either Folding explicitly.
package envcase

import "iter"

var processEnv = New(EnvSource{})

// ExactVar returns the value of the environment variable named exactly key.
func ExactVar(key string) (string, error) {
	return processEnv.ExactVar(key)
}

// UncasedVar returns the value of the environment variable whose name equals
// key regardless of case. If several names match, the first one enumerated wins.
func UncasedVar(key string) (string, error) {
	return processEnv.UncasedVar(key)
}

// LowerVar returns the value of the environment variable whose lowercased name equals key.
func LowerVar(key string) (string, error) {
	return processEnv.LowerVar(key)
}

// UpperVar returns the value of the environment variable whose uppercased name equals key.
func UpperVar(key string) (string, error) {
	return processEnv.UpperVar(key)
}

// LowerKeyVar returns the value of the environment variable named exactly
// like the lowercased key.
func LowerKeyVar(key string) (string, error) {
	return processEnv.LowerKeyVar(key)
}

// UpperKeyVar returns the value of the environment variable named exactly
// like the uppercased key.
func UpperKeyVar(key string) (string, error) {
	return processEnv.UpperKeyVar(key)
}

// Var resolves key in the process environment using the given policy.
func Var(p Policy, key string) (string, error) {
	return processEnv.Var(p, key)
}

// LowerVars yields the process environment with lowercased names.
func LowerVars() iter.Seq2[string, string] {
	return processEnv.LowerVars()
}

// UpperVars yields the process environment with uppercased names.
func UpperVars() iter.Seq2[string, string] {
	return processEnv.UpperVars()
}

// UncasedVars yields the process environment keyed by names that can be
// compared regardless of case.
func UncasedVars() iter.Seq2[UncasedKey, string] {
	return processEnv.UncasedVars()
}
