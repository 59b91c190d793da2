package envcase

import (
	"os"
	"strings"
)

// EnvSource implements the Source interface for the process environment.
// Every call reads the environment anew.
type EnvSource struct{}

// Lookup retrieves an environment variable by name.
func (EnvSource) Lookup(key string) (string, bool, error) {
	val, found := os.LookupEnv(key)
	return val, found, nil
}

// Each enumerates os.Environ.
func (EnvSource) Each(fn func(name, value string) bool) error {
	for _, kv := range os.Environ() {
		name, value, ok := splitEnviron(kv)
		if !ok {
			continue
		}
		if !fn(name, value) {
			break
		}
	}
	return nil
}

// Name returns the source name.
func (EnvSource) Name() string {
	return "Environment"
}

// splitEnviron splits a "name=value" entry. A leading '=' belongs to the
// name, as in the "=C:=C:\dir" entries found on Windows.
func splitEnviron(kv string) (name, value string, ok bool) {
	if kv == "" {
		return "", "", false
	}
	i := strings.IndexByte(kv[1:], '=')
	if i < 0 {
		return "", "", false
	}
	return kv[:i+1], kv[i+2:], true
}
