package envcase

// MapSource implements Source for a map[string]string.
// Useful for testing or in-memory environments.
type MapSource struct {
	// Name identifies this source for logging/debugging
	SourceName string
	// Data holds the key-value pairs
	Data map[string]string
}

// NewMapSource creates a new MapSource with an optional name.
func NewMapSource(data map[string]string, name string) *MapSource {
	if name == "" {
		name = "Map"
	}
	return &MapSource{
		SourceName: name,
		Data:       data,
	}
}

// Lookup retrieves a value from the map.
func (s *MapSource) Lookup(key string) (string, bool, error) {
	val, found := s.Data[key]
	return val, found, nil
}

// Each ranges over the map; the order is unspecified.
func (s *MapSource) Each(fn func(name, value string) bool) error {
	for k, v := range s.Data {
		if !fn(k, v) {
			break
		}
	}
	return nil
}

// Name returns the source name for logging purposes.
func (s *MapSource) Name() string {
	return s.SourceName
}
