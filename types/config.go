package types

// Config holds one backend's options as loaded from the configuration
// document, after environment variable substitution. Values are free-form;
// drivers pick out the keys they understand and pass the rest through to the
// underlying backend library.
type Config map[string]any

// GetString returns the string value for key, if present and a string
func (c Config) GetString(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetBool returns the boolean value for key, if present and a bool
func (c Config) GetBool(key string) (bool, bool) {
	v, ok := c[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Without returns a copy of the config with the given key removed
func (c Config) Without(key string) Config {
	out := make(Config, len(c))
	for k, v := range c {
		if k != key {
			out[k] = v
		}
	}
	return out
}
