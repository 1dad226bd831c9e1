package connections

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/framebridge/framebridge/types"
)

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// FromYAML loads all connections from a YAML document. The document maps
// backend names to option mappings:
//
//	duckdb:
//	  path: analytics.db
//	bigquery:
//	  project_id: ${GCP_PROJECT}
//
// ${VAR} placeholders in string values are resolved against the process
// environment at load time. An empty or null document yields a manager with
// zero backends.
func FromYAML(ctx context.Context, path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("connection configuration file not found: %s, check that the file path is correct: %w", path, err)
		}
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML syntax in %s: %v", types.ErrInvalidConfig, path, err)
	}

	manager := NewManager()
	if len(root.Content) == 0 {
		return manager, nil
	}

	doc := root.Content[0]
	if doc.Tag == "!!null" {
		return manager, nil
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s must be a mapping of backend names to option mappings", types.ErrInvalidConfig, path)
	}

	// Content holds alternating key/value nodes in document order, which
	// keeps connection setup (and its diagnostics) deterministic.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode, valNode := doc.Content[i], doc.Content[i+1]
		backend := types.BackendType(keyNode.Value)

		if valNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: invalid configuration for backend %q in %s, expected a mapping (key-value pairs)",
				types.ErrInvalidConfig, backend, path)
		}

		var raw map[string]any
		if err := valNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: invalid configuration for backend %q in %s: %v",
				types.ErrInvalidConfig, backend, path, err)
		}

		cfg, err := substituteEnv(raw, path)
		if err != nil {
			return nil, err
		}

		if err := manager.AddConnection(ctx, backend, cfg); err != nil {
			if errors.Is(err, types.ErrInvalidConfig) || errors.Is(err, types.ErrUnsupportedBackend) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: failed to create connection for backend %q: %v",
				types.ErrInvalidConfig, backend, err)
		}
	}

	return manager, nil
}

// substituteEnv resolves ${VAR} placeholders in every string leaf of the
// config, recursing into nested mappings. Non-string leaves pass through
// unchanged.
func substituteEnv(cfg map[string]any, path string) (types.Config, error) {
	out := make(types.Config, len(cfg))
	for key, value := range cfg {
		substituted, err := substituteValue(value, path)
		if err != nil {
			return nil, err
		}
		out[key] = substituted
	}
	return out, nil
}

func substituteValue(value any, path string) (any, error) {
	switch v := value.(type) {
	case string:
		return expandEnv(v, path)
	case map[string]any:
		return substituteEnv(v, path)
	default:
		return value, nil
	}
}

// expandEnv replaces every ${VAR} occurrence with the environment variable's
// value. A string may hold several placeholders; any unset variable is an
// error naming it.
func expandEnv(value, path string) (string, error) {
	for _, match := range envPattern.FindAllStringSubmatch(value, -1) {
		if _, ok := os.LookupEnv(match[1]); !ok {
			return "", fmt.Errorf("%w: environment variable %q referenced in %s but not set\n\n"+
				"Set the environment variable:\n"+
				"  export %s=your-value",
				types.ErrInvalidConfig, match[1], path, match[1])
		}
	}
	return envPattern.ReplaceAllStringFunc(value, func(m string) string {
		return os.Getenv(m[2 : len(m)-1])
	}), nil
}
