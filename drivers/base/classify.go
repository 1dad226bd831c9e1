package base

import (
	"fmt"
	"strings"

	"github.com/framebridge/framebridge/types"
)

// Classify maps an error reported by a backend library onto the error kinds
// callers can test with errors.Is. Unrecognized errors are returned as-is.
//
// The mapping is heuristic: it matches substrings of the backend's message
// and depends on the wording each library uses. Revisit whenever a backend
// library starts exposing structured error codes.
func Classify(backend types.BackendType, table string, err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "not found"),
		strings.Contains(msg, "does not exist"),
		strings.Contains(msg, "doesn't exist"),
		strings.Contains(msg, "no such table"):
		if table != "" {
			return fmt.Errorf("%w: table %q not found in %s backend", types.ErrTableNotFound, table, backend)
		}
		return fmt.Errorf("%w: in %s backend: %v", types.ErrTableNotFound, backend, err)

	case strings.Contains(msg, "credentials"),
		strings.Contains(msg, "authentication"):
		return fmt.Errorf("%w: %s rejected the configured credentials: %v\n\n"+
			"Check that the credentials the backend expects are present in the environment",
			types.ErrConnectionFailed, backend, err)
	}

	return err
}

// classifyConnectError applies only the credentials heuristic. At connect
// time a "does not exist" message refers to the database, not a table, so
// the table heuristic must not run. Returns nil for errors it cannot
// classify.
func classifyConnectError(backend types.BackendType, err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "credentials") || strings.Contains(msg, "authentication") {
		return fmt.Errorf("%w: %s rejected the configured credentials: %v\n\n"+
			"Check that the credentials the backend expects are present in the environment",
			types.ErrConnectionFailed, backend, err)
	}
	return nil
}
