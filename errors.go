package router

import "fmt"

// InvalidRouteError is the single registration failure kind: a structurally
// invalid path, a registration with no resolvable controller, a root base
// path, or a controller mount without a base path. The chainable methods
// panic with it so a bad registration aborts application startup; Handle
// returns it as a plain error.
type InvalidRouteError struct {
	Verb   string // HTTP method, empty for On and Use failures
	Path   string // offending path, empty for Use failures
	Reason string
}

func (e *InvalidRouteError) Error() string {
	switch {
	case e.Verb != "" && e.Path != "":
		return fmt.Sprintf("invalid route: %s %q: %s", e.Verb, e.Path, e.Reason)
	case e.Path != "":
		return fmt.Sprintf("invalid route: %q: %s", e.Path, e.Reason)
	default:
		return "invalid route: " + e.Reason
	}
}
