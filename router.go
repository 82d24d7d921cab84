package router

import (
	"log"
	"strings"

	gstrings "github.com/savsgio/gotils/strings"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
)

// Router accumulates route registrations into one ordered table per verb.
// Registration order is the only ordering guarantee and duplicate paths are
// retained; picking between duplicates belongs to the dispatcher that
// consumes the tables.
//
// A Router is a setup-phase object: a single owner performs the whole chain
// of registration calls before the tables are handed to a dispatcher. No
// internal locking is provided; registering concurrently requires external
// synchronization.
type Router struct {
	tables [verbCount][]Route

	// basePath is empty while unset; once set by On it always starts and
	// ends with '/'.
	basePath string

	// defaultController backs registrations that omit an explicit
	// controller. Updated by Use and by any registration that passes a
	// controller explicitly.
	defaultController Controller

	middleware []Middleware

	// Logger receives internal-invariant diagnostics. When nil, the
	// standard log package is used.
	Logger fasthttp.Logger
}

// New returns an empty Router with no base path and no default controller.
func New() *Router {
	return &Router{}
}

// Handle registers path under verb, the shared routine behind the verb
// shortcuts. The path must match the segment grammar accepted by the
// shortcuts; it is normalized to a trailing slash and prefixed with the
// current base path, if one is set. A non-nil ctrl is stored with the route
// and becomes the router's default controller for subsequent calls; a nil
// ctrl falls back to the current default. Failures are reported as
// *InvalidRouteError and leave the verb's table untouched.
func (r *Router) Handle(verb Verb, path string, action Handler, ctrl Controller) error {
	if int(verb) >= verbCount {
		// Unreachable through the verb shortcuts; a fabricated Verb value
		// indicates a wiring bug in the caller, not a bad route.
		r.logf("router: dropping registration of %q: unknown verb tag %d", path, uint8(verb))
		return nil
	}

	if !isValidPath(path) {
		return &InvalidRouteError{Verb: verb.Method(), Path: path, Reason: "malformed path"}
	}

	path = normalizePath(path)

	if ctrl != nil {
		// An explicit controller also becomes the default for every
		// registration that follows.
		r.defaultController = ctrl
	} else if r.defaultController == nil {
		return &InvalidRouteError{Verb: verb.Method(), Path: path, Reason: "no controller bound"}
	} else {
		ctrl = r.defaultController
	}

	r.tables[verb] = append(r.tables[verb], Route{
		Path:       r.prependBasePath(path),
		Controller: ctrl,
		Action:     r.applyMiddleware(action),
	})

	return nil
}

// Get is a shortcut for router.Handle(Get, path, action, ctrl).
// It panics with *InvalidRouteError on failure and returns the router for
// chaining, as do the other verb shortcuts.
func (r *Router) Get(path string, action Handler, ctrl Controller) *Router {
	return r.must(r.Handle(Get, path, action, ctrl))
}

// Post is a shortcut for router.Handle(Post, path, action, ctrl).
func (r *Router) Post(path string, action Handler, ctrl Controller) *Router {
	return r.must(r.Handle(Post, path, action, ctrl))
}

// Put is a shortcut for router.Handle(Put, path, action, ctrl).
func (r *Router) Put(path string, action Handler, ctrl Controller) *Router {
	return r.must(r.Handle(Put, path, action, ctrl))
}

// Patch is a shortcut for router.Handle(Patch, path, action, ctrl).
func (r *Router) Patch(path string, action Handler, ctrl Controller) *Router {
	return r.must(r.Handle(Patch, path, action, ctrl))
}

// Delete is a shortcut for router.Handle(Delete, path, action, ctrl).
func (r *Router) Delete(path string, action Handler, ctrl Controller) *Router {
	return r.must(r.Handle(Delete, path, action, ctrl))
}

// Options is a shortcut for router.Handle(Options, path, action, ctrl).
func (r *Router) Options(path string, action Handler, ctrl Controller) *Router {
	return r.must(r.Handle(Options, path, action, ctrl))
}

// On scopes subsequent registrations under path: the stored base path is
// "/" plus the normalized path, so it always starts and ends with '/'.
// Calling On again replaces the base path. Routes already in the tables
// keep whatever base path was active when they were registered.
//
// The root path "/" is rejected: a base path must be a real segment. On
// panics with *InvalidRouteError on a root or malformed path and returns
// the router for chaining.
func (r *Router) On(path string) *Router {
	if path == "/" {
		panic(&InvalidRouteError{Path: path, Reason: "base path must be a segment, not root"})
	}

	if !isValidPath(path) {
		panic(&InvalidRouteError{Path: path, Reason: "malformed base path"})
	}

	r.basePath = "/" + normalizePath(path)

	return r
}

// Use binds ctrl as the default controller for subsequent registrations.
// Controller scoping pairs with a base path; calling Use while no base path
// is set panics with *InvalidRouteError. Returns the router for chaining.
func (r *Router) Use(ctrl Controller) *Router {
	if r.basePath == "" {
		panic(&InvalidRouteError{Reason: "controller mount without base path"})
	}

	r.defaultController = ctrl

	return r
}

// Routes returns the table for verb in registration order, or nil for an
// unsupported verb. The returned slice is the router's backing storage;
// callers must not mutate it.
func (r *Router) Routes(verb Verb) []Route {
	if int(verb) >= verbCount {
		return nil
	}

	return r.tables[verb]
}

// List returns all registered paths grouped by method.
func (r *Router) List() map[string][]string {
	list := make(map[string][]string)

	for v, table := range r.tables {
		for _, route := range table {
			list[Verb(v).Method()] = append(list[Verb(v).Method()], route.Path)
		}
	}

	return list
}

// Allowed returns the Allow header value for path: a comma-separated sorted
// list of the methods whose tables contain it, in its final registered
// form. OPTIONS is always included when the list is non-empty. The paths
// "*" and "/*" report the server-wide method list.
func (r *Router) Allowed(path string) string {
	allowed := make([]string, 0, verbCount)

	for v := 0; v < verbCount; v++ {
		verb := Verb(v)
		if verb == Options {
			continue
		}

		if path == "*" || path == "/*" { // server-wide
			if len(r.tables[v]) > 0 {
				allowed = append(allowed, verb.Method())
			}
			continue
		}

		if gstrings.Include(r.pathsFor(verb), path) {
			allowed = append(allowed, verb.Method())
		}
	}

	if len(allowed) == 0 {
		return ""
	}

	allowed = append(allowed, fasthttp.MethodOptions)

	// Sort allowed methods.
	// sort.Strings(allowed) unfortunately causes unnecessary allocations
	// due to allowed being moved to the heap and interface conversion
	for i, l := 1, len(allowed); i < l; i++ {
		for j := i; j > 0 && allowed[j] < allowed[j-1]; j-- {
			allowed[j], allowed[j-1] = allowed[j-1], allowed[j]
		}
	}

	return strings.Join(allowed, ", ")
}

// String renders every table as "METHOD path" lines, tables in verb order
// and entries in registration order.
func (r *Router) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	for v := 0; v < verbCount; v++ {
		for _, route := range r.tables[v] {
			b.WriteString(Verb(v).Method()) //nolint:errcheck
			b.WriteByte(' ')                //nolint:errcheck
			b.WriteString(route.Path)       //nolint:errcheck
			b.WriteByte('\n')               //nolint:errcheck
		}
	}

	return b.String()
}

// prependBasePath composes the final path by straight concatenation; both
// halves already carry their own slash conventions.
func (r *Router) prependBasePath(path string) string {
	if r.basePath == "" {
		return path
	}

	return r.basePath + path
}

func (r *Router) pathsFor(verb Verb) []string {
	paths := make([]string, len(r.tables[verb]))
	for i, route := range r.tables[verb] {
		paths[i] = route.Path
	}

	return paths
}

func (r *Router) must(err error) *Router {
	if err != nil {
		panic(err)
	}

	return r
}

func (r *Router) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
		return
	}

	log.Printf(format, args...)
}
