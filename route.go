package router

import (
	"fmt"

	"github.com/valyala/fasthttp"
)

// Verb enumerates the HTTP methods the router keeps a table for. Every route
// lives in exactly one table, selected by the Verb it was registered under.
type Verb uint8

const (
	Get Verb = iota
	Post
	Put
	Patch
	Delete
	Options
)

const verbCount = int(Options) + 1

var verbMethods = [verbCount]string{
	Get:     fasthttp.MethodGet,
	Post:    fasthttp.MethodPost,
	Put:     fasthttp.MethodPut,
	Patch:   fasthttp.MethodPatch,
	Delete:  fasthttp.MethodDelete,
	Options: fasthttp.MethodOptions,
}

// Method returns the HTTP method string for v, or "" when v is not one of
// the supported verbs.
func (v Verb) Method() string {
	if int(v) >= verbCount {
		return ""
	}
	return verbMethods[v]
}

func (v Verb) String() string {
	if m := v.Method(); m != "" {
		return m
	}
	return fmt.Sprintf("Verb(%d)", uint8(v))
}

// Handler is the action registered for a route. The router stores it and
// hands it to the dispatcher untouched; it is never invoked here.
type Handler func(req *fasthttp.Request, resp *fasthttp.Response)

// Controller identifies a named handler group. The router never calls into
// it; it is kept as an identity token for default-controller resolution and
// handed back to the dispatcher alongside each route.
type Controller interface {
	Name() string
}

// Route is a single table entry. Path is the final registered path,
// normalized and prefixed with the base path that was active at
// registration time. A Route never changes once stored.
type Route struct {
	Path       string
	Controller Controller
	Action     Handler
}
