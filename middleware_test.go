package router

import (
	"reflect"
	"testing"

	"github.com/valyala/fasthttp"
)

func TestRouter_AddMiddleware(t *testing.T) {
	ctrl := &controller{name: "widgets"}

	var order []string
	mw := func(tag string) Middleware {
		return func(next Handler) Handler {
			return func(req *fasthttp.Request, resp *fasthttp.Response) {
				order = append(order, tag)
				next(req, resp)
			}
		}
	}

	r := New()
	r.Get("before", noopAction, ctrl)
	r.AddMiddleware(mw("first"), mw("second"))
	r.Get("after", func(_ *fasthttp.Request, _ *fasthttp.Response) {
		order = append(order, "action")
	}, nil)

	routes := r.Routes(Get)
	if len(routes) != 2 {
		t.Fatalf("GET table has %d entries, want 2", len(routes))
	}

	routes[1].Action(nil, nil)

	want := []string{"first", "second", "action"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("invocation order == %v, want %v", order, want)
	}

	// routes registered before AddMiddleware stay unwrapped
	order = order[:0]
	routes[0].Action(nil, nil)

	if len(order) != 0 {
		t.Errorf("earlier route was rewrapped: %v", order)
	}
}
