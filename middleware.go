package router

// Middleware wraps an action at registration time. A middleware registered
// on the router applies to every route registered after the AddMiddleware
// call; routes already stored are not rewrapped.
type Middleware func(Handler) Handler

// AddMiddleware appends mw to the chain applied to subsequently registered
// actions. The first middleware added becomes the outermost wrapper.
// Returns the router for chaining.
func (r *Router) AddMiddleware(mw ...Middleware) *Router {
	r.middleware = append(r.middleware, mw...)

	return r
}

func (r *Router) applyMiddleware(action Handler) Handler {
	if len(r.middleware) == 0 {
		return action
	}

	for i := len(r.middleware) - 1; i >= 0; i-- {
		action = r.middleware[i](action)
	}

	return action
}
