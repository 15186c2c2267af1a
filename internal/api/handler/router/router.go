package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Route descreve um endpoint da API e os middlewares que valem só para ele
// (tipicamente a checagem de role).
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Option func(*Router)

// WithRoutes agrupa as rotas de um domínio (reporting, pedidos, provas...)
// na montagem do router.
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.AddRoutes(routes...)
	}
}

type Router struct {
	mux *httprouter.Router
}

func New(opts ...Option) Router {
	r := &Router{
		mux: httprouter.New(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return *r
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// AddRoutes registra as rotas aplicando os middlewares específicos de cada
// uma, do último para o primeiro.
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.mux.Handler(route.Method, route.Path, handler)
	}
}
