// Package router registra as rotas da API sobre o httprouter
package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Aplicados na ordem da lista, o primeiro é o mais externo
}

type Router struct {
	router *httprouter.Router
	routes *[]Route
}

type ConfigRouter func(router *Router)

// WithRoutes adiciona um grupo de rotas
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

func New(configs ...ConfigRouter) Router {
	rt := httprouter.New()
	rt.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	rt.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{"method": r.Method})
	})
	// OPTIONS fica com o middleware de CORS
	rt.HandleOPTIONS = false

	router := &Router{
		router: rt,
		routes: &[]Route{},
	}

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas envolvendo cada handler nos seus middlewares
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		*r.routes = append(*r.routes, route)
	}
}

// Routes rotas registradas, na ordem de registro
func (r Router) Routes() []Route {
	routes := make([]Route, len(*r.routes))
	copy(routes, *r.routes)
	return routes
}
