package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GetProductParams are the query parameters of GET /api/products/{id}.
type GetProductParams struct {
	Language *string `form:"language,omitempty" json:"language,omitempty"`
}

// GetRelatedProductsParams are the query parameters of GET /api/products/{id}/related.
type GetRelatedProductsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// InvalidParamError reports a path or query parameter that failed to bind.
type InvalidParamError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %v", e.ParamName, e.Err)
}

func (e *InvalidParamError) Unwrap() error { return e.Err }

// RouterOptions configures Handler.
type RouterOptions struct {
	BaseRouter       chi.Router
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler mounts the API routes on opts.BaseRouter (a new router when nil).
func Handler(s *Server, opts RouterOptions) http.Handler {
	r := opts.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if opts.ErrorHandlerFunc == nil {
		opts.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		}
	}
	b := binder{errorHandler: opts.ErrorHandlerFunc}

	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/languages", s.ListLanguages)
		r.Post("/translate", s.Translate)
		r.Post("/recommendations", s.Recommend)
		r.Post("/chat", s.Chat)
		r.Post("/action", s.HandleAction)
		r.Post("/search", s.Search)
		r.Get("/products", s.ListProducts)
		r.Get("/products/{id}", b.getProduct(s.GetProduct))
		r.Get("/products/{id}/related", b.getRelatedProducts(s.GetRelatedProducts))
	})
	return r
}

type binder struct {
	errorHandler func(w http.ResponseWriter, r *http.Request, err error)
}

func (b binder) productID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		b.errorHandler(w, r, &InvalidParamError{ParamName: "id", Err: err})
		return "", false
	}
	return id, true
}

func (b binder) getProduct(
	h func(w http.ResponseWriter, r *http.Request, id string, params GetProductParams),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := b.productID(w, r)
		if !ok {
			return
		}
		var params GetProductParams
		if err := runtime.BindQueryParameter("form", true, false, "language", r.URL.Query(), &params.Language); err != nil {
			b.errorHandler(w, r, &InvalidParamError{ParamName: "language", Err: err})
			return
		}
		h(w, r, id, params)
	}
}

func (b binder) getRelatedProducts(
	h func(w http.ResponseWriter, r *http.Request, id string, params GetRelatedProductsParams),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := b.productID(w, r)
		if !ok {
			return
		}
		var params GetRelatedProductsParams
		if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
			b.errorHandler(w, r, &InvalidParamError{ParamName: "limit", Err: err})
			return
		}
		h(w, r, id, params)
	}
}
