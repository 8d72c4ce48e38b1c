// Package chi exposes the shopping assistant over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/catalog"
	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/action"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
	"github.com/kailas-cloud/shopassist/internal/domain/query"
	logpkg "github.com/kailas-cloud/shopassist/internal/logger"
	"github.com/kailas-cloud/shopassist/internal/usecase/assistant"
	healthuc "github.com/kailas-cloud/shopassist/internal/usecase/health"
	"github.com/kailas-cloud/shopassist/internal/usecase/recommend"
	"github.com/kailas-cloud/shopassist/internal/version"
)

const guestUserID = "guest"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements the HTTP API.
type Server struct {
	recommend     *recommend.Service
	assistant     *assistant.Service
	catalog       *catalog.Catalog
	translator    domain.Translator
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. translator may be nil, which makes
// POST /api/translate report translation_failed for non-trivial requests.
func NewServer(
	recs *recommend.Service,
	assist *assistant.Service,
	cat *catalog.Catalog,
	translator domain.Translator,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		recommend:  recs,
		assistant:  assist,
		catalog:    cat,
		translator: translator,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, CodeInvalidQuery),
		sentinelHandler(domain.ErrInvalidAction, http.StatusBadRequest, CodeInvalidAction),
		sentinelHandler(domain.ErrUnsupportedLanguage, http.StatusBadRequest, CodeUnsupportedLanguage),
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, CodeProductNotFound),
		sentinelHandler(domain.ErrTranslationFailed, http.StatusBadGateway, CodeTranslationFailed),
		sentinelHandler(domain.ErrAssistantProviderError, http.StatusBadGateway, CodeAssistantProviderError),
		sentinelHandler(domain.ErrAssistantUnavailable, http.StatusServiceUnavailable, CodeAssistantUnavailable),
	}
	return s
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Version,
	})
}

// ListLanguages handles GET /api/languages.
func (s *Server) ListLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{Languages: language.Supported()})
}

// Translate handles POST /api/translate.
func (s *Server) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if code, err := decodeRequest(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}
	from := req.From
	if from == "" {
		from = language.English
	}
	to := req.To
	if to == "" {
		to = language.English
	}
	for _, code := range []string{from, to} {
		if _, err := language.Parse(code); err != nil {
			s.handleDomainError(w, r, err)
			return
		}
	}

	if req.Text == "" || language.Same(from, to) {
		writeJSON(w, http.StatusOK, TranslateResponse{TranslatedText: req.Text})
		return
	}
	if s.translator == nil {
		s.handleDomainError(w, r, domain.ErrTranslationFailed)
		return
	}

	out, err := s.translator.Translate(r.Context(), req.Text, from, to)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TranslateResponse{TranslatedText: out})
}

// Recommend handles POST /api/recommendations.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendationRequest
	if code, err := decodeRequest(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}

	ctx, _ := logpkg.WithFields(r.Context(), zap.String("language", req.Language))
	r = r.WithContext(ctx)

	q, err := query.New(req.Query, req.Language, req.UserID, req.Context)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	rec, err := s.recommend.Recommend(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RecommendationResponse{
		Response:               rec.Response,
		TranslatedResponse:     rec.TranslatedResponse,
		ProductRecommendations: productsToDTO(rec.Products),
	})
}

// Chat handles POST /api/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if code, err := decodeRequest(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}
	userID := req.UserID
	if userID == "" {
		userID = guestUserID
	}

	ctx, _ := logpkg.WithFields(r.Context(),
		zap.String("language", req.Language),
		zap.String("user_id", userID),
	)
	r = r.WithContext(ctx)

	q, err := query.New(req.Message, req.Language, userID, nil)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	reply, err := s.assistant.Chat(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Response:             reply.Response,
		TranslatedResponse:   reply.TranslatedResponse,
		NeedsRecommendations: reply.NeedsRecommendations,
		Actions:              reply.Actions,
	})
}

// HandleAction handles POST /api/action.
func (s *Server) HandleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if code, err := decodeRequest(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}

	qc := req.Context
	q, err := query.New(qc.Query, qc.Language, qc.UserID, qc.Context)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	payload := req.Action.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	a := action.Action{Type: action.Type(req.Action.Type), Payload: payload}

	res, err := s.assistant.HandleAction(r.Context(), a, q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := ActionResponse{
		Response:           res.Response,
		TranslatedResponse: res.TranslatedResponse,
	}
	if res.Recommendations != nil {
		resp.ProductRecommendations = productsToDTO(res.Recommendations)
	}
	if res.SearchResults != nil {
		resp.SearchResults = productsToDTO(res.SearchResults)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Search handles POST /api/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if code, err := decodeRequest(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}
	if _, err := language.Parse(req.Language); err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	found := s.assistant.Search(r.Context(), req.Query, req.Language)
	writeJSON(w, http.StatusOK, ProductsResponse{Products: productsToDTO(found)})
}

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ProductsResponse{Products: productsToDTO(s.catalog.All())})
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request, id string, params GetProductParams) {
	p, err := s.catalog.ByID(id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	if params.Language != nil && !language.IsEnglish(*params.Language) {
		if _, err := language.Parse(*params.Language); err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		p = p.WithName(s.recommend.Localize(r.Context(), p.Name(), *params.Language))
	}

	writeJSON(w, http.StatusOK, productToDTO(p))
}

// GetRelatedProducts handles GET /api/products/{id}/related.
func (s *Server) GetRelatedProducts(
	w http.ResponseWriter, r *http.Request, id string, params GetRelatedProductsParams,
) {
	limit := catalog.DefaultRelated
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit < 1 || limit > s.catalog.Len() {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "limit is out of range")
		return
	}

	related, err := s.catalog.Related(id, limit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ProductsResponse{Products: productsToDTO(related)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrInvalidAction,
		domain.ErrUnsupportedLanguage,
		domain.ErrProductNotFound,
		domain.ErrTranslationFailed,
		domain.ErrAssistantProviderError,
		domain.ErrAssistantUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
