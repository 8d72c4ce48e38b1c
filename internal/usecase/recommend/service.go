package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain/event"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/domain/query"
	"github.com/kailas-cloud/shopassist/internal/matching"
	"github.com/kailas-cloud/shopassist/internal/metrics"
)

// DefaultTranslateTimeout bounds each translation round-trip.
const DefaultTranslateTimeout = 10 * time.Second

var errNoTranslator = errors.New("no translator configured")

// Recommendation is the result of one pipeline run.
type Recommendation struct {
	Response           string
	TranslatedResponse string
	Products           []product.Product
	Match              matching.Match
	FinalQuery         string
	Found              bool
	Outcome            string
}

// Service runs the recommendation pipeline over a fixed catalog.
type Service struct {
	catalog    Catalog
	translator Translator
	events     EventPublisher
	timeout    time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// New creates a recommendation service. translator may be nil, in which case
// non-English queries are matched untranslated.
func New(catalog Catalog, translator Translator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:    catalog,
		translator: translator,
		timeout:    DefaultTranslateTimeout,
		logger:     logger,
		now:        time.Now,
	}
}

// WithEvents enables analytics events.
func (s *Service) WithEvents(p EventPublisher) *Service {
	s.events = p
	return s
}

// WithTranslateTimeout sets the per-call translation timeout.
func (s *Service) WithTranslateTimeout(d time.Duration) *Service {
	if d > 0 {
		s.timeout = d
	}
	return s
}

// Recommend turns a shopping query into a capped product list and a
// localized message. Translation failures degrade; they are never returned.
func (s *Service) Recommend(ctx context.Context, q query.Query) (Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, fmt.Errorf("recommend: %w", err)
	}

	res := s.Lookup(ctx, q.Text(), q.Language())

	s.logger.Debug("Query resolved",
		zap.String("final_query", res.FinalQuery),
		zap.String("category", res.Match.Category),
		zap.String("matched_key", res.Match.Key),
		zap.Bool("found", res.Found),
		zap.Int("products", len(res.Products)),
	)

	outcome := outcomeOf(res.Match, res.Found)
	metrics.RecommendationsTotal.WithLabelValues(outcome).Inc()

	rec := Recommendation{
		Response:   composeMessage(res.FinalQuery, res.Found, len(res.Products)),
		Products:   res.Products,
		Match:      res.Match,
		FinalQuery: res.FinalQuery,
		Found:      res.Found,
		Outcome:    outcome,
	}
	rec.TranslatedResponse = s.localize(ctx, rec.Response, q.Language())

	s.publish(ctx, q, rec)
	return rec, nil
}

// Lookup runs the matching pipeline for text in lang: gender enhancement in
// the source language, translation to English, then matching.Run. A failed
// translation matches the original text.
func (s *Service) Lookup(ctx context.Context, text, lang string) matching.Result {
	enhanced := matching.Enhance(text, lang)
	if language.IsEnglish(lang) {
		return matching.Run(s.catalog.All(), enhanced)
	}

	translated, err := s.translate(ctx, enhanced, lang, language.English)
	if err != nil {
		s.logger.Warn("Query translation failed, matching original text",
			zap.String("language", lang),
			zap.Error(err),
		)
		return matching.Run(s.catalog.All(), text)
	}
	return matching.Run(s.catalog.All(), translated)
}

// Match runs the matching pipeline without translation.
func (s *Service) Match(text, lang string) matching.Result {
	return matching.Run(s.catalog.All(), matching.Enhance(text, lang))
}

// ToEnglish translates text from lang into English. Failures return text.
func (s *Service) ToEnglish(ctx context.Context, text, lang string) string {
	if language.IsEnglish(lang) {
		return text
	}
	translated, err := s.translate(ctx, text, lang, language.English)
	if err != nil {
		s.logger.Warn("Text translation failed, using original",
			zap.String("language", lang),
			zap.Error(err),
		)
		return text
	}
	return translated
}

// Localize translates an English message into lang. Failures return msg.
func (s *Service) Localize(ctx context.Context, msg, lang string) string {
	return s.localize(ctx, msg, lang)
}

func (s *Service) localize(ctx context.Context, msg, lang string) string {
	if language.IsEnglish(lang) {
		return msg
	}
	translated, err := s.translate(ctx, msg, language.English, lang)
	if err != nil {
		s.logger.Warn("Response translation failed, returning English",
			zap.String("language", lang),
			zap.Error(err),
		)
		return msg
	}
	return translated
}

func (s *Service) translate(ctx context.Context, text, from, to string) (string, error) {
	if s.translator == nil {
		return "", errNoTranslator
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.translator.Translate(ctx, text, from, to)
	if err != nil {
		return "", fmt.Errorf("translate %s->%s: %w", from, to, err)
	}
	return out, nil
}

func (s *Service) publish(ctx context.Context, q query.Query, rec Recommendation) {
	if s.events == nil {
		return
	}
	ev := event.RecommendationServed{
		ID:         uuid.NewString(),
		Type:       event.TypeRecommendationServed,
		OccurredAt: s.now().UTC(),
		UserID:     q.UserID(),
		Language:   q.Language(),
		Query:      q.Text(),
		FinalQuery: rec.FinalQuery,
		Category:   rec.Match.Category,
		ProductIDs: product.IDs(rec.Products),
		Found:      rec.Found,
	}
	if err := s.events.PublishRecommendation(ctx, ev); err != nil {
		s.logger.Warn("Failed to publish recommendation event",
			zap.String("event_id", ev.ID),
			zap.Error(err),
		)
	}
}

func outcomeOf(m matching.Match, found bool) string {
	switch {
	case !found:
		return metrics.OutcomeFallback
	case m.Found():
		return metrics.OutcomeMatched
	default:
		return metrics.OutcomeNameMatch
	}
}
