package shopassist

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/catalog"
	"github.com/kailas-cloud/shopassist/internal/domain/query"
	"github.com/kailas-cloud/shopassist/internal/matching"
	healthuc "github.com/kailas-cloud/shopassist/internal/usecase/health"
	"github.com/kailas-cloud/shopassist/internal/usecase/recommend"
)

// Client is the shopassist SDK entry point. Safe for concurrent use.
type Client struct {
	catalog   *catalog.Catalog
	recSvc    recommendUseCase
	healthSvc healthUseCase
	obs       *observer
}

// Internal interface for substitution in tests.
type recommendUseCase interface {
	Recommend(ctx context.Context, q query.Query) (recommend.Recommendation, error)
	Match(text, lang string) matching.Result
}

// New creates a Client over the built-in catalog.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	cat := catalog.Default()

	svc := recommend.New(cat, cfg.translator, zap.NewNop()).WithTranslateTimeout(cfg.translateTimeout)

	var checker healthuc.Checker
	if hc, ok := cfg.translator.(healthuc.Checker); ok {
		checker = hc
	}

	return &Client{
		catalog:   cat,
		recSvc:    svc,
		healthSvc: healthuc.New(nil, checker),
		obs:       obs,
	}, nil
}

// Match runs the offline pipeline: gender enhancement, normalization,
// category resolution and filtering. No translation is performed.
func (c *Client) Match(text, lang string) MatchResult {
	start := time.Now()

	res := c.recSvc.Match(text, lang)
	c.obs.match(res.Found)
	c.obs.observe("match", start, nil,
		slog.String("category", res.Match.Category),
		slog.Bool("found", res.Found),
	)
	return toMatchResult(text, res)
}

// Recommend runs the full pipeline, translating the query to English and the
// response back when a translator is configured. Translation failures degrade
// to untranslated text; only invalid queries and cancellation return errors.
func (c *Client) Recommend(ctx context.Context, text, lang string) (Recommendation, error) {
	start := time.Now()

	q, err := query.New(text, lang, "", nil)
	if err != nil {
		c.obs.observe("recommend", start, err)
		return Recommendation{}, fmt.Errorf("shopassist: %w", err)
	}
	rec, err := c.recSvc.Recommend(ctx, q)
	if err != nil {
		c.obs.observe("recommend", start, err, slog.String("language", lang))
		return Recommendation{}, fmt.Errorf("shopassist: %w", err)
	}
	c.obs.match(rec.Found)
	c.obs.observe("recommend", start, nil,
		slog.String("language", lang),
		slog.String("category", rec.Match.Category),
		slog.Bool("found", rec.Found),
	)
	return toRecommendation(rec), nil
}

// Products returns the full catalog in display order.
func (c *Client) Products() []Product {
	return toProducts(c.catalog.All())
}

// Product returns a single catalog entry by ID.
func (c *Client) Product(id string) (Product, error) {
	start := time.Now()
	p, err := c.catalog.ByID(id)
	c.obs.observe("product", start, err, slog.String("id", id))
	if err != nil {
		return Product{}, fmt.Errorf("shopassist: %w", err)
	}
	return toProduct(p), nil
}
