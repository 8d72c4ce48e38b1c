// Package assistant implements the conversational shopping assistant: model
// replies with suggested actions, and the dispatch of those actions.
package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/action"
	"github.com/kailas-cloud/shopassist/internal/domain/product"
	"github.com/kailas-cloud/shopassist/internal/domain/query"
	"github.com/kailas-cloud/shopassist/internal/matching"
	"github.com/kailas-cloud/shopassist/internal/usecase/recommend"
)

// Action replies.
const (
	ReplyAddedToCart   = "I've added that item to your cart!"
	ReplyProductDetail = "Here are the details for that product."
	ReplyUnknownAction = "I'm not sure how to handle that request."
	replySearchFormat  = "I found %d products matching your search."
)

// Reply is the assistant's answer to a chat message.
type Reply struct {
	Response             string
	TranslatedResponse   string
	NeedsRecommendations bool
	Actions              []action.Action
}

// ActionResult is the outcome of one dispatched action.
type ActionResult struct {
	Response           string
	TranslatedResponse string
	Recommendations    []product.Product
	SearchResults      []product.Product
	Recommendation     *recommend.Recommendation
}

// Service answers chat messages and dispatches assistant actions.
type Service struct {
	model    ChatModel
	recs     Recommender
	searcher Searcher
	logger   *zap.Logger
}

// New creates an assistant. model may be nil, in which case Chat returns
// domain.ErrAssistantUnavailable and actions still work.
func New(model ChatModel, recs Recommender, searcher Searcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{model: model, recs: recs, searcher: searcher, logger: logger}
}

// Available reports whether a chat model is configured.
func (s *Service) Available() bool { return s.model != nil }

// Chat asks the model for a reply to q and localizes it.
func (s *Service) Chat(ctx context.Context, q query.Query) (Reply, error) {
	if s.model == nil {
		return Reply{}, domain.ErrAssistantUnavailable
	}

	enhanced := matching.Enhance(q.Text(), q.Language())
	raw, err := s.model.Generate(ctx, buildPrompt(enhanced, q.Language(), q.Context()))
	if err != nil {
		return Reply{}, fmt.Errorf("generate reply: %w", err)
	}

	reply := parseReply(raw, enhanced)
	s.logger.Debug("Assistant reply parsed",
		zap.Int("actions", len(reply.Actions)),
		zap.Bool("needs_recommendations", reply.NeedsRecommendations),
	)

	reply.TranslatedResponse = s.recs.Localize(ctx, reply.Response, q.Language())
	return reply, nil
}

// HandleAction executes a suggested action in the context of q.
func (s *Service) HandleAction(ctx context.Context, a action.Action, q query.Query) (ActionResult, error) {
	var res ActionResult

	switch a.Type {
	case action.GetRecommendations:
		rec, err := s.recs.Recommend(ctx, q)
		if err != nil {
			return ActionResult{}, fmt.Errorf("recommend: %w", err)
		}
		return ActionResult{
			Response:           rec.Response,
			TranslatedResponse: rec.TranslatedResponse,
			Recommendations:    rec.Products,
			Recommendation:     &rec,
		}, nil
	case action.SearchProducts:
		text := a.String("query")
		if text == "" {
			text = q.Text()
		}
		res.SearchResults = s.recs.Lookup(ctx, text, q.Language()).Products
		res.Response = fmt.Sprintf(replySearchFormat, len(res.SearchResults))
	case action.AddToCart:
		res.Response = ReplyAddedToCart
	case action.ViewProduct:
		res.Response = ReplyProductDetail
	default:
		s.logger.Info("Unknown assistant action", zap.String("type", string(a.Type)))
		res.Response = ReplyUnknownAction
	}

	res.TranslatedResponse = s.recs.Localize(ctx, res.Response, q.Language())
	return res, nil
}

// Search finds products by category or name substring, translating text to
// English first when lang is not English. Unlike SEARCH_PRODUCTS it does not
// use the synonym table.
func (s *Service) Search(ctx context.Context, text, lang string) []product.Product {
	found := s.searcher.Search(s.recs.ToEnglish(ctx, text, lang))
	if found == nil {
		return []product.Product{}
	}
	return found
}
