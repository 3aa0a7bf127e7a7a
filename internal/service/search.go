package service

import (
	"context"
	"fmt"
	"time"

	"propertyfinder/internal/metrics"
	"propertyfinder/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PropertyStore is the record store the search service reads from
type PropertyStore interface {
	Filter(ctx context.Context, predicates []model.Predicate, orderBy model.OrderBy) ([]model.Property, error)
	ListAll(ctx context.Context) ([]model.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
	GetAIOverview(ctx context.Context, id uuid.UUID) (*string, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch model.PropertyPatch) error
}

// SearchService handles search business logic
type SearchService struct {
	store  PropertyStore
	parser *QueryParser
	logger *zap.Logger
}

// NewSearchService creates a new search service
func NewSearchService(store PropertyStore, parser *QueryParser, logger *zap.Logger) *SearchService {
	if parser == nil {
		parser = NewQueryParser()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		store:  store,
		parser: parser,
		logger: logger,
	}
}

// SearchProperties returns the properties matching a free-text query, newest first.
// A store failure on either attempt is returned as a *ReadError.
func (s *SearchService) SearchProperties(ctx context.Context, query string) ([]model.Property, error) {
	resp, err := s.Search(ctx, &model.SearchRequest{Query: query})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Search performs a search and reports how the query was interpreted
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	startTime := time.Now()

	parsed := s.parser.Parse(req.Query)
	plan := BuildPredicates(parsed)

	branch := metrics.BranchSignals
	if parsed.ExactMatch != nil {
		branch = metrics.BranchExact
	}
	metrics.SearchesTotal.WithLabelValues(branch).Inc()
	defer func() {
		metrics.SearchDuration.WithLabelValues(branch).Observe(time.Since(startTime).Seconds())
	}()

	log := s.logger.With(zap.String("branch", branch), zap.String("query", req.Query))

	results, err := s.store.Filter(ctx, plan.Primary, plan.OrderBy)
	if err != nil {
		metrics.SearchErrors.WithLabelValues(metrics.AttemptPrimary).Inc()
		log.Error("primary search read failed",
			zap.Stringers("predicates", plan.Primary),
			zap.Error(err))
		return nil, &ReadError{Attempt: metrics.AttemptPrimary, Err: err}
	}

	fallbackUsed := false
	if len(results) == 0 && plan.HasFallback() {
		fallbackUsed = true
		log.Debug("no rows for exact reference, retrying by location",
			zap.Stringers("predicates", plan.Fallback))

		results, err = s.store.Filter(ctx, plan.Fallback, plan.OrderBy)
		if err != nil {
			metrics.SearchErrors.WithLabelValues(metrics.AttemptRetry).Inc()
			log.Error("fallback search read failed",
				zap.Stringers("predicates", plan.Fallback),
				zap.Error(err))
			return nil, &ReadError{Attempt: metrics.AttemptRetry, Err: err}
		}

		outcome := "hit"
		if len(results) == 0 {
			outcome = "miss"
		}
		metrics.SearchFallbacks.WithLabelValues(outcome).Inc()
	}

	if results == nil {
		results = []model.Property{}
	}

	took := time.Since(startTime).Milliseconds()
	log.Info("search completed",
		zap.Int("results", len(results)),
		zap.Bool("fallback_used", fallbackUsed),
		zap.Int64("took_ms", took))

	return &model.SearchResponse{
		Results:      results,
		Total:        len(results),
		Parsed:       parsed,
		FallbackUsed: fallbackUsed,
		Took:         took,
	}, nil
}

// ListProperties returns every property, newest first
func (s *SearchService) ListProperties(ctx context.Context) ([]model.Property, error) {
	properties, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	if properties == nil {
		properties = []model.Property{}
	}
	return properties, nil
}

// GetProperty retrieves a single property by ID
func (s *SearchService) GetProperty(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	return s.store.GetByID(ctx, id)
}

// GetAIOverview returns the generated overview of a property, nil when none exists
func (s *SearchService) GetAIOverview(ctx context.Context, id uuid.UUID) (*string, error) {
	return s.store.GetAIOverview(ctx, id)
}

// UpdateProperty verifies the property exists, applies patch and returns the
// stored record after the update.
func (s *SearchService) UpdateProperty(ctx context.Context, id uuid.UUID, patch model.PropertyPatch) (*model.Property, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.store.UpdateByID(ctx, id, patch); err != nil {
		s.logger.Error("property update failed", zap.Stringer("id", id), zap.Error(err))
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}
