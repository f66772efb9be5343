package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/stolovaya/canteen-api/internal/models"
	"github.com/stolovaya/canteen-api/internal/repository"
	"github.com/stolovaya/canteen-api/internal/store"
	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
)

const statsCacheKey = "canteen:admin:stats"

// OrderRequest is the payload for recording an order. student_id falls
// back to user_id, so a student ordering for themselves and a parent
// ordering for a child go through the same shape.
type OrderRequest struct {
	UserID    int64  `json:"user_id"`
	StudentID int64  `json:"student_id"`
	Dish      string `json:"dish"`
	Meal      string `json:"meal"`
}

// ReviewRequest is the payload for leaving a dish review.
type ReviewRequest struct {
	UserID    int64  `json:"user_id"`
	StudentID int64  `json:"student_id"`
	Dish      string `json:"dish"`
	Meal      string `json:"meal"`
	Review    string `json:"review"`
}

// MarkGivenRequest names the order a cook hands out. The pointer keeps a
// missing id distinguishable from id 0.
type MarkGivenRequest struct {
	ID *int64 `json:"id"`
}

// OrderService owns the order and review flows on top of the volatile
// stores, plus the admin aggregate view.
type OrderService struct {
	orders   *store.OrderStore
	reviews  *store.ReviewStore
	cache    *repository.CacheRepository
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
}

// NewOrderService creates an instance of OrderService. cache may be built
// over a nil Redis client; stats then recompute on every call.
func NewOrderService(orders *store.OrderStore, reviews *store.ReviewStore, cache *repository.CacheRepository, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		orders:   orders,
		reviews:  reviews,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// PlaceOrder records an order stamped with today's calendar date.
func (s *OrderService) PlaceOrder(ctx context.Context, req OrderRequest) (models.Order, error) {
	studentID := req.StudentID
	if studentID == 0 {
		studentID = req.UserID
	}

	order := s.orders.Add(models.Order{
		StudentID: studentID,
		OrderedBy: req.UserID,
		Dish:      req.Dish,
		Meal:      req.Meal,
		Date:      s.now().Format(models.OrderDateLayout),
	})

	s.invalidateStats(ctx)
	return order, nil
}

// LeaveReview appends a review. There is no check that a matching order
// exists.
func (s *OrderService) LeaveReview(ctx context.Context, req ReviewRequest) {
	studentID := req.StudentID
	if studentID == 0 {
		studentID = req.UserID
	}

	s.reviews.Add(models.Review{
		StudentID: studentID,
		OrderedBy: req.UserID,
		Dish:      req.Dish,
		Meal:      req.Meal,
		Review:    req.Review,
	})

	s.invalidateStats(ctx)
}

// OrdersToday returns the orders stamped with the server-local date at
// call time.
func (s *OrderService) OrdersToday() []models.Order {
	return s.orders.ByDate(s.now().Format(models.OrderDateLayout))
}

// MarkGiven flags an order as handed out.
func (s *OrderService) MarkGiven(ctx context.Context, req MarkGivenRequest) error {
	if req.ID == nil {
		return appErrors.Clone(appErrors.ErrValidation, "no id")
	}
	if !s.orders.MarkGiven(*req.ID) {
		return appErrors.ErrNotFound
	}
	return nil
}

// Reviews returns the full review sequence.
func (s *OrderService) Reviews() []models.Review {
	return s.reviews.All()
}

// StudentOrders returns the orders recorded for one student.
func (s *OrderService) StudentOrders(studentID int64) []models.Order {
	return s.orders.ByStudent(studentID)
}

// StudentReviews returns the reviews recorded for one student.
func (s *OrderService) StudentReviews(studentID int64) []models.Review {
	return s.reviews.ByStudent(studentID)
}

// Stats assembles the admin aggregate view, served from cache while the
// TTL holds.
func (s *OrderService) Stats(ctx context.Context) (models.Stats, error) {
	var cached models.Stats
	if s.cache != nil {
		start := time.Now()
		err := s.cache.Get(ctx, statsCacheKey, &cached)
		if s.metrics != nil {
			s.metrics.RecordCacheLookup(err == nil, time.Since(start))
		}
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
	}

	total, dishes := s.orders.Stats()
	stats := models.Stats{
		TotalOrders:   total,
		PopularDishes: dishes,
		Reviews:       s.reviews.All(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, statsCacheKey, stats, s.cacheTTL); err != nil {
			s.logger.Warn("stats cache write failed", zap.Error(err))
		}
	}

	return stats, nil
}

// Clear irreversibly empties both volatile sequences.
func (s *OrderService) Clear(ctx context.Context) {
	s.orders.Clear()
	s.reviews.Clear()
	s.invalidateStats(ctx)
}

func (s *OrderService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		s.logger.Warn("stats cache invalidation failed", zap.Error(err))
	}
}
