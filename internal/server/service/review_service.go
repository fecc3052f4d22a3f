package service

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"wash-admin/internal/model"
	"wash-admin/pkg/apierror"
)

// ReviewService holds customer reviews and feedback messages, seeded
// and in-memory, plus the analytics rollup over everything.
type ReviewService struct {
	bookings *BookingService
	catalog  *CatalogService
	mu       sync.RWMutex
	reviews  map[string]model.Review
	feedback map[string]model.Feedback
}

func NewReviewService(bookings *BookingService, catalog *CatalogService) *ReviewService {
	svc := &ReviewService{
		bookings: bookings,
		catalog:  catalog,
		reviews:  map[string]model.Review{},
		feedback: map[string]model.Feedback{},
	}
	svc.seed()
	return svc
}

func (s *ReviewService) seed() {
	now := time.Now().UTC()
	reviews := []model.Review{
		{ID: uuid.NewString(), CustomerName: "Joel Kim", Rating: 5, Status: model.ReviewApproved,
			Comment: "Interior looks brand new, worth every cent.", CreatedAt: now.Add(-26 * time.Hour)},
		{ID: uuid.NewString(), CustomerName: "Lena Park", Rating: 4, Status: model.ReviewPending,
			Comment: "Great wash, waiting area could use more seats.", CreatedAt: now.Add(-10 * time.Hour)},
		{ID: uuid.NewString(), CustomerName: "anonymous", Rating: 1, Status: model.ReviewRejected,
			Comment: "spam link http://example.invalid", CreatedAt: now.Add(-5 * time.Hour)},
	}
	for _, r := range reviews {
		s.reviews[r.ID] = r
	}

	feedback := []model.Feedback{
		{ID: uuid.NewString(), CustomerName: "Marco Diaz", Email: "marco@example.com",
			Subject: "Loyalty program?", Message: "Do you plan a monthly pass?", Resolved: false,
			CreatedAt: now.Add(-50 * time.Hour)},
		{ID: uuid.NewString(), CustomerName: "Priya Nair", Email: "priya@example.com",
			Subject: "Ceramic coating", Message: "Please send a quote for a Model 3.", Resolved: true,
			CreatedAt: now.Add(-70 * time.Hour)},
	}
	for _, f := range feedback {
		s.feedback[f.ID] = f
	}
}

func (s *ReviewService) ListReviews() []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *ReviewService) Moderate(id string, status string) (model.Review, error) {
	switch status {
	case model.ReviewApproved, model.ReviewRejected, model.ReviewPending:
	default:
		return model.Review{}, apierror.New("BAD_REQUEST", "status must be pending, approved or rejected", status, http.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review, exists := s.reviews[id]
	if !exists {
		return model.Review{}, apierror.New("NOT_FOUND", "review not found", id, http.StatusNotFound)
	}

	review.Status = status
	s.reviews[id] = review
	return review, nil
}

func (s *ReviewService) DeleteReview(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[id]; !exists {
		return apierror.New("NOT_FOUND", "review not found", id, http.StatusNotFound)
	}

	delete(s.reviews, id)
	return nil
}

func (s *ReviewService) ListFeedback() []model.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Feedback, 0, len(s.feedback))
	for _, f := range s.feedback {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *ReviewService) ResolveFeedback(id string, resolved bool) (model.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.feedback[id]
	if !exists {
		return model.Feedback{}, apierror.New("NOT_FOUND", "feedback not found", id, http.StatusNotFound)
	}

	entry.Resolved = resolved
	s.feedback[id] = entry
	return entry, nil
}

// Summary computes the dashboard rollup from the live collections.
// Revenue counts completed bookings only; the average rating covers
// approved reviews.
func (s *ReviewService) Summary() model.AnalyticsSummary {
	summary := model.AnalyticsSummary{
		BookingsByStatus: map[string]int{},
	}

	for _, b := range s.bookings.List() {
		summary.TotalBookings++
		summary.BookingsByStatus[b.Status]++
		switch b.Status {
		case model.BookingCompleted:
			summary.CompletedBookings++
			summary.Revenue += b.Price
		case model.BookingCancelled:
			summary.CancelledBookings++
		}
	}

	s.mu.RLock()
	ratingSum, rated := 0, 0
	for _, r := range s.reviews {
		if r.Status == model.ReviewApproved {
			ratingSum += r.Rating
			rated++
		}
	}
	s.mu.RUnlock()

	if rated > 0 {
		summary.AverageRating = float64(ratingSum) / float64(rated)
	}
	summary.ActiveServices = s.catalog.ActiveOfferingCount()

	return summary
}
