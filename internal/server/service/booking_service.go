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

// BookingService holds the booking collection in memory, seeded with
// sample rows. Nothing is persisted.
type BookingService struct {
	catalog *CatalogService
	mu      sync.RWMutex
	rows    map[string]model.Booking
}

func NewBookingService(catalog *CatalogService) *BookingService {
	svc := &BookingService{
		catalog: catalog,
		rows:    map[string]model.Booking{},
	}
	svc.seed()
	return svc
}

func (s *BookingService) seed() {
	now := time.Now().UTC()
	samples := []model.Booking{
		{
			ID: uuid.NewString(), CustomerName: "Marco Diaz", CustomerPhone: "555-0134",
			Vehicle: "Toyota Camry 2021", ServiceName: "Exterior Wash", Price: 24.99,
			ScheduledAt: now.Add(26 * time.Hour), Status: model.BookingConfirmed,
			CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID: uuid.NewString(), CustomerName: "Priya Nair", CustomerPhone: "555-0177",
			Vehicle: "Tesla Model 3", ServiceName: "Full Detailing", Price: 189.00,
			ScheduledAt: now.Add(50 * time.Hour), Status: model.BookingPending,
			Notes:     "ceramic coat quote requested",
			CreatedAt: now.Add(-20 * time.Hour), UpdatedAt: now.Add(-20 * time.Hour),
		},
		{
			ID: uuid.NewString(), CustomerName: "Joel Kim", CustomerPhone: "555-0110",
			Vehicle: "Ford F-150", ServiceName: "Interior Deep Clean", Price: 89.50,
			ScheduledAt: now.Add(-30 * time.Hour), Status: model.BookingCompleted,
			CreatedAt: now.Add(-96 * time.Hour), UpdatedAt: now.Add(-28 * time.Hour),
		},
		{
			ID: uuid.NewString(), CustomerName: "Ana Sousa", CustomerPhone: "555-0152",
			Vehicle: "Honda Civic", ServiceName: "Exterior Wash", Price: 24.99,
			ScheduledAt: now.Add(-6 * time.Hour), Status: model.BookingCancelled,
			Notes:     "customer rescheduled twice",
			CreatedAt: now.Add(-72 * time.Hour), UpdatedAt: now.Add(-7 * time.Hour),
		},
	}

	for _, b := range samples {
		s.rows[b.ID] = b
	}

	if s.catalog != nil {
		for id := range s.rows {
			b := s.rows[id]
			if offering, err := s.catalog.FindByName(b.ServiceName); err == nil {
				b.ServiceID = offering.ID
				s.rows[id] = b
			}
		}
	}
}

func (s *BookingService) List() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Booking, 0, len(s.rows))
	for _, b := range s.rows {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out
}

func (s *BookingService) Create(req model.CreateBookingRequest) (model.Booking, error) {
	if req.CustomerName == "" || req.Vehicle == "" || req.ServiceID == "" || req.ScheduledAt == "" {
		return model.Booking{}, apierror.New("BAD_REQUEST", "customer_name, vehicle, service_id and scheduled_at are required", "", http.StatusBadRequest)
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return model.Booking{}, apierror.New("BAD_REQUEST", "scheduled_at must be RFC 3339", req.ScheduledAt, http.StatusBadRequest)
	}

	offering, err := s.catalog.Get(req.ServiceID)
	if err != nil {
		return model.Booking{}, err
	}
	if !offering.Active {
		return model.Booking{}, apierror.New("BAD_REQUEST", "service is not currently offered", offering.Name, http.StatusBadRequest)
	}

	now := time.Now().UTC()
	booking := model.Booking{
		ID:            uuid.NewString(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Vehicle:       req.Vehicle,
		ServiceID:     offering.ID,
		ServiceName:   offering.Name,
		ScheduledAt:   scheduledAt,
		Status:        model.BookingPending,
		Price:         offering.Price,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.rows[booking.ID] = booking
	s.mu.Unlock()

	return booking, nil
}

func (s *BookingService) Update(id string, req model.UpdateBookingRequest) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, exists := s.rows[id]
	if !exists {
		return model.Booking{}, apierror.New("NOT_FOUND", "booking not found", id, http.StatusNotFound)
	}

	if req.Status != "" {
		if !model.ValidBookingStatus(req.Status) {
			return model.Booking{}, apierror.New("BAD_REQUEST", "invalid booking status", req.Status, http.StatusBadRequest)
		}
		booking.Status = req.Status
	}
	if req.ScheduledAt != "" {
		scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			return model.Booking{}, apierror.New("BAD_REQUEST", "scheduled_at must be RFC 3339", req.ScheduledAt, http.StatusBadRequest)
		}
		booking.ScheduledAt = scheduledAt
	}
	if req.Notes != "" {
		booking.Notes = req.Notes
	}

	booking.UpdatedAt = time.Now().UTC()
	s.rows[id] = booking
	return booking, nil
}

// Cancel marks a booking cancelled; the row is kept for analytics.
func (s *BookingService) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, exists := s.rows[id]
	if !exists {
		return apierror.New("NOT_FOUND", "booking not found", id, http.StatusNotFound)
	}

	booking.Status = model.BookingCancelled
	booking.UpdatedAt = time.Now().UTC()
	s.rows[id] = booking
	return nil
}
