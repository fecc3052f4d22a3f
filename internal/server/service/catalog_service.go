package service

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"wash-admin/internal/model"
	"wash-admin/pkg/apierror"
)

// CatalogService owns the service offerings and the media gallery,
// both in-memory and seeded.
type CatalogService struct {
	mu        sync.RWMutex
	offerings map[string]model.ServiceOffering
	media     map[string]model.MediaItem
}

func NewCatalogService() *CatalogService {
	svc := &CatalogService{
		offerings: map[string]model.ServiceOffering{},
		media:     map[string]model.MediaItem{},
	}
	svc.seed()
	return svc
}

func (s *CatalogService) seed() {
	now := time.Now().UTC()
	offerings := []model.ServiceOffering{
		{ID: uuid.NewString(), Name: "Exterior Wash", Category: "basic", Price: 24.99, DurationMin: 30, Active: true,
			Description: "Hand wash, wheels and tire shine", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Interior Deep Clean", Category: "premium", Price: 89.50, DurationMin: 90, Active: true,
			Description: "Vacuum, shampoo, leather conditioning", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Full Detailing", Category: "detailing", Price: 189.00, DurationMin: 240, Active: true,
			Description: "Paint correction, wax, full interior", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Engine Bay Clean", Category: "premium", Price: 49.00, DurationMin: 45, Active: false,
			Description: "Degrease and dress", CreatedAt: now, UpdatedAt: now},
	}
	for _, o := range offerings {
		s.offerings[o.ID] = o
	}

	media := []model.MediaItem{
		{ID: uuid.NewString(), Title: "Before/after sedan detail", Kind: "image", URL: "/media/sedan-detail.jpg", UploadedAt: now.Add(-120 * time.Hour)},
		{ID: uuid.NewString(), Title: "Foam cannon wash", Kind: "video", URL: "/media/foam-wash.mp4", UploadedAt: now.Add(-72 * time.Hour)},
		{ID: uuid.NewString(), Title: "Showroom shine result", Kind: "image", URL: "/media/showroom.jpg", UploadedAt: now.Add(-24 * time.Hour)},
	}
	for _, item := range media {
		s.media[item.ID] = item
	}
}

func (s *CatalogService) ListOfferings() []model.ServiceOffering {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ServiceOffering, 0, len(s.offerings))
	for _, o := range s.offerings {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *CatalogService) Get(id string) (model.ServiceOffering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offering, exists := s.offerings[id]
	if !exists {
		return model.ServiceOffering{}, apierror.New("NOT_FOUND", "service not found", id, http.StatusNotFound)
	}
	return offering, nil
}

func (s *CatalogService) FindByName(name string) (model.ServiceOffering, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.offerings {
		if strings.EqualFold(o.Name, name) {
			return o, nil
		}
	}
	return model.ServiceOffering{}, apierror.New("NOT_FOUND", "service not found", name, http.StatusNotFound)
}

func (s *CatalogService) CreateOffering(req model.UpsertServiceRequest) (model.ServiceOffering, error) {
	if err := validateOffering(req); err != nil {
		return model.ServiceOffering{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.offerings {
		if strings.EqualFold(o.Name, req.Name) {
			return model.ServiceOffering{}, apierror.New("ALREADY_EXISTS", "a service with this name already exists", req.Name, http.StatusConflict)
		}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	offering := model.ServiceOffering{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.offerings[offering.ID] = offering
	return offering, nil
}

func (s *CatalogService) UpdateOffering(id string, req model.UpsertServiceRequest) (model.ServiceOffering, error) {
	if err := validateOffering(req); err != nil {
		return model.ServiceOffering{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	offering, exists := s.offerings[id]
	if !exists {
		return model.ServiceOffering{}, apierror.New("NOT_FOUND", "service not found", id, http.StatusNotFound)
	}

	offering.Name = req.Name
	offering.Description = req.Description
	offering.Category = req.Category
	offering.Price = req.Price
	offering.DurationMin = req.DurationMin
	if req.Active != nil {
		offering.Active = *req.Active
	}
	offering.UpdatedAt = time.Now().UTC()

	s.offerings[id] = offering
	return offering, nil
}

func (s *CatalogService) DeleteOffering(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.offerings[id]; !exists {
		return apierror.New("NOT_FOUND", "service not found", id, http.StatusNotFound)
	}

	delete(s.offerings, id)
	return nil
}

func (s *CatalogService) ActiveOfferingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, o := range s.offerings {
		if o.Active {
			count++
		}
	}
	return count
}

func (s *CatalogService) ListMedia() []model.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.MediaItem, 0, len(s.media))
	for _, item := range s.media {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out
}

func (s *CatalogService) DeleteMedia(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.media[id]; !exists {
		return apierror.New("NOT_FOUND", "media item not found", id, http.StatusNotFound)
	}

	delete(s.media, id)
	return nil
}

func validateOffering(req model.UpsertServiceRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apierror.New("BAD_REQUEST", "name is required", "", http.StatusBadRequest)
	}

	switch req.Category {
	case "basic", "premium", "detailing":
	default:
		return apierror.New("BAD_REQUEST", "category must be basic, premium or detailing", req.Category, http.StatusBadRequest)
	}

	if req.Price <= 0 {
		return apierror.New("BAD_REQUEST", "price must be positive", "", http.StatusBadRequest)
	}
	if req.DurationMin <= 0 {
		return apierror.New("BAD_REQUEST", "duration_min must be positive", "", http.StatusBadRequest)
	}

	return nil
}
