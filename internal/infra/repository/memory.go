package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	appointmentdomain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	ratingdomain "github.com/fsanztor01/TrimTime/internal/domain/rating"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
)

// MemoryRepository is a mutex-guarded in-memory store. It backs the dev mode
// (no DATABASE_URL) and the test suites; it keeps insertion order so listings
// and statistics tie-breaks stay stable.
type MemoryRepository struct {
	mu sync.RWMutex

	appointments     map[string]*models.Appointment
	appointmentOrder []string

	services     map[string]*models.Service
	serviceOrder []string

	barbers     map[string]*models.Barber
	barberOrder []string

	ratings []models.Rating
	ratedBy map[string]bool // appointmentID -> rating exists

	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		appointments: make(map[string]*models.Appointment),
		services:     make(map[string]*models.Service),
		barbers:      make(map[string]*models.Barber),
		ratedBy:      make(map[string]bool),
		users:        make(map[string]*models.User),
	}
}

// --------------------------------------------------
// Seeding (catalog writes)
// --------------------------------------------------

func (r *MemoryRepository) PutService(svc models.Service) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if _, ok := r.services[svc.ID]; !ok {
		r.serviceOrder = append(r.serviceOrder, svc.ID)
		svc.CreatedAt = now
	}
	svc.UpdatedAt = now
	r.services[svc.ID] = &svc
}

func (r *MemoryRepository) PutBarber(b models.Barber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if _, ok := r.barbers[b.ID]; !ok {
		r.barberOrder = append(r.barberOrder, b.ID)
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	r.barbers[b.ID] = &b
}

// --------------------------------------------------
// Appointment store
// --------------------------------------------------

func (r *MemoryRepository) ListAppointments(
	_ context.Context,
	filter appointmentdomain.ListFilter,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.appointmentOrder))
	for _, id := range r.appointmentOrder {
		ap := r.appointments[id]

		if filter.ClientID != "" && ap.ClientID != filter.ClientID {
			continue
		}
		if filter.BarberID != "" && ap.BarberID != filter.BarberID {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		if filter.DateFrom != "" && ap.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && ap.Date > filter.DateTo {
			continue
		}
		if !filter.IncludeDeleted && ap.Deleted {
			continue
		}

		out = append(out, *ap)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})

	return out, nil
}

func (r *MemoryRepository) GetAppointment(
	_ context.Context,
	id string,
) (*models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment", id)
	}

	cp := *ap
	return &cp, nil
}

func (r *MemoryRepository) UpsertAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if existing, ok := r.appointments[ap.ID]; ok {
		ap.CreatedAt = existing.CreatedAt
	} else {
		r.appointmentOrder = append(r.appointmentOrder, ap.ID)
		if ap.CreatedAt.IsZero() {
			ap.CreatedAt = now
		}
	}
	ap.UpdatedAt = now

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *MemoryRepository) UpdateAppointment(
	_ context.Context,
	id string,
	fields map[string]any,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return httperr.ErrNotFound("appointment", id)
	}

	for k, v := range fields {
		switch k {
		case "status":
			ap.Status, _ = v.(string)
		case "date":
			ap.Date, _ = v.(string)
		case "time":
			ap.Time, _ = v.(string)
		case "barber_id":
			ap.BarberID, _ = v.(string)
		case "service_id":
			ap.ServiceID, _ = v.(string)
		case "notes":
			ap.Notes, _ = v.(string)
		case "rated":
			ap.Rated, _ = v.(bool)
		case "deleted":
			ap.Deleted, _ = v.(bool)
		case "canceled_at":
			if t, ok := v.(*time.Time); ok {
				ap.CanceledAt = t
			}
		case "completed_at":
			if t, ok := v.(*time.Time); ok {
				ap.CompletedAt = t
			}
		}
	}
	ap.UpdatedAt = time.Now()

	return nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *MemoryRepository) ListServices(
	_ context.Context,
	activeOnly bool,
) ([]models.Service, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Service, 0, len(r.serviceOrder))
	for _, id := range r.serviceOrder {
		svc := r.services[id]
		if activeOnly && !svc.Active {
			continue
		}
		out = append(out, *svc)
	}
	return out, nil
}

func (r *MemoryRepository) GetService(
	_ context.Context,
	id string,
) (*models.Service, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service", id)
	}

	cp := *svc
	return &cp, nil
}

func (r *MemoryRepository) ListBarbers(
	_ context.Context,
	activeOnly bool,
) ([]models.Barber, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Barber, 0, len(r.barberOrder))
	for _, id := range r.barberOrder {
		b := r.barbers[id]
		if activeOnly && !b.Active {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *MemoryRepository) GetBarber(
	_ context.Context,
	id string,
) (*models.Barber, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrNotFound("barber", id)
	}

	cp := *b
	return &cp, nil
}

// --------------------------------------------------
// Ratings
// --------------------------------------------------

func (r *MemoryRepository) CreateRating(
	_ context.Context,
	rating *models.Rating,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ratedBy[rating.AppointmentID] {
		return httperr.ErrBusiness("already_rated")
	}

	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}
	r.ratings = append(r.ratings, *rating)
	r.ratedBy[rating.AppointmentID] = true
	return nil
}

func (r *MemoryRepository) ListRatingsByBarber(
	_ context.Context,
	barberID string,
) ([]models.Rating, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Rating
	for _, rt := range r.ratings {
		if rt.BarberID == barberID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListRatings(
	_ context.Context,
) ([]models.Rating, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Rating, len(r.ratings))
	copy(out, r.ratings)
	return out, nil
}

func (r *MemoryRepository) MarkAppointmentRated(
	_ context.Context,
	appointmentID string,
) error {
	return r.UpdateAppointment(nil, appointmentID, map[string]any{"rated": true})
}

func (r *MemoryRepository) UpdateBarberRating(
	_ context.Context,
	barberID string,
	rating float64,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.barbers[barberID]
	if !ok {
		return httperr.ErrNotFound("barber", barberID)
	}
	b.Rating = rating
	b.UpdatedAt = time.Now()
	return nil
}

// --------------------------------------------------
// Catalog writes
// --------------------------------------------------

func (r *MemoryRepository) SaveService(_ context.Context, svc *models.Service) error {
	r.PutService(*svc)
	return nil
}

func (r *MemoryRepository) SaveBarber(_ context.Context, b *models.Barber) error {
	r.PutBarber(*b)
	return nil
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *MemoryRepository) CreateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return httperr.ErrBusiness("email_taken")
		}
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *MemoryRepository) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, httperr.ErrNotFound("user", email)
}

func (r *MemoryRepository) GetUser(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user", id)
	}

	cp := *u
	return &cp, nil
}

// Compile-time checks
var (
	_ appointmentdomain.Repository = (*MemoryRepository)(nil)
	_ ratingdomain.Repository      = (*MemoryRepository)(nil)
)
