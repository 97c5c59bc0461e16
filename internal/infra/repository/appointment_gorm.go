package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment store
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.BarberID != "" {
		q = q.Where("barber_id = ?", filter.BarberID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		q = q.Where("date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date <= ?", filter.DateTo)
	}
	if !filter.IncludeDeleted {
		q = q.Where("deleted = false")
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, time ASC").Find(&apps).Error; err != nil {
		return nil, httperr.WrapStore(err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment", id)
		}
		return nil, httperr.WrapStore(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(ap).Error

	if err != nil {
		return httperr.WrapStore(err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	id string,
	fields map[string]any,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return httperr.WrapStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment", id)
	}
	return nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
	activeOnly bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Model(&models.Service{})
	if activeOnly {
		q = q.Where("active = true")
	}

	var services []models.Service
	if err := q.Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, httperr.WrapStore(err)
	}

	return services, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service", id)
		}
		return nil, httperr.WrapStore(err)
	}

	return &svc, nil
}

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
	activeOnly bool,
) ([]models.Barber, error) {

	q := r.db.WithContext(ctx).Model(&models.Barber{})
	if activeOnly {
		q = q.Where("active = true")
	}

	var barbers []models.Barber
	if err := q.Order("created_at ASC").Find(&barbers).Error; err != nil {
		return nil, httperr.WrapStore(err)
	}

	return barbers, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("barber", id)
		}
		return nil, httperr.WrapStore(err)
	}

	return &b, nil
}

// --------------------------------------------------
// Catalog writes (admin CRUD)
// --------------------------------------------------

func (r *AppointmentGormRepository) SaveService(
	ctx context.Context,
	svc *models.Service,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(svc).Error

	if err != nil {
		return httperr.WrapStore(err)
	}
	return nil
}

func (r *AppointmentGormRepository) SaveBarber(
	ctx context.Context,
	b *models.Barber,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(b).Error

	if err != nil {
		return httperr.WrapStore(err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
