package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/fsanztor01/TrimTime/internal/domain/rating"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
)

type RatingGormRepository struct {
	db *gorm.DB
}

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

func (r *RatingGormRepository) CreateRating(
	ctx context.Context,
	rating *models.Rating,
) error {

	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("already_rated")
		}
		return httperr.WrapStore(err)
	}
	return nil
}

func (r *RatingGormRepository) ListRatingsByBarber(
	ctx context.Context,
	barberID string,
) ([]models.Rating, error) {

	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("created_at ASC").
		Find(&ratings).Error; err != nil {
		return nil, httperr.WrapStore(err)
	}

	return ratings, nil
}

func (r *RatingGormRepository) ListRatings(
	ctx context.Context,
) ([]models.Rating, error) {

	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&ratings).Error; err != nil {
		return nil, httperr.WrapStore(err)
	}

	return ratings, nil
}

func (r *RatingGormRepository) GetAppointment(
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

func (r *RatingGormRepository) MarkAppointmentRated(
	ctx context.Context,
	appointmentID string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("rated", true)

	if res.Error != nil {
		return httperr.WrapStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment", appointmentID)
	}
	return nil
}

func (r *RatingGormRepository) UpdateBarberRating(
	ctx context.Context,
	barberID string,
	rating float64,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("id = ?", barberID).
		Update("rating", rating)

	if res.Error != nil {
		return httperr.WrapStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("barber", barberID)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*RatingGormRepository)(nil)
