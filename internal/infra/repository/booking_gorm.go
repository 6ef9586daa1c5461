package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Studio
// --------------------------------------------------

func (r *BookingGormRepository) GetStudioByID(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var studio models.Studio
	if err := r.db.WithContext(ctx).First(&studio, id).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

func (r *BookingGormRepository) GetStudioBySlug(
	ctx context.Context,
	slug string,
) (*models.Studio, error) {

	var studio models.Studio
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&studio).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	studioID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", serviceID, studioID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	studioID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("studio_id = ? AND phone = ?", studioID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		StudioID: studioID,
		Name:     name,
		Phone:    phone,
		Email:    email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Availability sources
// --------------------------------------------------

func (r *BookingGormRepository) GetWindowsForWeekday(
	ctx context.Context,
	studioID uint,
	weekday int,
	serviceID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where(
			"studio_id = ? AND weekday = ? AND active = true AND (service_id IS NULL OR service_id = ?)",
			studioID, weekday, serviceID,
		).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *BookingGormRepository) ListReservationsForDate(
	ctx context.Context,
	studioID uint,
	date time.Time,
	statuses []domain.Status,
) ([]models.Reservation, error) {

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("id", "time_slot", "date", "status", "service_id").
		Where(
			"studio_id = ? AND status IN ? AND date >= ? AND date < ?",
			studioID, statuses, dayStart, dayEnd,
		).
		Order("time_slot ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}

	return reservations, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	rv *models.Reservation,
) error {
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		return translateReservationWriteError(err)
	}
	return nil
}

// AssertSlotFree is a pre-check so the common double-booking answers with a
// clean conflict before touching the table. The authoritative guard is the
// partial unique index on (studio_id, date, time_slot) for active statuses;
// a race that slips past this check fails on insert instead.
func (r *BookingGormRepository) AssertSlotFree(
	ctx context.Context,
	studioID uint,
	date time.Time,
	slot string,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"studio_id = ? AND date = ? AND time_slot = ? AND status IN ('pending','confirmed')",
			studioID,
			date,
			slot,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_conflict")
	}

	return nil
}

// translateReservationWriteError maps the unique-index violation raised by a
// concurrent booking of the same slot onto the business error the handlers
// already answer with 409. Relies on gorm's TranslateError being enabled.
func translateReservationWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_conflict")
	}
	return err
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetReservationForStudio(
	ctx context.Context,
	reservationID uint,
	studioID uint,
) (*models.Reservation, error) {

	var rv models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", reservationID, studioID).
		First(&rv).Error; err != nil {
		return nil, err
	}

	return &rv, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	rv *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *BookingGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	studioID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"studio_id = ? AND date >= ? AND date < ?",
			studioID,
			start,
			end,
		).
		Order("date ASC, time_slot ASC").
		Find(&reservations).Error

	if err != nil {
		return nil, err
	}

	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
