package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
)

type CarRepository interface {
	Create(ctx context.Context, car *models.Car) error
	FindAll(ctx context.Context) ([]models.Car, error)
	FindByID(ctx context.Context, id uint) (*models.Car, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Car, error)
	FindByRegistration(ctx context.Context, registrationNo string) (*models.Car, error)
	Save(ctx context.Context, car *models.Car) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, carID uint, status models.CarStatus) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.CarStatus) (int64, error)
	GetDB() *gorm.DB
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) FindAll(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	if err := r.db.WithContext(ctx).Order("brand ASC, model ASC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) FindByID(ctx context.Context, id uint) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// FindByIDForUpdate acquires a row-level lock on the car within the given transaction.
func (r *carRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Car, error) {
	var car models.Car
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&car, id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) FindByRegistration(ctx context.Context, registrationNo string) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).
		Where("registration_no = ?", registrationNo).
		First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) Save(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

func (r *carRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, carID uint, status models.CarStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Car{}).
		Where("id = ?", carID).
		Update("status", status).Error
}

func (r *carRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Car{}, id).Error
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Car{}).Count(&count).Error
	return count, err
}

func (r *carRepository) CountByStatus(ctx context.Context, status models.CarStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
