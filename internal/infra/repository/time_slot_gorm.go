package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/models"
)

type TimeSlotGormRepository struct {
	db *gorm.DB
}

func NewTimeSlotGormRepository(db *gorm.DB) *TimeSlotGormRepository {
	return &TimeSlotGormRepository{db: db}
}

func (r *TimeSlotGormRepository) ListActive(
	ctx context.Context,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *TimeSlotGormRepository) ListAll(
	ctx context.Context,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// Replace swaps the whole slot configuration in one transaction, so a
// half-applied toggle set can never be observed.
func (r *TimeSlotGormRepository) Replace(
	ctx context.Context,
	slots []models.TimeSlot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("1 = 1").
			Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
}

// Compile-time check
var _ domain.SlotRepository = (*TimeSlotGormRepository)(nil)
