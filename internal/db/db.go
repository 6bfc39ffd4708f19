package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bookwise/booking-calendar/internal/config"
	"github.com/bookwise/booking-calendar/internal/models"
)

// defaultSlotTimes is the seed slot grid: business hours, half-hour
// granularity, 17:00 inclusive.
var defaultSlotTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00",
}

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.TimeSlot{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	seedTimeSlots(db, log)

	return db
}

// seedTimeSlots fills the slot configuration on first boot only; an
// admin-edited grid is never overwritten.
func seedTimeSlots(db *gorm.DB, log *zap.Logger) {
	var count int64
	if err := db.Model(&models.TimeSlot{}).Count(&count).Error; err != nil {
		log.Fatal("failed to count time slots", zap.Error(err))
	}
	if count > 0 {
		return
	}

	slots := make([]models.TimeSlot, 0, len(defaultSlotTimes))
	for _, tm := range defaultSlotTimes {
		slots = append(slots, models.TimeSlot{Time: tm, IsActive: true})
	}

	if err := db.Create(&slots).Error; err != nil {
		log.Fatal("failed to seed time slots", zap.Error(err))
	}
	log.Info("seeded default time slots", zap.Int("count", len(slots)))
}
