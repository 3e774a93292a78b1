package repository

import (
	"github.com/Behyna/ujumbesms/internal/model"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.SentMessage{})
}
