package orderrepo

import (
	"gorm.io/gorm"
)

// Migrate creates or updates the order tables and the reference sequence.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&OrderDTO{}, &AuditEntryDTO{}); err != nil {
		return err
	}

	return db.Exec("CREATE SEQUENCE IF NOT EXISTS " + ReferenceSequence).Error
}
