package database

import (
	"fmt"

	"gorm.io/gorm"
)

// activeRequestIndex is the authoritative guard against duplicate active
// requests: at most one row per (barter, requester) while the status is
// pending or accepted. The application-level existence check only provides
// the friendlier error message; concurrent creators are serialized here.
const activeRequestIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_barter_requests_active
ON barter_requests (barter_id, requester_id)
WHERE status IN ('pending', 'accepted')`

// Migrate applies the schema: AutoMigrate for the model registry plus the
// partial unique index AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	if err := db.Exec(activeRequestIndex).Error; err != nil {
		return fmt.Errorf("failed to create active request index: %w", err)
	}

	return nil
}
