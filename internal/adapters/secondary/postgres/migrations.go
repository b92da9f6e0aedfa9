package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/clubsphere/backend/internal/domain/entity"
)

// Migrations lists every entity managed by AutoMigrate.
var Migrations = []interface{}{
	&entity.User{},
	&entity.StudentProfile{},
	&entity.Category{},
	&entity.Club{},
	&entity.Membership{},
	&entity.Application{},
	&entity.Announcement{},
	&entity.Event{},
}

// Migrate runs AutoMigrate and installs the partial unique index that backs
// the one-pending-application-per-(user, club) invariant. Concurrent
// submissions that slip past the service pre-check hit this index and are
// reported as a duplicated key.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Migrations...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_pending_application
		 ON applications (user_id, club_id) WHERE status = 'Pending'`,
	).Error
	if err != nil {
		return fmt.Errorf("create pending application index: %w", err)
	}

	return nil
}
