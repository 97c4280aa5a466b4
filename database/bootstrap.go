// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"vibetravel/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return db
}

// Migrate runs AutoMigrate plus the constraints GORM cannot express.
// Exported so tests can bring up an in-memory schema.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.UserProfile{},
		&entities.Note{},
		&entities.Plan{},
		&entities.Generation{},
	); err != nil {
		return err
	}

	// At most one ACTIVE plan per note. The partial index is the real
	// concurrency guard: two concurrent creates race here, exactly one wins.
	if err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_plan_per_note
ON plans(note_id) WHERE status = 'ACTIVE';
`).Error; err != nil {
		return err
	}

	// Plans and generations go away with their note.
	if err := db.Exec(`
CREATE TRIGGER IF NOT EXISTS trg_note_cascade
AFTER DELETE ON notes
BEGIN
    DELETE FROM plans WHERE note_id = OLD.id;
    DELETE FROM generations WHERE note_id = OLD.id;
END;
`).Error; err != nil {
		return err
	}
	return nil
}
