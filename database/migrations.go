package database

import (
	"fmt"

	"gorm.io/gorm"
)

// OptimizeIndexes creates the covering indexes behind the API and report
// query paths (history by date, per-security history, top movers).
func OptimizeIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cours_symbole_date
		ON cours (symbole, date DESC)
	`).Error; err != nil {
		return fmt.Errorf("failed to create cours symbole/date index: %w", err)
	}

	// Top risers/fallers scan one date ordered by variation.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cours_date_variation
		ON cours (date, variation_jour DESC)
		WHERE variation_jour IS NOT NULL
	`).Error; err != nil {
		return fmt.Errorf("failed to create cours variation index: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seances_date_desc
		ON seances (date DESC)
	`).Error; err != nil {
		return fmt.Errorf("failed to create seances date index: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_indices_sectoriels_date
		ON indices_sectoriels (date DESC, secteur_code)
	`).Error; err != nil {
		return fmt.Errorf("failed to create sector index: %w", err)
	}

	return nil
}
