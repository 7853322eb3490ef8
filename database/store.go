package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/viktsys/brvmwatch/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence collaborator of the extraction pipeline. It
// exposes replace semantics for seances and insert-if-absent semantics for
// cours, so re-collecting a bulletin is always safe.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// UpsertSeance inserts or fully replaces the session row for its date.
func (s *Store) UpsertSeance(seance *models.Seance) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(seance).Error
}

// InsertCoursIfAbsent inserts the given quotes, silently skipping any
// (date, symbole) pair already stored, and returns how many rows were
// actually inserted.
func (s *Store) InsertCoursIfAbsent(cours []models.Cours) (int64, error) {
	if len(cours) == 0 {
		return 0, nil
	}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "symbole"}},
		DoNothing: true,
	}).CreateInBatches(cours, 100)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to insert cours: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// RefreshIndicesSectoriels recomputes the per-sector roll-up for one date
// from the stored cours of that date.
func (s *Store) RefreshIndicesSectoriels(date time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM indices_sectoriels WHERE date = ?", date).Error; err != nil {
			return fmt.Errorf("failed to clear sector roll-up: %w", err)
		}
		query := `
			INSERT INTO indices_sectoriels
				(date, secteur_code, nb_societes, var_jour, var_annuelle, volume, valeur_echangee, per_moyen, created_at)
			SELECT
				date,
				secteur_code,
				COUNT(*),
				AVG(variation_jour),
				AVG(variation_annuelle),
				SUM(volume),
				SUM(valeur_seance),
				AVG(per),
				NOW()
			FROM cours
			WHERE date = ? AND secteur_code <> ''
			GROUP BY date, secteur_code
		`
		if err := tx.Exec(query, date).Error; err != nil {
			return fmt.Errorf("failed to refresh sector roll-up: %w", err)
		}
		return nil
	})
}

func (s *Store) Seances(limit int) ([]models.Seance, error) {
	if limit <= 0 {
		limit = 90
	}
	var seances []models.Seance
	err := s.db.Order("date DESC").Limit(limit).Find(&seances).Error
	return seances, err
}

func (s *Store) SeanceByDate(date time.Time) (*models.Seance, error) {
	var seance models.Seance
	err := s.db.Where("date = ?", date).First(&seance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seance, nil
}

// Cours returns quotes filtered by date and/or symbole; a zero date or an
// empty symbole leaves that filter off.
func (s *Store) Cours(date time.Time, symbole string, limit int) ([]models.Cours, error) {
	if limit <= 0 {
		limit = 500
	}
	q := s.db.Order("date DESC, compartiment, secteur_code, symbole").Limit(limit)
	if !date.IsZero() {
		q = q.Where("date = ?", date)
	}
	if symbole != "" {
		q = q.Where("symbole = ?", symbole)
	}
	var cours []models.Cours
	err := q.Find(&cours).Error
	return cours, err
}

// TopMovers returns the best and worst day variations of a session.
func (s *Store) TopMovers(date time.Time, limit int) (hausses, baisses []models.Cours, err error) {
	if limit <= 0 {
		limit = 5
	}
	err = s.db.Where("date = ? AND variation_jour IS NOT NULL", date).
		Order("variation_jour DESC").Limit(limit).Find(&hausses).Error
	if err != nil {
		return nil, nil, err
	}
	err = s.db.Where("date = ? AND variation_jour IS NOT NULL", date).
		Order("variation_jour ASC").Limit(limit).Find(&baisses).Error
	if err != nil {
		return nil, nil, err
	}
	return hausses, baisses, nil
}

func (s *Store) IndicesSectoriels(date time.Time) ([]models.IndiceSectoriel, error) {
	var indices []models.IndiceSectoriel
	err := s.db.Where("date = ?", date).Order("secteur_code").Find(&indices).Error
	return indices, err
}
