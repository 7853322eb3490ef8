package models

import (
	"time"
)

// Seance holds the market-wide figures of one trading session, extracted
// from page 1 of the official bulletin. Every numeric field is optional:
// a pattern that did not match on the page leaves the field nil.
type Seance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"uniqueIndex:uidx_seance_date" json:"date"`
	SeanceNum *int      `json:"seance_num"`
	DateTexte string    `gorm:"size:64" json:"date_texte"`

	Composite            *float64 `json:"composite"`
	VarComposite         *float64 `json:"var_composite"`
	VarCompositeAnnuelle *float64 `json:"var_composite_annuelle"`
	Brvm30               *float64 `json:"brvm30"`
	VarBrvm30            *float64 `json:"var_brvm30"`
	VarBrvm30Annuelle    *float64 `json:"var_brvm30_annuelle"`
	Prestige             *float64 `json:"prestige"`
	VarPrestige          *float64 `json:"var_prestige"`
	VarPrestigeAnnuelle  *float64 `json:"var_prestige_annuelle"`

	Capitalisation *int64 `json:"capitalisation"`
	VolumeTotal    *int64 `json:"volume_total"`
	ValeurTotale   *int64 `json:"valeur_totale"`
	NbTitres       *int   `json:"nb_titres"`
	NbHausse       *int   `json:"nb_hausse"`
	NbBaisse       *int   `json:"nb_baisse"`
	NbInchange     *int   `json:"nb_inchange"`

	CreatedAt time.Time `json:"created_at"`
}

func (Seance) TableName() string { return "seances" }

// Cours is one security's quote line for one session. (Date, Symbole) is
// unique; re-collecting a bulletin must not duplicate rows.
type Cours struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Date           time.Time `gorm:"index:idx_cours_date;uniqueIndex:uidx_date_symbole" json:"date"`
	Symbole        string    `gorm:"size:10;index:idx_cours_symbole;uniqueIndex:uidx_date_symbole" json:"symbole"`
	Compartiment   string    `gorm:"size:16" json:"compartiment"`
	SecteurCode    string    `gorm:"size:4" json:"secteur_code"`
	SecteurLibelle string    `gorm:"size:64" json:"secteur_libelle"`
	Titre          string    `gorm:"size:128" json:"titre"`

	CoursPrecedent    *float64 `json:"cours_precedent"`
	CoursOuverture    *float64 `json:"cours_ouverture"`
	CoursCloture      *float64 `json:"cours_cloture"`
	VariationJour     *float64 `json:"variation_jour"`
	Volume            *int64   `json:"volume"`
	ValeurSeance      *int64   `json:"valeur_seance"`
	CoursReference    *float64 `json:"cours_reference"`
	VariationAnnuelle *float64 `json:"variation_annuelle"`
	DividendeMontant  *float64 `json:"dividende_montant"`
	DividendeDate     string   `gorm:"size:16" json:"dividende_date"`
	RendementNet      *float64 `json:"rendement_net"`
	PER               *float64 `gorm:"column:per" json:"per"`

	CreatedAt time.Time `json:"created_at"`
}

func (Cours) TableName() string { return "cours" }

// IndiceSectoriel is the per-sector roll-up for one session, refreshed from
// the collected cours after each ingestion. (Date, SecteurCode) is unique.
type IndiceSectoriel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Date           time.Time `gorm:"uniqueIndex:uidx_date_secteur" json:"date"`
	SecteurCode    string    `gorm:"size:4;uniqueIndex:uidx_date_secteur" json:"secteur_code"`
	NbSocietes     int       `json:"nb_societes"`
	Valeur         *float64  `json:"valeur"`
	VarJour        *float64  `json:"var_jour"`
	VarAnnuelle    *float64  `json:"var_annuelle"`
	Volume         *int64    `json:"volume"`
	ValeurEchangee *int64    `json:"valeur_echangee"`
	PERMoyen       *float64  `gorm:"column:per_moyen" json:"per_moyen"`
	CreatedAt      time.Time `json:"created_at"`
}

func (IndiceSectoriel) TableName() string { return "indices_sectoriels" }
