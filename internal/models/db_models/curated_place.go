package db_models

import "github.com/lib/pq"

// CuratedPlace is a hand-entered point of interest. Rows are maintained by
// the curation tooling; discovery only reads them.
type CuratedPlace struct {
	BaseModel
	Name        string `gorm:"not null"`
	Address     string
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	Rating      float64
	RatingCount int
	PhotoRefs   pq.StringArray `gorm:"type:text[]"`
	WebsiteURI  string
	AddedBy     string
	AddedDate   int64 // epoch seconds
	Featured    bool
}

func (CuratedPlace) TableName() string {
	return "curated_places"
}
