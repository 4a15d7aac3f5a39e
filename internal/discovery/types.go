package discovery

import (
	"time"

	"nearby/pkg/geo"
)

const (
	CategoryDining   = "dining"
	CategoryLandmark = "landmark"
	CategoryCafe     = "cafe"
	CategoryCulture  = "culture"
	// CategoryCurated is reserved for the curated overlay and may not appear
	// in a taxonomy.
	CategoryCurated = "curated"
)

type PhotoRef struct {
	Ref    string `json:"ref"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Place is the canonical record produced by one Discover call. Rating 0 means
// the provider had no rating for it.
type Place struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Location       geo.LatLng `json:"location"`
	Rating         float64    `json:"rating"`
	RatingCount    int        `json:"rating_count"`
	DistanceMeters int        `json:"distance_meters"`
	PhotoRefs      []PhotoRef `json:"photo_refs"`
	WebsiteURI     string     `json:"website_uri"`
	Category       string     `json:"category"`
	SourceTypes    []string   `json:"source_types"`
}

// RawPlace is a provider record as it arrives, every field optional.
type RawPlace struct {
	ID               string
	DisplayName      *string
	Name             *string
	FormattedAddress *string
	Location         *geo.LatLng
	Rating           *float64
	RatingCount      *int
	Photos           []PhotoRef
	WebsiteURI       *string
	Types            []string
}

// CuratedPlace is a hand-entered place owned by the curated store.
type CuratedPlace struct {
	ID          string
	Name        string
	Address     string
	Location    geo.LatLng
	Rating      float64
	RatingCount int
	PhotoRefs   []PhotoRef
	WebsiteURI  string
	AddedBy     string
	AddedDate   time.Time
	Featured    bool
}

type TaxonomyEntry struct {
	PrimaryTag  string   `json:"primary" yaml:"primary"`
	TextQueries []string `json:"text_queries" yaml:"text_queries"`
}

// CategoryTaxonomy maps a category name to how it is searched.
type CategoryTaxonomy map[string]TaxonomyEntry

// Result maps category name to its ordered places.
type Result map[string][]Place
