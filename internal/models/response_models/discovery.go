package response_models

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Photo struct {
	Ref    string `json:"ref"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Place struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address"`
	Location       Coordinates `json:"location"`
	Rating         float64     `json:"rating"`
	RatingCount    int         `json:"rating_count"`
	DistanceMeters int         `json:"distance_meters"`
	Photos         []Photo     `json:"photos"`
	WebsiteURI     string      `json:"website_uri,omitempty"`
	Category       string      `json:"category"`
	Types          []string    `json:"types"`
}

type DiscoverResponse struct {
	Center       Coordinates        `json:"center"`
	Label        string             `json:"label,omitempty"`
	RadiusMeters int                `json:"radius_meters"`
	Categories   map[string][]Place `json:"categories"`
	// Partial is set when the request ended before every category finished.
	Partial bool `json:"partial,omitempty"`
	// Degraded is set when provider failures may have left categories short.
	Degraded bool   `json:"degraded,omitempty"`
	Link     string `json:"link,omitempty"`
}

type Category struct {
	Name        string   `json:"name"`
	PrimaryTag  string   `json:"primary_tag"`
	TextQueries []string `json:"text_queries"`
}

type CuratedPlace struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Location    Coordinates `json:"location"`
	Rating      float64     `json:"rating"`
	RatingCount int         `json:"rating_count"`
	PhotoRefs   []string    `json:"photo_refs"`
	WebsiteURI  string      `json:"website_uri,omitempty"`
	AddedBy     string      `json:"added_by"`
	AddedDate   string      `json:"added_date,omitempty"`
	Featured    bool        `json:"featured"`
}
