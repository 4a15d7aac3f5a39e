package discovery

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTaxonomy is the deployment taxonomy used when no file override is
// configured.
func DefaultTaxonomy() CategoryTaxonomy {
	return CategoryTaxonomy{
		CategoryDining: {
			PrimaryTag:  "restaurant",
			TextQueries: []string{"restaurant food eatery local cuisine", "street food pho bun cha"},
		},
		CategoryLandmark: {
			PrimaryTag:  "tourist_attraction",
			TextQueries: []string{"landmark monument historic site", "temple pagoda lake"},
		},
		CategoryCafe: {
			PrimaryTag:  "cafe",
			TextQueries: []string{"coffee shop cafe", "egg coffee tea house"},
		},
		CategoryCulture: {
			PrimaryTag:  "museum",
			TextQueries: []string{"museum gallery cultural center heritage", "theater opera concert hall"},
		},
	}
}

// LoadTaxonomyFile reads a YAML taxonomy of the form
//
//	dining:
//	  primary: restaurant
//	  text_queries: ["street food"]
func LoadTaxonomyFile(path string) (CategoryTaxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	var tax CategoryTaxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	if err := tax.Validate(); err != nil {
		return nil, err
	}
	return tax, nil
}

func (t CategoryTaxonomy) Validate() error {
	for name, entry := range t {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Field: "taxonomy", Reason: "empty category name"}
		}
		if name == CategoryCurated {
			return &ValidationError{Field: "taxonomy", Reason: "category name \"curated\" is reserved"}
		}
		if strings.TrimSpace(entry.PrimaryTag) == "" {
			return &ValidationError{Field: "taxonomy", Reason: fmt.Sprintf("category %q has no primary tag", name)}
		}
	}
	return nil
}

// Categories returns the category names in a stable order.
func (t CategoryTaxonomy) Categories() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var tagLabels = map[string]string{
	"tourist_attraction":      "Landmark",
	"historical_landmark":     "Landmark",
	"monument":                "Monument",
	"restaurant":              "Restaurant",
	"food":                    "Eatery",
	"meal_takeaway":           "Takeaway",
	"bakery":                  "Bakery",
	"bar":                     "Bar",
	"cafe":                    "Cafe",
	"coffee_shop":             "Coffee Shop",
	"tea_house":               "Tea House",
	"museum":                  "Museum",
	"art_gallery":             "Art Gallery",
	"performing_arts_theater": "Theater",
	"cultural_center":         "Cultural Center",
	"place_of_worship":        "Place of Worship",
	"hindu_temple":            "Temple",
	"buddhist_temple":         "Temple",
	"church":                  "Church",
	"park":                    "Park",
	"library":                 "Library",
}

// TagLabel maps a provider taxonomy tag to a human label.
func TagLabel(tag string) (string, bool) {
	label, ok := tagLabels[tag]
	return label, ok
}
