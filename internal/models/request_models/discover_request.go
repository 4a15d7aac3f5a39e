package request_models

// DiscoverRequest mirrors the query string of a discovery link:
// /discover?lat=21.0340&lng=105.8511&radius=1000&label=Cafe%20Giang
type DiscoverRequest struct {
	Latitude  *float64 `form:"lat" binding:"required"`
	Longitude *float64 `form:"lng" binding:"required"`
	Radius    *int     `form:"radius"`
	Label     string   `form:"label"`
}
