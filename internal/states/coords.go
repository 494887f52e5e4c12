package states

// Curated approximate latitudes and longitudes used by the directional
// challenges (north of / south of / east of / west of). These are kept
// separate from each StateCard's own coordinates on purpose: the values
// were tuned independently and differ slightly, and folding them together
// would change which states satisfy directional challenges.

var stateLatitudes = map[string]float64{
	"Alabama": 32.8, "Alaska": 64.0, "Arizona": 34.0, "Arkansas": 34.8,
	"California": 36.8, "Colorado": 39.0, "Connecticut": 41.6, "Delaware": 39.0,
	"Florida": 28.0, "Georgia": 33.0, "Hawaii": 21.0, "Idaho": 44.0,
	"Illinois": 40.0, "Indiana": 40.0, "Iowa": 42.0, "Kansas": 38.5,
	"Kentucky": 37.5, "Louisiana": 31.0, "Maine": 45.5, "Maryland": 39.0,
	"Massachusetts": 42.4, "Michigan": 44.5, "Minnesota": 46.0, "Mississippi": 33.0,
	"Missouri": 38.5, "Montana": 47.0, "Nebraska": 41.5, "Nevada": 39.0,
	"New Hampshire": 44.0, "New Jersey": 40.0, "New Mexico": 34.5, "New York": 43.0,
	"North Carolina": 35.5, "North Dakota": 47.5, "Ohio": 40.5, "Oklahoma": 35.5,
	"Oregon": 44.0, "Pennsylvania": 41.0, "Rhode Island": 41.7, "South Carolina": 34.0,
	"South Dakota": 44.5, "Tennessee": 36.0, "Texas": 31.0, "Utah": 39.5,
	"Vermont": 44.0, "Virginia": 37.5, "Washington": 47.5, "West Virginia": 39.0,
	"Wisconsin": 44.5, "Wyoming": 43.0,
}

var stateLongitudes = map[string]float64{
	"Alabama": -86.8, "Alaska": -152.0, "Arizona": -111.5, "Arkansas": -92.4,
	"California": -119.5, "Colorado": -105.5, "Connecticut": -72.7, "Delaware": -75.5,
	"Florida": -81.5, "Georgia": -83.5, "Hawaii": -157.5, "Idaho": -114.5,
	"Illinois": -89.0, "Indiana": -86.0, "Iowa": -93.5, "Kansas": -98.0,
	"Kentucky": -85.0, "Louisiana": -92.0, "Maine": -69.0, "Maryland": -77.0,
	"Massachusetts": -71.5, "Michigan": -85.0, "Minnesota": -94.0, "Mississippi": -89.5,
	"Missouri": -92.5, "Montana": -110.0, "Nebraska": -99.5, "Nevada": -117.0,
	"New Hampshire": -71.5, "New Jersey": -74.5, "New Mexico": -106.0, "New York": -75.0,
	"North Carolina": -79.0, "North Dakota": -100.0, "Ohio": -82.5, "Oklahoma": -97.5,
	"Oregon": -120.5, "Pennsylvania": -77.5, "Rhode Island": -71.5, "South Carolina": -81.0,
	"South Dakota": -100.0, "Tennessee": -86.0, "Texas": -99.0, "Utah": -111.5,
	"Vermont": -72.5, "Virginia": -78.5, "Washington": -120.5, "West Virginia": -80.5,
	"Wisconsin": -89.5, "Wyoming": -107.5,
}

// Latitude returns the curated latitude for a state name
func Latitude(name string) (float64, bool) {
	lat, ok := stateLatitudes[name]
	return lat, ok
}

// Longitude returns the curated longitude for a state name
// (more negative means further west)
func Longitude(name string) (float64, bool) {
	lon, ok := stateLongitudes[name]
	return lon, ok
}
