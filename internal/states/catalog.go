// Package states holds the static US geography reference data the game
// is built on: the 50-state catalog and the curated latitude/longitude
// tables used by directional challenges.
package states

import "scrambledstates/internal/models"

// Catalog returns all 50 US states in a stable order. The slice is
// rebuilt on every call so callers may shuffle or filter it freely.
func Catalog() []models.StateCard {
	return []models.StateCard{
		{
			Name:      "Alabama",
			Nickname:  "Yellowhammer State",
			Capital:   "Montgomery",
			Syllables: 4,
			Neighbors: []string{"Tennessee", "Georgia", "Florida", "Mississippi"},
			Coastal:   true,
			Region:    "South",
			Latitude:  32.806671,
			Longitude: -86.791130,
		},
		{
			Name:      "Alaska",
			Nickname:  "Last Frontier",
			Capital:   "Juneau",
			Syllables: 3,
			Neighbors: []string{},
			Coastal:   true,
			Region:    "West",
			Latitude:  61.370716,
			Longitude: -152.404419,
		},
		{
			Name:      "Arizona",
			Nickname:  "Grand Canyon State",
			Capital:   "Phoenix",
			Syllables: 4,
			Neighbors: []string{"California", "Nevada", "Utah", "Colorado", "New Mexico"},
			Coastal:   false,
			Region:    "West",
			Latitude:  33.729759,
			Longitude: -111.431221,
		},
		{
			Name:      "Arkansas",
			Nickname:  "Natural State",
			Capital:   "Little Rock",
			Syllables: 3,
			Neighbors: []string{"Missouri", "Tennessee", "Mississippi", "Louisiana", "Texas", "Oklahoma"},
			Coastal:   false,
			Region:    "South",
			Latitude:  34.969704,
			Longitude: -92.373123,
		},
		{
			Name:      "California",
			Nickname:  "Golden State",
			Capital:   "Sacramento",
			Syllables: 4,
			Neighbors: []string{"Oregon", "Nevada", "Arizona"},
			Coastal:   true,
			Region:    "West",
			Latitude:  36.116203,
			Longitude: -119.681564,
		},
		{
			Name:      "Colorado",
			Nickname:  "Centennial State",
			Capital:   "Denver",
			Syllables: 4,
			Neighbors: []string{"Wyoming", "Nebraska", "Kansas", "Oklahoma", "New Mexico", "Arizona", "Utah"},
			Coastal:   false,
			Region:    "West",
			Latitude:  39.059811,
			Longitude: -105.311104,
		},
		{
			Name:      "Connecticut",
			Nickname:  "Constitution State",
			Capital:   "Hartford",
			Syllables: 4,
			Neighbors: []string{"Massachusetts", "Rhode Island", "New York"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  41.597782,
			Longitude: -72.755371,
		},
		{
			Name:      "Delaware",
			Nickname:  "First State",
			Capital:   "Dover",
			Syllables: 3,
			Neighbors: []string{"Pennsylvania", "New Jersey", "Maryland"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  39.318523,
			Longitude: -75.507141,
		},
		{
			Name:      "Florida",
			Nickname:  "Sunshine State",
			Capital:   "Tallahassee",
			Syllables: 3,
			Neighbors: []string{"Alabama", "Georgia"},
			Coastal:   true,
			Region:    "South",
			Latitude:  27.766279,
			Longitude: -81.686783,
		},
		{
			Name:      "Georgia",
			Nickname:  "Peach State",
			Capital:   "Atlanta",
			Syllables: 2,
			Neighbors: []string{"Tennessee", "North Carolina", "South Carolina", "Florida", "Alabama"},
			Coastal:   true,
			Region:    "South",
			Latitude:  33.040619,
			Longitude: -83.643074,
		},
		{
			Name:      "Hawaii",
			Nickname:  "Aloha State",
			Capital:   "Honolulu",
			Syllables: 3,
			Neighbors: []string{},
			Coastal:   true,
			Region:    "West",
			Latitude:  21.094318,
			Longitude: -157.498337,
		},
		{
			Name:      "Idaho",
			Nickname:  "Gem State",
			Capital:   "Boise",
			Syllables: 3,
			Neighbors: []string{"Montana", "Wyoming", "Utah", "Nevada", "Oregon", "Washington"},
			Coastal:   false,
			Region:    "West",
			Latitude:  44.240459,
			Longitude: -114.478828,
		},
		{
			Name:      "Illinois",
			Nickname:  "Prairie State",
			Capital:   "Springfield",
			Syllables: 3,
			Neighbors: []string{"Wisconsin", "Indiana", "Kentucky", "Missouri", "Iowa"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  40.349457,
			Longitude: -88.986137,
		},
		{
			Name:      "Indiana",
			Nickname:  "Hoosier State",
			Capital:   "Indianapolis",
			Syllables: 4,
			Neighbors: []string{"Michigan", "Ohio", "Kentucky", "Illinois"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  39.849426,
			Longitude: -86.258278,
		},
		{
			Name:      "Iowa",
			Nickname:  "Hawkeye State",
			Capital:   "Des Moines",
			Syllables: 3,
			Neighbors: []string{"Minnesota", "Wisconsin", "Illinois", "Missouri", "Nebraska", "South Dakota"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  42.011539,
			Longitude: -93.210526,
		},
		{
			Name:      "Kansas",
			Nickname:  "Sunflower State",
			Capital:   "Topeka",
			Syllables: 2,
			Neighbors: []string{"Nebraska", "Missouri", "Oklahoma", "Colorado"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  38.526600,
			Longitude: -96.726486,
		},
		{
			Name:      "Kentucky",
			Nickname:  "Bluegrass State",
			Capital:   "Frankfort",
			Syllables: 3,
			Neighbors: []string{"Illinois", "Indiana", "Ohio", "West Virginia", "Virginia", "Tennessee", "Missouri"},
			Coastal:   false,
			Region:    "South",
			Latitude:  37.668140,
			Longitude: -84.670067,
		},
		{
			Name:      "Louisiana",
			Nickname:  "Pelican State",
			Capital:   "Baton Rouge",
			Syllables: 4,
			Neighbors: []string{"Arkansas", "Mississippi", "Texas"},
			Coastal:   true,
			Region:    "South",
			Latitude:  31.169546,
			Longitude: -91.867805,
		},
		{
			Name:      "Maine",
			Nickname:  "Pine Tree State",
			Capital:   "Augusta",
			Syllables: 1,
			Neighbors: []string{"New Hampshire"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  44.693947,
			Longitude: -69.381927,
		},
		{
			Name:      "Maryland",
			Nickname:  "Old Line State",
			Capital:   "Annapolis",
			Syllables: 3,
			Neighbors: []string{"Pennsylvania", "Delaware", "Virginia", "West Virginia"},
			Coastal:   true,
			Region:    "South",
			Latitude:  39.063946,
			Longitude: -76.802101,
		},
		{
			Name:      "Massachusetts",
			Nickname:  "Bay State",
			Capital:   "Boston",
			Syllables: 4,
			Neighbors: []string{"Vermont", "New Hampshire", "Rhode Island", "Connecticut", "New York"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  42.230171,
			Longitude: -71.530106,
		},
		{
			Name:      "Michigan",
			Nickname:  "Great Lakes State",
			Capital:   "Lansing",
			Syllables: 3,
			Neighbors: []string{"Wisconsin", "Indiana", "Ohio"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  43.326618,
			Longitude: -84.536095,
		},
		{
			Name:      "Minnesota",
			Nickname:  "North Star State",
			Capital:   "Saint Paul",
			Syllables: 4,
			Neighbors: []string{"North Dakota", "South Dakota", "Iowa", "Wisconsin"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  45.694454,
			Longitude: -93.900192,
		},
		{
			Name:      "Mississippi",
			Nickname:  "Magnolia State",
			Capital:   "Jackson",
			Syllables: 4,
			Neighbors: []string{"Tennessee", "Alabama", "Louisiana", "Arkansas"},
			Coastal:   true,
			Region:    "South",
			Latitude:  32.741646,
			Longitude: -89.678696,
		},
		{
			Name:      "Missouri",
			Nickname:  "Show Me State",
			Capital:   "Jefferson City",
			Syllables: 3,
			Neighbors: []string{"Iowa", "Illinois", "Kentucky", "Tennessee", "Arkansas", "Oklahoma", "Kansas", "Nebraska"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  38.456085,
			Longitude: -92.288368,
		},
		{
			Name:      "Montana",
			Nickname:  "Treasure State",
			Capital:   "Helena",
			Syllables: 3,
			Neighbors: []string{"North Dakota", "South Dakota", "Wyoming", "Idaho"},
			Coastal:   false,
			Region:    "West",
			Latitude:  46.921925,
			Longitude: -110.454353,
		},
		{
			Name:      "Nebraska",
			Nickname:  "Cornhusker State",
			Capital:   "Lincoln",
			Syllables: 3,
			Neighbors: []string{"South Dakota", "Iowa", "Missouri", "Kansas", "Colorado", "Wyoming"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  41.125370,
			Longitude: -98.268082,
		},
		{
			Name:      "Nevada",
			Nickname:  "Silver State",
			Capital:   "Carson City",
			Syllables: 3,
			Neighbors: []string{"Oregon", "Idaho", "Utah", "Arizona", "California"},
			Coastal:   false,
			Region:    "West",
			Latitude:  38.313515,
			Longitude: -117.055374,
		},
		{
			Name:      "New Hampshire",
			Nickname:  "Granite State",
			Capital:   "Concord",
			Syllables: 3,
			Neighbors: []string{"Vermont", "Maine", "Massachusetts"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  43.452492,
			Longitude: -71.563896,
		},
		{
			Name:      "New Jersey",
			Nickname:  "Garden State",
			Capital:   "Trenton",
			Syllables: 3,
			Neighbors: []string{"New York", "Delaware", "Pennsylvania"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  40.298904,
			Longitude: -74.521011,
		},
		{
			Name:      "New Mexico",
			Nickname:  "Land of Enchantment",
			Capital:   "Santa Fe",
			Syllables: 4,
			Neighbors: []string{"Colorado", "Oklahoma", "Texas", "Arizona"},
			Coastal:   false,
			Region:    "West",
			Latitude:  34.840515,
			Longitude: -106.248482,
		},
		{
			Name:      "New York",
			Nickname:  "Empire State",
			Capital:   "Albany",
			Syllables: 2,
			Neighbors: []string{"Vermont", "Massachusetts", "Connecticut", "Pennsylvania", "New Jersey"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  42.165726,
			Longitude: -74.948051,
		},
		{
			Name:      "North Carolina",
			Nickname:  "Tar Heel State",
			Capital:   "Raleigh",
			Syllables: 5,
			Neighbors: []string{"Virginia", "Tennessee", "Georgia", "South Carolina"},
			Coastal:   true,
			Region:    "South",
			Latitude:  35.630066,
			Longitude: -79.806419,
		},
		{
			Name:      "North Dakota",
			Nickname:  "Peace Garden State",
			Capital:   "Bismarck",
			Syllables: 4,
			Neighbors: []string{"Montana", "South Dakota", "Minnesota"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  47.528912,
			Longitude: -99.784012,
		},
		{
			Name:      "Ohio",
			Nickname:  "Buckeye State",
			Capital:   "Columbus",
			Syllables: 2,
			Neighbors: []string{"Michigan", "Pennsylvania", "West Virginia", "Kentucky", "Indiana"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  40.388783,
			Longitude: -82.764915,
		},
		{
			Name:      "Oklahoma",
			Nickname:  "Sooner State",
			Capital:   "Oklahoma City",
			Syllables: 4,
			Neighbors: []string{"Kansas", "Missouri", "Arkansas", "Texas", "New Mexico", "Colorado"},
			Coastal:   false,
			Region:    "South",
			Latitude:  35.565342,
			Longitude: -96.928917,
		},
		{
			Name:      "Oregon",
			Nickname:  "Beaver State",
			Capital:   "Salem",
			Syllables: 3,
			Neighbors: []string{"Washington", "Idaho", "Nevada", "California"},
			Coastal:   true,
			Region:    "West",
			Latitude:  44.572021,
			Longitude: -122.070938,
		},
		{
			Name:      "Pennsylvania",
			Nickname:  "Keystone State",
			Capital:   "Harrisburg",
			Syllables: 5,
			Neighbors: []string{"New York", "New Jersey", "Delaware", "Maryland", "West Virginia", "Ohio"},
			Coastal:   false,
			Region:    "Northeast",
			Latitude:  40.590752,
			Longitude: -77.209755,
		},
		{
			Name:      "Rhode Island",
			Nickname:  "Ocean State",
			Capital:   "Providence",
			Syllables: 3,
			Neighbors: []string{"Massachusetts", "Connecticut"},
			Coastal:   true,
			Region:    "Northeast",
			Latitude:  41.680893,
			Longitude: -71.511780,
		},
		{
			Name:      "South Carolina",
			Nickname:  "Palmetto State",
			Capital:   "Columbia",
			Syllables: 5,
			Neighbors: []string{"North Carolina", "Georgia"},
			Coastal:   true,
			Region:    "South",
			Latitude:  33.856892,
			Longitude: -80.945007,
		},
		{
			Name:      "South Dakota",
			Nickname:  "Mount Rushmore State",
			Capital:   "Pierre",
			Syllables: 4,
			Neighbors: []string{"North Dakota", "Minnesota", "Iowa", "Nebraska", "Wyoming", "Montana"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  44.299782,
			Longitude: -99.438828,
		},
		{
			Name:      "Tennessee",
			Nickname:  "Volunteer State",
			Capital:   "Nashville",
			Syllables: 3,
			Neighbors: []string{"Kentucky", "Virginia", "North Carolina", "Georgia", "Alabama", "Mississippi", "Arkansas", "Missouri"},
			Coastal:   false,
			Region:    "South",
			Latitude:  35.747845,
			Longitude: -86.692345,
		},
		{
			Name:      "Texas",
			Nickname:  "Lone Star State",
			Capital:   "Austin",
			Syllables: 2,
			Neighbors: []string{"Oklahoma", "Arkansas", "Louisiana", "New Mexico"},
			Coastal:   true,
			Region:    "South",
			Latitude:  31.054487,
			Longitude: -97.563461,
		},
		{
			Name:      "Utah",
			Nickname:  "Beehive State",
			Capital:   "Salt Lake City",
			Syllables: 2,
			Neighbors: []string{"Idaho", "Wyoming", "Colorado", "Arizona", "Nevada"},
			Coastal:   false,
			Region:    "West",
			Latitude:  40.150032,
			Longitude: -111.862434,
		},
		{
			Name:      "Vermont",
			Nickname:  "Green Mountain State",
			Capital:   "Montpelier",
			Syllables: 2,
			Neighbors: []string{"New Hampshire", "Massachusetts", "New York"},
			Coastal:   false,
			Region:    "Northeast",
			Latitude:  44.045876,
			Longitude: -72.710686,
		},
		{
			Name:      "Virginia",
			Nickname:  "Old Dominion",
			Capital:   "Richmond",
			Syllables: 3,
			Neighbors: []string{"Maryland", "West Virginia", "Kentucky", "Tennessee", "North Carolina"},
			Coastal:   true,
			Region:    "South",
			Latitude:  37.769337,
			Longitude: -78.169968,
		},
		{
			Name:      "Washington",
			Nickname:  "Evergreen State",
			Capital:   "Olympia",
			Syllables: 3,
			Neighbors: []string{"Idaho", "Oregon"},
			Coastal:   true,
			Region:    "West",
			Latitude:  47.400902,
			Longitude: -121.490494,
		},
		{
			Name:      "West Virginia",
			Nickname:  "Mountain State",
			Capital:   "Charleston",
			Syllables: 4,
			Neighbors: []string{"Ohio", "Pennsylvania", "Maryland", "Virginia", "Kentucky"},
			Coastal:   false,
			Region:    "South",
			Latitude:  38.491226,
			Longitude: -80.954453,
		},
		{
			Name:      "Wisconsin",
			Nickname:  "Badger State",
			Capital:   "Madison",
			Syllables: 3,
			Neighbors: []string{"Minnesota", "Iowa", "Illinois", "Michigan"},
			Coastal:   false,
			Region:    "Midwest",
			Latitude:  44.268543,
			Longitude: -89.616508,
		},
		{
			Name:      "Wyoming",
			Nickname:  "Equality State",
			Capital:   "Cheyenne",
			Syllables: 3,
			Neighbors: []string{"Montana", "South Dakota", "Nebraska", "Colorado", "Utah", "Idaho"},
			Coastal:   false,
			Region:    "West",
			Latitude:  42.755966,
			Longitude: -107.302490,
		},
	}
}

// Regions lists the fixed set of regions states belong to
func Regions() []string {
	return []string{"South", "West", "Northeast", "Midwest"}
}

// Find returns the catalog entry with the given name
func Find(name string) (models.StateCard, bool) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, true
		}
	}
	return models.StateCard{}, false
}
