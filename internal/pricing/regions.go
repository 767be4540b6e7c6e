package pricing

import (
	"strconv"
	"strings"
)

// Location describes the geographic context a price is resolved for.
type Location struct {
	ZIP    string
	City   string
	State  string
	Region string
	Metro  string
}

// Cost-of-living multipliers per state, applied on top of catalog prices.
var stateAdjustments = map[string]float64{
	"AL": 0.92, "AK": 1.32, "AZ": 1.05, "AR": 0.89, "CA": 1.25,
	"CO": 1.08, "CT": 1.18, "DE": 1.05, "FL": 1.02, "GA": 0.95,
	"HI": 1.45, "ID": 0.98, "IL": 1.08, "IN": 0.95, "IA": 0.92,
	"KS": 0.94, "KY": 0.91, "LA": 0.93, "ME": 1.12, "MD": 1.15,
	"MA": 1.22, "MI": 0.98, "MN": 1.05, "MS": 0.88, "MO": 0.92,
	"MT": 1.02, "NE": 0.94, "NV": 1.08, "NH": 1.12, "NJ": 1.18,
	"NM": 0.98, "NY": 1.28, "NC": 0.96, "ND": 0.95, "OH": 0.96,
	"OK": 0.91, "OR": 1.12, "PA": 1.05, "RI": 1.15, "SC": 0.94,
	"SD": 0.95, "TN": 0.92, "TX": 0.96, "UT": 1.02, "VT": 1.15,
	"VA": 1.08, "WA": 1.15, "WV": 0.94, "WI": 0.98, "WY": 1.05,
}

// StateAdjustment returns the cost-of-living multiplier for a state
// abbreviation, or 1.0 when the state is unknown.
func StateAdjustment(state string) float64 {
	if adj, ok := stateAdjustments[state]; ok {
		return adj
	}
	return 1.0
}

var stateOrder = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// StateFromLocation scans a free-form location string ("Phoenix, AZ") for a
// known state abbreviation. The scan order is fixed so ambiguous strings
// resolve the same way every time.
func StateFromLocation(location string) string {
	upper := strings.ToUpper(location)
	for _, state := range stateOrder {
		if strings.Contains(upper, state) {
			return state
		}
	}
	return ""
}

var metroMap = map[int]Location{
	90000: {City: "Los Angeles", State: "CA", Region: "West Coast", Metro: "LA Metro"},
	94000: {City: "San Francisco", State: "CA", Region: "West Coast", Metro: "SF Bay Area"},
	92000: {City: "San Diego", State: "CA", Region: "West Coast", Metro: "San Diego Metro"},
	95000: {City: "Sacramento", State: "CA", Region: "West Coast", Metro: "Sacramento Metro"},
	10000: {City: "New York", State: "NY", Region: "Northeast", Metro: "NYC Metro"},
	11000: {City: "Brooklyn", State: "NY", Region: "Northeast", Metro: "NYC Metro"},
	12000: {City: "Albany", State: "NY", Region: "Northeast", Metro: "Albany Metro"},
	14000: {City: "Buffalo", State: "NY", Region: "Northeast", Metro: "Buffalo Metro"},
	75000: {City: "Dallas", State: "TX", Region: "South", Metro: "Dallas-Fort Worth"},
	77000: {City: "Houston", State: "TX", Region: "South", Metro: "Houston Metro"},
	78000: {City: "Austin", State: "TX", Region: "South", Metro: "Austin Metro"},
	79000: {City: "San Antonio", State: "TX", Region: "South", Metro: "San Antonio Metro"},
	33000: {City: "Miami", State: "FL", Region: "Southeast", Metro: "Miami Metro"},
	32000: {City: "Orlando", State: "FL", Region: "Southeast", Metro: "Orlando Metro"},
	60000: {City: "Chicago", State: "IL", Region: "Midwest", Metro: "Chicago Metro"},
	98000: {City: "Seattle", State: "WA", Region: "Pacific Northwest", Metro: "Seattle Metro"},
	99000: {City: "Spokane", State: "WA", Region: "Pacific Northwest", Metro: "Spokane Metro"},
	30000: {City: "Atlanta", State: "GA", Region: "Southeast", Metro: "Atlanta Metro"},
}

// LocationFromZIP maps a 5-digit ZIP code to an approximate metro area.
// Unknown codes fall back to broad regional buckets, then to a national
// average location.
func LocationFromZIP(zipCode string) Location {
	loc := Location{ZIP: zipCode, City: "Anytown", State: "USA", Region: "National", Metro: "National Average"}

	zip, err := strconv.Atoi(zipCode)
	if err != nil {
		return loc
	}

	if metro, ok := metroMap[zip/1000*1000]; ok {
		metro.ZIP = zipCode
		return metro
	}

	switch {
	case zip >= 90000 && zip <= 96999:
		return Location{ZIP: zipCode, City: "Los Angeles", State: "CA", Region: "West Coast", Metro: "California"}
	case zip >= 10000 && zip <= 14999:
		return Location{ZIP: zipCode, City: "New York", State: "NY", Region: "Northeast", Metro: "Northeast"}
	case zip >= 70000 && zip <= 79999:
		return Location{ZIP: zipCode, City: "Dallas", State: "TX", Region: "South", Metro: "Texas"}
	case zip >= 30000 && zip <= 39999:
		return Location{ZIP: zipCode, City: "Atlanta", State: "GA", Region: "Southeast", Metro: "Southeast"}
	case zip >= 60000 && zip <= 69999:
		return Location{ZIP: zipCode, City: "Chicago", State: "IL", Region: "Midwest", Metro: "Midwest"}
	case zip >= 98000 && zip <= 99999:
		return Location{ZIP: zipCode, City: "Seattle", State: "WA", Region: "Pacific Northwest", Metro: "Pacific Northwest"}
	}

	return loc
}

// ZIPMultiplier returns a cost-of-living multiplier derived from broad
// ZIP code ranges. Unknown or malformed codes price at the national average.
func ZIPMultiplier(zipCode string) float64 {
	zip, err := strconv.Atoi(zipCode)
	if err != nil {
		return 1.0
	}

	switch {
	case zip >= 10000 && zip <= 14999:
		return 1.15
	case zip >= 90000 && zip <= 96999:
		return 1.25
	case zip >= 98000 && zip <= 99999:
		return 1.18
	case zip >= 97000 && zip <= 97999:
		return 1.12
	case zip >= 80000 && zip <= 81999:
		return 1.08
	case zip >= 30000 && zip <= 39999:
		return 0.88
	case zip >= 40000 && zip <= 49999:
		return 0.92
	case zip >= 50000 && zip <= 52999:
		return 0.90
	case zip >= 70000 && zip <= 79999:
		return 0.95
	}
	return 1.0
}

// RegionMultiplier returns the cost-of-living multiplier for a named region.
func RegionMultiplier(region string) float64 {
	multipliers := map[string]float64{
		"West Coast":        1.25,
		"Northeast":         1.15,
		"Pacific Northwest": 1.18,
		"South":             0.95,
		"Southeast":         0.88,
		"Midwest":           0.95,
		"National":          1.0,
	}
	if m, ok := multipliers[region]; ok {
		return m
	}
	return 1.0
}

// StoreChain identifies a grocery chain and its product search endpoint.
type StoreChain struct {
	ID        string
	Name      string
	SearchURL string
}

var nationalChains = []StoreChain{
	{ID: "walmart", Name: "Walmart", SearchURL: "https://www.walmart.com/search"},
	{ID: "target", Name: "Target", SearchURL: "https://www.target.com/s"},
	{ID: "kroger-nat", Name: "Kroger", SearchURL: "https://www.kroger.com/search"},
}

var regionalChains = map[string][]StoreChain{
	"CA": {
		{ID: "ralphs", Name: "Ralphs", SearchURL: "https://www.ralphs.com/search"},
		{ID: "vons", Name: "Vons", SearchURL: "https://www.vons.com/search"},
		{ID: "safeway-ca", Name: "Safeway", SearchURL: "https://www.safeway.com/search"},
	},
	"TX": {
		{ID: "heb", Name: "H-E-B", SearchURL: "https://www.heb.com/search"},
		{ID: "kroger-tx", Name: "Kroger", SearchURL: "https://www.kroger.com/search"},
		{ID: "randalls", Name: "Randalls", SearchURL: "https://www.randalls.com/search"},
	},
	"NY": {
		{ID: "stop-shop", Name: "Stop & Shop", SearchURL: "https://stopandshop.com/search"},
		{ID: "wegmans", Name: "Wegmans", SearchURL: "https://www.wegmans.com/search"},
		{ID: "key-food", Name: "Key Food", SearchURL: "https://www.keyfood.com/search"},
	},
	"FL": {
		{ID: "publix", Name: "Publix", SearchURL: "https://www.publix.com/search"},
		{ID: "winn-dixie", Name: "Winn-Dixie", SearchURL: "https://www.winndixie.com/search"},
	},
	"WA": {
		{ID: "safeway-wa", Name: "Safeway", SearchURL: "https://www.safeway.com/search"},
		{ID: "fred-meyer", Name: "Fred Meyer", SearchURL: "https://www.fredmeyer.com/search"},
		{ID: "qfc", Name: "QFC", SearchURL: "https://www.qfc.com/search"},
	},
}

// RegionalStoreChains returns the grocery chains to search for a state,
// falling back to national chains.
func RegionalStoreChains(state string) []StoreChain {
	if chains, ok := regionalChains[state]; ok {
		return chains
	}
	return nationalChains
}
