package pricing

import "strings"

// Fallback shelf prices matched by substring. Order matters: the first
// matching key wins, so broader names sit above their compounds.
var baseEstimates = []struct {
	Key   string
	Price float64
}{
	{"ground beef", 5.48}, {"chicken breast", 5.98}, {"chicken thigh", 4.48},
	{"eggs", 2.98}, {"bacon", 6.48}, {"salmon", 12.98}, {"tuna", 8.98},

	{"milk", 3.78}, {"butter", 4.98}, {"cheese", 4.48}, {"yogurt", 5.48},
	{"cream cheese", 3.48}, {"sour cream", 2.98},

	{"onion", 1.68}, {"carrot", 1.48}, {"potato", 3.48}, {"tomato", 2.98},
	{"banana", 1.78}, {"apple", 2.48}, {"lettuce", 2.28}, {"bell pepper", 1.98},
	{"garlic", 0.98}, {"celery", 1.98}, {"broccoli", 2.48},

	{"rice", 4.48}, {"pasta", 1.48}, {"flour", 3.98}, {"sugar", 3.48},
	{"oil", 4.98}, {"vinegar", 2.48}, {"salt", 1.28}, {"pepper", 2.98},

	{"marinara", 1.98}, {"diced tomatoes", 1.48}, {"beans", 1.68},
	{"broth", 2.98}, {"soup", 2.48}, {"peanut butter", 4.48},

	{"bread", 2.48}, {"bagel", 3.48}, {"cereal", 4.98}, {"oats", 4.98},

	{"frozen vegetables", 2.48}, {"frozen fruit", 3.98}, {"ice cream", 5.48},

	{"basil", 1.98}, {"oregano", 1.98}, {"cumin", 2.48}, {"paprika", 2.48},
	{"garlic powder", 2.28}, {"onion powder", 2.28}, {"black pepper", 2.98},
}

const defaultEstimatePrice = 3.48

// BaseEstimate returns a national-average shelf price for an item name.
// It always returns a usable price.
func BaseEstimate(name string) float64 {
	lower := strings.ToLower(name)
	for _, e := range baseEstimates {
		if strings.Contains(lower, e.Key) {
			return e.Price
		}
	}
	return defaultEstimatePrice
}
