package shopping

import "testing"

func TestGroceryFormat(t *testing.T) {
	cases := []struct {
		name     string
		item     string
		amount   float64
		unit     string
		category string
		want     string
	}{
		{"CookingUnitButter", "butter", 3, "tbsp", "dairy", "1 lb butter"},
		{"CookingUnitMilk", "milk", 2, "cups", "dairy", "1 gallon milk"},
		{"CookingUnitBrothLarge", "chicken broth", 6, "cups", "pantry", "2 cartons broth (32oz each)"},
		{"CookingUnitBrothSmall", "chicken broth", 3, "cups", "pantry", "1 carton broth (32oz)"},
		{"CookingUnitTeaspoon", "vanilla extract", 1, "tsp", "pantry", "1 container vanilla extract"},
		{"ProduceOnion", "onion", 2, "whole", "produce", "1 bag Yellow Onions (3lbs)"},
		{"ProduceRedOnionFew", "red onion", 2, "whole", "produce", "2 Large Red Onions"},
		{"ProduceRedOnionMany", "red onion", 3, "whole", "produce", "1 bag Red Onions (2lbs)"},
		{"ProduceGarlic", "garlic", 4, "cloves", "produce", "1 head Fresh Garlic"},
		{"ProduceBellPeppers", "bell pepper", 3, "whole", "produce", "3 Bell Peppers (mixed colors)"},
		{"PantryRice", "rice", 3, "lbs", "pantry", "1 bag White Rice (5lbs)"},
		{"PantryBlackBeans", "black beans", 2, "cans", "pantry", "2 cans Black Beans (15oz each)"},
		{"DairyEggs", "eggs", 6, "whole", "dairy", "1 dozen Large Eggs"},
		{"MeatGroundBeef", "ground beef", 2, "lbs", "meat", "2 packages Ground Beef 80/20 (1lb each)"},
		{"MeatChickenBreastFamily", "chicken breast", 3, "lbs", "meat", "1 family pack Chicken Breasts (3lbs)"},
		{"FrozenPeas", "frozen peas", 1, "bag", "frozen", "1 bag Frozen Green Peas (12oz)"},
		{"SpiceSalt", "salt", 1, "container", "spices", "1 container Table Salt (26oz)"},
		{"SpiceUnlisted", "saffron", 1, "pinch", "spices", "1 container saffron (1-4oz)"},
		{"PackageUnitCan", "coconut milk", 2, "cans", "pantry", "2 cans coconut milk"},
		{"PackageUnitJar", "tahini", 1, "jar", "pantry", "1 jar tahini"},
		{"FallbackSauce", "hot sauce", 1, "splash", "pantry", "1 bottle hot sauce (16-24oz)"},
		{"FallbackUnknown", "dragonfruit puree", 1, "glob", "produce", "1 package/container dragonfruit puree (standard size)"},
		{"FallbackUnknownMultiple", "dragonfruit puree", 2.3, "glob", "produce", "3 packages/containers dragonfruit puree (standard size each)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := GroceryFormat(tc.item, tc.amount, tc.unit, tc.category)
			if got != tc.want {
				t.Errorf("GroceryFormat(%q, %v, %q, %q) = %q, want %q", tc.item, tc.amount, tc.unit, tc.category, got, tc.want)
			}
		})
	}
}

func TestGroceryFormatNeverEmpty(t *testing.T) {
	if got := GroceryFormat("mystery goo", 0, "", ""); got == "" {
		t.Error("Expected a usable fallback for unknown input")
	}
}
