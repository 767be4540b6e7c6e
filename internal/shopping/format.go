package shopping

import (
	"fmt"
	"math"
	"strings"
)

// packItem is one consolidated ingredient as the formatter sees it: the
// original name plus lowercased match fields and the rounded-up count.
type packItem struct {
	name      string
	lowerName string
	lowerUnit string
	category  string
	amount    float64
	count     int
}

// packRule pairs a predicate with the store package it produces. Rules are
// evaluated in table order and the first match wins.
type packRule struct {
	match  func(packItem) bool
	format func(packItem) string
}

func apply(rules []packRule, item packItem) (string, bool) {
	for _, r := range rules {
		if r.match(item) {
			return r.format(item), true
		}
	}
	return "", false
}

// Predicates.

func named(probe string) func(packItem) bool {
	return func(it packItem) bool { return strings.Contains(it.lowerName, probe) }
}

func namedAny(probes ...string) func(packItem) bool {
	return func(it packItem) bool {
		for _, p := range probes {
			if strings.Contains(it.lowerName, p) {
				return true
			}
		}
		return false
	}
}

func notNamed(probe string) func(packItem) bool {
	return func(it packItem) bool { return !strings.Contains(it.lowerName, probe) }
}

func unitIn(units ...string) func(packItem) bool {
	return func(it packItem) bool {
		for _, u := range units {
			if it.lowerUnit == u {
				return true
			}
		}
		return false
	}
}

func all(preds ...func(packItem) bool) func(packItem) bool {
	return func(it packItem) bool {
		for _, p := range preds {
			if !p(it) {
				return false
			}
		}
		return true
	}
}

func anyItem(packItem) bool { return true }

// Formatters.

func fixed(s string) func(packItem) string {
	return func(packItem) string { return s }
}

// countOrOne emits the plural form (with a %d verb) when more than one
// package is needed.
func countOrOne(singular, plural string) func(packItem) string {
	return func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf(plural, it.count)
		}
		return singular
	}
}

// container formats "1 container <name>".
func container(it packItem) string {
	return fmt.Sprintf("1 container %s", it.name)
}

// GroceryFormat converts a recipe measurement into something a person can
// actually put in a cart: cooking units become store packages, decimals
// round up to whole counts, and every input gets some usable output. The
// rule tables run in order: cooking units, then category conventions, then
// package units named outright, then the guessing fallback.
func GroceryFormat(name string, amount float64, unit, category string) string {
	count := int(math.Ceil(amount))
	if count < 1 {
		count = 1
	}
	item := packItem{
		name:      name,
		lowerName: strings.ToLower(name),
		lowerUnit: strings.ToLower(unit),
		category:  category,
		amount:    amount,
		count:     count,
	}

	if s, ok := apply(cookingUnitRules, item); ok {
		return s
	}
	if s, ok := apply(categoryRules[item.category], item); ok {
		return s
	}
	if s, ok := apply(packageUnitRules, item); ok {
		return s
	}
	s, _ := apply(fallbackRules, item)
	return s
}

var (
	isTbsp = unitIn("tbsp", "tablespoon", "tablespoons")
	isCup  = unitIn("cup", "cups")
	isTsp  = unitIn("tsp", "teaspoon", "teaspoons")
)

// Spoon and cup measurements mean the recipe uses a little of something the
// shopper buys once in a standard package.
var cookingUnitRules = []packRule{
	{all(isTbsp, named("butter")), fixed("1 lb butter")},
	{all(isTbsp, named("oil")), fixed("1 bottle cooking oil")},
	{all(isTbsp, named("flour")), fixed("1 bag flour (5lbs)")},
	{all(isTbsp, named("honey")), fixed("1 bottle honey")},
	{isTbsp, container},

	{all(isCup, named("milk")), fixed("1 gallon milk")},
	{all(isCup, namedAny("broth", "stock")), func(it packItem) string {
		if it.amount > 4 {
			return "2 cartons broth (32oz each)"
		}
		return "1 carton broth (32oz)"
	}},
	{all(isCup, named("cheese"), namedAny("shredded", "cheddar")), func(it packItem) string {
		if it.amount > 1 {
			return "2 bags shredded cheese (8oz each)"
		}
		return "1 bag shredded cheese (8oz)"
	}},
	{all(isCup, named("peas")), fixed("1 bag frozen peas (12oz)")},
	{all(isCup, named("breadcrumb")), fixed("1 container breadcrumbs")},
	{all(isCup, named("lentils")), fixed("1 bag lentils (1lb)")},
	{all(isCup, named("rice")), fixed("1 bag rice (5lbs)")},
	{all(isCup, func(it packItem) bool { return it.category == "pantry" }), container},

	{isTsp, container},
}

var categoryRules = map[string][]packRule{
	"produce": produceRules,
	"pantry":  pantryRules,
	"dairy":   dairyRules,
	"meat":    meatRules,
	"frozen":  frozenRules,
	"spices":  spiceRules,
}

var produceRules = []packRule{
	{namedAny("yellow onion", "sweet onion"), fixed("1 bag Yellow/Sweet Onions (3lbs)")},
	{named("red onion"), func(it packItem) string {
		if it.count > 2 {
			return "1 bag Red Onions (2lbs)"
		}
		return countOrOne("1 Large Red Onion", "%d Large Red Onions")(it)
	}},
	{named("onion"), fixed("1 bag Yellow Onions (3lbs)")},
	{named("baby carrot"), fixed("1 bag Baby Carrots (2lbs)")},
	{named("carrot"), fixed("1 bag Large Carrots (2lbs)")},
	{named("red potato"), fixed("1 bag Red Potatoes (3lbs)")},
	{named("potato"), fixed("1 bag Russet Potatoes (5lbs)")},
	{named("garlic"), fixed("1 head Fresh Garlic")},
	{named("banana"), fixed("1 bunch Bananas (6-8 bananas)")},
	{namedAny("bell pepper", "pepper"), countOrOne("1 Bell Pepper", "%d Bell Peppers (mixed colors)")},
	{named("celery"), fixed("1 bunch Fresh Celery")},
	{named("lettuce"), fixed("1 head Lettuce (Romaine or Iceberg)")},
	{named("cherry tomato"), fixed("1 container Cherry Tomatoes (1lb)")},
	{all(named("tomato"), notNamed("sauce"), notNamed("diced")), countOrOne("1 Medium Tomato", "%d Medium Tomatoes")},
	{named("broccoli"), countOrOne("1 head Fresh Broccoli", "%d heads Fresh Broccoli")},
	{named("spinach"), fixed("1 bag Fresh Spinach (5oz)")},
	{named("mushroom"), fixed("1 container White Button Mushrooms (8oz)")},
	{named("lemon"), func(it packItem) string {
		if it.count > 3 {
			return "1 bag Lemons (2lbs)"
		}
		return countOrOne("1 Lemon", "%d Lemons")(it)
	}},
	{named("apple"), func(it packItem) string {
		if it.count > 4 {
			return "1 bag Apples (3lbs)"
		}
		return countOrOne("1 Apple", "%d Apples")(it)
	}},
}

var pantryRules = []packRule{
	{named("flour"), fixed("1 bag All-Purpose Flour (5lbs)")},
	{named("brown rice"), fixed("1 bag Brown Rice (2lbs)")},
	{named("rice"), fixed("1 bag White Rice (5lbs)")},
	{named("spaghetti"), countOrOne("1 box Spaghetti Pasta (1lb)", "%d boxes Spaghetti Pasta (1lb each)")},
	{namedAny("pasta", "noodle"), func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf("%d boxes %s Pasta (1lb each)", it.count, it.name)
		}
		return fmt.Sprintf("1 box %s Pasta (1lb)", it.name)
	}},
	{named("marinara"), countOrOne("1 jar Marinara Sauce (24oz)", "%d jars Marinara Sauce (24oz each)")},
	{named("tomato sauce"), countOrOne("1 can Tomato Sauce (15oz)", "%d cans Tomato Sauce (15oz each)")},
	{named("diced tomatoes"), countOrOne("1 can Diced Tomatoes (14.5oz)", "%d cans Diced Tomatoes (14.5oz each)")},
	{named("kidney beans"), countOrOne("1 can Kidney Beans (15oz)", "%d cans Kidney Beans (15oz each)")},
	{named("black beans"), countOrOne("1 can Black Beans (15oz)", "%d cans Black Beans (15oz each)")},
	{named("chicken broth"), countOrOne("1 carton Chicken Broth (32oz)", "%d cartons Chicken Broth (32oz each)")},
	{named("vegetable broth"), countOrOne("1 carton Vegetable Broth (32oz)", "%d cartons Vegetable Broth (32oz each)")},
	{namedAny("broth", "stock"), func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf("%d cartons %s (32oz each)", it.count, it.name)
		}
		return fmt.Sprintf("1 carton %s (32oz)", it.name)
	}},
	{named("olive oil"), fixed("1 bottle Extra Virgin Olive Oil (16.9oz)")},
	{named("vegetable oil"), fixed("1 bottle Vegetable Oil (48oz)")},
	{named("oil"), func(it packItem) string { return fmt.Sprintf("1 bottle %s (16-48oz)", it.name) }},
	{named("brown sugar"), fixed("1 box Brown Sugar (1lb)")},
	{named("sugar"), fixed("1 bag Sugar (4lbs)")},
	{named("oats"), fixed("1 container Old Fashioned Rolled Oats (42oz)")},
	{named("bread"), fixed("1 loaf Bread (20oz)")},
	{named("peanut butter"), fixed("1 jar Peanut Butter (40oz)")},
	{named("honey"), fixed("1 bottle Honey (12oz)")},
	{named("baking powder"), fixed("1 container Baking Powder (10oz)")},
	{named("tomato soup"), func(it packItem) string {
		return fmt.Sprintf("%d cans Tomato Soup (10.75oz each)", it.count)
	}},
	{named("soup"), func(it packItem) string {
		return fmt.Sprintf("%d cans %s (10.75oz each)", it.count, it.name)
	}},
	{named("tuna"), countOrOne("1 can Chunk Light Tuna (5oz)", "%d cans Chunk Light Tuna (5oz each)")},
	{named("cereal"), func(it packItem) string { return fmt.Sprintf("1 box %s Cereal (12-18oz)", it.name) }},
}

// Shredded cheese is recognized by the unit as well as the name: recipes
// measure it in cups.
func shredded(it packItem) bool {
	return strings.Contains(it.lowerUnit, "cup") || strings.Contains(it.lowerName, "shredded")
}

var dairyRules = []packRule{
	{named("milk"), fixed("1 gallon Milk (2% or Whole)")},
	{named("egg"), fixed("1 dozen Large Eggs")},
	{named("butter"), fixed("1 lb Butter (4 sticks)")},
	{all(named("parmesan"), named("grated")), fixed("1 container Grated Parmesan Cheese (8oz)")},
	{named("cream cheese"), countOrOne("1 package Cream Cheese (8oz)", "%d packages Cream Cheese (8oz each)")},
	{named("sour cream"), fixed("1 container Sour Cream (16oz)")},
	{named("yogurt"), func(it packItem) string { return fmt.Sprintf("1 container %s (32oz)", it.name) }},
	{all(named("cheese"), shredded), func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf("2 bags %s Shredded (8oz each)", it.name)
		}
		return fmt.Sprintf("1 bag %s Shredded (8oz)", it.name)
	}},
	{named("cheese"), func(it packItem) string { return fmt.Sprintf("1 package %s (8oz)", it.name) }},
}

var meatRules = []packRule{
	{named("ground beef"), countOrOne("1 package Ground Beef 80/20 (1lb)", "%d packages Ground Beef 80/20 (1lb each)")},
	{named("ground turkey"), countOrOne("1 package Ground Turkey 93/7 (1lb)", "%d packages Ground Turkey 93/7 (1lb each)")},
	{named("chicken breast"), func(it packItem) string {
		if it.count > 2 {
			return "1 family pack Chicken Breasts (3lbs)"
		}
		return countOrOne("1lb package Chicken Breasts", "%dlb package Chicken Breasts")(it)
	}},
	{named("chicken thigh"), func(it packItem) string {
		if it.count > 2 {
			return "1 family pack Chicken Thighs (3lbs)"
		}
		return "1 package Chicken Thighs (1.5lbs)"
	}},
	{named("whole chicken"), countOrOne("1 Whole Chicken (3-4lbs)", "%d Whole Chickens (3-4lbs each)")},
	{named("salmon"), countOrOne("1lb Fresh Salmon Fillets", "%dlb Fresh Salmon Fillets")},
	{named("bacon"), countOrOne("1 package Thick Cut Bacon (1lb)", "%d packages Thick Cut Bacon (1lb each)")},
	{named("sausage"), countOrOne("1 package Italian Sausage Links (1lb)", "%d packages Italian Sausage Links (1lb each)")},
}

var frozenRules = []packRule{
	{named("mixed vegetables"), countOrOne("1 bag Frozen Mixed Vegetables (12oz)", "%d bags Frozen Mixed Vegetables (12oz each)")},
	{named("peas"), countOrOne("1 bag Frozen Green Peas (12oz)", "%d bags Frozen Green Peas (12oz each)")},
	{named("corn"), countOrOne("1 bag Frozen Corn Kernels (12oz)", "%d bags Frozen Corn Kernels (12oz each)")},
	{named("ice cream"), func(it packItem) string { return fmt.Sprintf("1 container %s Ice Cream (1.5qt)", it.name) }},
	{named("frozen"), func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf("%d bags/boxes %s (10-12oz each)", it.count, it.name)
		}
		return fmt.Sprintf("1 bag/box %s (10-12oz)", it.name)
	}},
}

var spiceRules = []packRule{
	{named("salt"), fixed("1 container Table Salt (26oz)")},
	{named("black pepper"), fixed("1 container Ground Black Pepper (4oz)")},
	{named("garlic powder"), fixed("1 container Garlic Powder (3.4oz)")},
	{named("onion powder"), fixed("1 container Onion Powder (3.1oz)")},
	{named("paprika"), fixed("1 container Paprika (2.5oz)")},
	{named("cumin"), fixed("1 container Ground Cumin (2.2oz)")},
	{named("chili powder"), fixed("1 container Chili Powder (2.5oz)")},
	{named("oregano"), fixed("1 container Dried Oregano (1oz)")},
	{named("basil"), fixed("1 container Dried Basil (1oz)")},
	{named("thyme"), fixed("1 container Dried Thyme (1oz)")},
	{named("rosemary"), fixed("1 container Dried Rosemary (1oz)")},
	{named("cinnamon"), fixed("1 container Ground Cinnamon (2.4oz)")},
	{named("bay leaves"), fixed("1 container Bay Leaves (0.5oz)")},
	{anyItem, func(it packItem) string { return fmt.Sprintf("1 container %s (1-4oz)", it.name) }},
}

// When the recipe already speaks in package units, keep them.
var packageUnitRules = []packRule{
	{unitIn("can", "cans"), func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf("%d cans %s", it.count, it.name)
		}
		return fmt.Sprintf("1 can %s", it.name)
	}},
	{unitIn("bottle", "jar", "package", "bag", "box", "head", "bunch"), func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf("%d %ss %s", it.count, it.lowerUnit, it.name)
		}
		return fmt.Sprintf("1 %s %s", it.lowerUnit, it.name)
	}},
}

func guessed(single, multiple string) func(packItem) string {
	return func(it packItem) string {
		if it.count > 1 {
			return fmt.Sprintf(multiple, it.count, it.name)
		}
		return fmt.Sprintf(single, it.name)
	}
}

// The last table always answers; the final rule matches everything.
var fallbackRules = []packRule{
	{named("sauce"), guessed("1 bottle %s (16-24oz)", "%d bottles %s (16-24oz each)")},
	{named("dressing"), guessed("1 bottle %s (16-24oz)", "%d bottles %s (16-24oz each)")},
	{named("cereal"), guessed("1 box %s (12-16oz)", "%d boxes %s (12-16oz each)")},
	{named("crackers"), guessed("1 box %s (12-16oz)", "%d boxes %s (12-16oz each)")},
	{named("nuts"), guessed("1 bag %s (8-16oz)", "%d bags %s (8-16oz each)")},
	{named("chips"), guessed("1 bag %s (8-16oz)", "%d bags %s (8-16oz each)")},
	{named("seasoning"), guessed("1 container %s (1-4oz)", "%d containers %s (1-4oz each)")},
	{named("spice"), guessed("1 container %s (1-4oz)", "%d containers %s (1-4oz each)")},
	{anyItem, guessed("1 package/container %s (standard size)", "%d packages/containers %s (standard size each)")},
}
