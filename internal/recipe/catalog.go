package recipe

// Catalog returns the built-in budget recipe database. It is used as the
// candidate pool when no AI generation is configured, and as a supplement
// when generation comes up short. Every recipe here already satisfies
// Normalize, so callers can use them directly.
func Catalog() []Recipe {
	return []Recipe{
		{
			ID:          "oatmeal-basic",
			Name:        "Hearty Oatmeal",
			Description: "Filling breakfast that keeps kids full until lunch",
			Servings:    4,
			PrepTime:    10,
			CookTime:    5,
			Difficulty:  "Easy",
			Tags:        []string{"breakfast", "healthy", "filling", "quick"},
			Ingredients: []Ingredient{
				{Name: "rolled oats", Amount: 1, Unit: "container", Category: CategoryPantry, StoreUnit: "42oz container"},
				{Name: "milk", Amount: 1, Unit: "gallon", Category: CategoryDairy, StoreUnit: "1 gallon jug"},
				{Name: "honey", Amount: 1, Unit: "bottle", Category: CategoryPantry, StoreUnit: "12oz bottle"},
				{Name: "cinnamon", Amount: 1, Unit: "container", Category: CategorySpices, StoreUnit: "spice container"},
				{Name: "banana", Amount: 1, Unit: "bunch", Category: CategoryProduce, StoreUnit: "1 bunch (6-8 bananas)"},
			},
			Instructions: []string{
				"Bring milk to a simmer in a large pot",
				"Add oats and cinnamon, cook for 5 minutes stirring occasionally",
				"Stir in honey and sliced bananas",
				"Serve hot with additional toppings if desired",
			},
			Nutrition:         Nutrition{Calories: 280, Protein: 12, Carbs: 45, Fat: 6},
			Allergens:         []string{"dairy"},
			CommonIngredients: []string{"oats", "milk", "banana", "cinnamon", "honey"},
		},
		{
			ID:          "pancakes-basic",
			Name:        "Fluffy Pancakes",
			Description: "Weekend breakfast favorite that uses pantry staples",
			Servings:    6,
			PrepTime:    10,
			CookTime:    15,
			Difficulty:  "Easy",
			Tags:        []string{"breakfast", "weekend", "kid-friendly"},
			Ingredients: []Ingredient{
				{Name: "all-purpose flour", Amount: 1, Unit: "bag", Category: CategoryPantry, StoreUnit: "5lb bag"},
				{Name: "milk", Amount: 1, Unit: "gallon", Category: CategoryDairy, StoreUnit: "1 gallon jug"},
				{Name: "eggs", Amount: 1, Unit: "dozen", Category: CategoryDairy, StoreUnit: "1 dozen eggs"},
				{Name: "baking powder", Amount: 1, Unit: "container", Category: CategoryPantry, StoreUnit: "baking powder container"},
				{Name: "sugar", Amount: 1, Unit: "bag", Category: CategoryPantry, StoreUnit: "4lb bag"},
				{Name: "salt", Amount: 1, Unit: "container", Category: CategoryPantry, StoreUnit: "salt container"},
				{Name: "vegetable oil", Amount: 1, Unit: "bottle", Category: CategoryPantry, StoreUnit: "48oz bottle"},
			},
			Instructions: []string{
				"Mix dry ingredients in a large bowl",
				"Whisk wet ingredients in separate bowl",
				"Combine wet and dry ingredients until just mixed",
				"Cook on hot griddle until bubbles form, then flip",
			},
			Nutrition:         Nutrition{Calories: 220, Protein: 8, Carbs: 32, Fat: 7},
			Allergens:         []string{"dairy", "eggs", "gluten"},
			CommonIngredients: []string{"flour", "milk", "eggs", "baking powder"},
		},
		{
			ID:          "rice-beans",
			Name:        "Rice and Beans",
			Description: "Complete protein meal that stretches the budget",
			Servings:    6,
			PrepTime:    10,
			CookTime:    25,
			Difficulty:  "Easy",
			Tags:        []string{"lunch", "filling", "protein", "budget"},
			Ingredients: []Ingredient{
				{Name: "white rice", Amount: 1, Unit: "bag", Category: CategoryPantry, StoreUnit: "5lb bag"},
				{Name: "black beans", Amount: 2, Unit: "cans", Category: CategoryPantry, StoreUnit: "2 cans"},
				{Name: "onion", Amount: 1, Unit: "bag", Category: CategoryProduce, StoreUnit: "3lb bag"},
				{Name: "garlic", Amount: 1, Unit: "head", Category: CategoryProduce, StoreUnit: "1 head garlic"},
				{Name: "cumin", Amount: 1, Unit: "container", Category: CategorySpices, StoreUnit: "spice container"},
				{Name: "olive oil", Amount: 1, Unit: "bottle", Category: CategoryPantry, StoreUnit: "16.9oz bottle"},
				{Name: "chicken broth", Amount: 4, Unit: "cups", Category: CategoryPantry},
			},
			Instructions: []string{
				"Cook rice in chicken broth according to package directions",
				"Sauté diced onion and garlic in olive oil",
				"Add drained beans and cumin, heat through",
				"Serve beans over rice",
			},
			Nutrition:         Nutrition{Calories: 320, Protein: 14, Carbs: 58, Fat: 5},
			Allergens:         []string{},
			CommonIngredients: []string{"rice", "beans", "onion", "garlic", "cumin"},
		},
		{
			ID:          "grilled-cheese-soup",
			Name:        "Grilled Cheese & Tomato Soup",
			Description: "Classic comfort food combo that kids love",
			Servings:    4,
			PrepTime:    10,
			CookTime:    15,
			Difficulty:  "Easy",
			Tags:        []string{"lunch", "comfort", "kid-friendly"},
			Ingredients: []Ingredient{
				{Name: "bread", Amount: 8, Unit: "slices", Category: CategoryPantry},
				{Name: "cheddar cheese", Amount: 8, Unit: "slices", Category: CategoryDairy},
				{Name: "butter", Amount: 4, Unit: "tbsp", Category: CategoryDairy},
				{Name: "tomato soup", Amount: 2, Unit: "cans", Category: CategoryPantry},
				{Name: "milk", Amount: 1, Unit: "cup", Category: CategoryDairy},
			},
			Instructions: []string{
				"Butter one side of each bread slice",
				"Place cheese between bread, butter-side out",
				"Grill sandwiches until golden and cheese melts",
				"Heat soup with milk until warm, serve together",
			},
			Nutrition:         Nutrition{Calories: 420, Protein: 18, Carbs: 38, Fat: 22},
			Allergens:         []string{"dairy", "gluten"},
			CommonIngredients: []string{"bread", "cheese", "butter", "milk"},
		},
		{
			ID:          "spaghetti-marinara",
			Name:        "Spaghetti with Marinara",
			Description: "Family favorite that feeds a crowd for cheap",
			Servings:    8,
			PrepTime:    5,
			CookTime:    20,
			Difficulty:  "Easy",
			Tags:        []string{"dinner", "pasta", "kid-friendly", "large-batch"},
			Ingredients: []Ingredient{
				{Name: "spaghetti pasta", Amount: 2, Unit: "boxes", Category: CategoryPantry, StoreUnit: "2 boxes (1lb each)"},
				{Name: "marinara sauce", Amount: 2, Unit: "jars", Category: CategoryPantry, StoreUnit: "2 jars marinara sauce"},
				{Name: "ground beef", Amount: 1, Unit: "package", Category: CategoryMeat, StoreUnit: "1lb package ground beef"},
				{Name: "onion", Amount: 1, Unit: "bag", Category: CategoryProduce, StoreUnit: "3lb bag"},
				{Name: "garlic", Amount: 1, Unit: "head", Category: CategoryProduce, StoreUnit: "1 head garlic"},
				{Name: "parmesan cheese", Amount: 1, Unit: "container", Category: CategoryDairy, StoreUnit: "grated parmesan container"},
				{Name: "olive oil", Amount: 1, Unit: "bottle", Category: CategoryPantry, StoreUnit: "16.9oz bottle"},
			},
			Instructions: []string{
				"Cook pasta according to package directions",
				"Brown ground beef with diced onion and garlic",
				"Add marinara sauce and simmer 10 minutes",
				"Serve over pasta with parmesan cheese",
			},
			Nutrition:         Nutrition{Calories: 450, Protein: 22, Carbs: 52, Fat: 15},
			Allergens:         []string{"gluten", "dairy"},
			CommonIngredients: []string{"pasta", "marinara", "ground beef", "onion", "garlic"},
		},
		{
			ID:          "chicken-rice-casserole",
			Name:        "Chicken Rice Casserole",
			Description: "One-pan dinner that uses leftover chicken",
			Servings:    6,
			PrepTime:    15,
			CookTime:    45,
			Difficulty:  "Medium",
			Tags:        []string{"dinner", "casserole", "one-pan", "leftovers"},
			Ingredients: []Ingredient{
				{Name: "chicken breast", Amount: 1, Unit: "package", Category: CategoryMeat, StoreUnit: "2lb package chicken breast"},
				{Name: "white rice", Amount: 1, Unit: "bag", Category: CategoryPantry, StoreUnit: "5lb bag rice"},
				{Name: "mixed vegetables", Amount: 2, Unit: "bags", Category: CategoryFrozen, StoreUnit: "2 bags frozen mixed vegetables (12oz each)"},
				{Name: "chicken broth", Amount: 2, Unit: "cartons", Category: CategoryPantry, StoreUnit: "2 cartons chicken broth (32oz each)"},
				{Name: "cheddar cheese", Amount: 1, Unit: "bag", Category: CategoryDairy, StoreUnit: "1 bag shredded cheddar cheese (8oz)"},
				{Name: "onion", Amount: 1, Unit: "bag", Category: CategoryProduce, StoreUnit: "3lb bag onions"},
				{Name: "cream of mushroom soup", Amount: 1, Unit: "can", Category: CategoryPantry, StoreUnit: "1 can cream of mushroom soup"},
			},
			Instructions: []string{
				"Cook and dice chicken breast",
				"Mix rice, chicken, vegetables, and diced onion in casserole dish",
				"Combine broth and soup, pour over rice mixture",
				"Bake covered at 350°F for 45 minutes, top with cheese last 5 minutes",
			},
			Nutrition:         Nutrition{Calories: 380, Protein: 28, Carbs: 35, Fat: 14},
			Allergens:         []string{"dairy"},
			CommonIngredients: []string{"chicken", "rice", "mixed vegetables", "broth", "cheese"},
		},
		{
			ID:          "slow-cooker-chili",
			Name:        "Slow Cooker Chili",
			Description: "Set it and forget it meal that makes great leftovers",
			Servings:    10,
			PrepTime:    15,
			CookTime:    480,
			Difficulty:  "Easy",
			Tags:        []string{"dinner", "slow-cooker", "large-batch", "freezer-friendly"},
			Ingredients: []Ingredient{
				{Name: "ground beef", Amount: 2, Unit: "packages", Category: CategoryMeat, StoreUnit: "2 packages ground beef (1lb each)"},
				{Name: "kidney beans", Amount: 2, Unit: "cans", Category: CategoryPantry, StoreUnit: "2 cans kidney beans"},
				{Name: "black beans", Amount: 2, Unit: "cans", Category: CategoryPantry, StoreUnit: "2 cans black beans"},
				{Name: "diced tomatoes", Amount: 2, Unit: "cans", Category: CategoryPantry, StoreUnit: "2 cans diced tomatoes"},
				{Name: "tomato sauce", Amount: 1, Unit: "can", Category: CategoryPantry, StoreUnit: "1 can tomato sauce"},
				{Name: "onion", Amount: 1, Unit: "bag", Category: CategoryProduce, StoreUnit: "3lb bag onions"},
				{Name: "bell pepper", Amount: 3, Unit: "peppers", Category: CategoryProduce, StoreUnit: "3 bell peppers"},
				{Name: "chili powder", Amount: 1, Unit: "container", Category: CategorySpices, StoreUnit: "1 container chili powder"},
				{Name: "cumin", Amount: 1, Unit: "container", Category: CategorySpices, StoreUnit: "1 container cumin"},
			},
			Instructions: []string{
				"Brown ground beef with diced onions and peppers",
				"Transfer to slow cooker with remaining ingredients",
				"Cook on low 8 hours or high 4 hours",
				"Serve with cornbread or over rice",
			},
			Nutrition:         Nutrition{Calories: 340, Protein: 24, Carbs: 28, Fat: 12},
			Allergens:         []string{},
			CommonIngredients: []string{"ground beef", "beans", "tomatoes", "onion", "bell pepper"},
		},
		{
			ID:          "baked-chicken-thighs",
			Name:        "Herb Baked Chicken Thighs",
			Description: "Economical cut of chicken with maximum flavor",
			Servings:    6,
			PrepTime:    10,
			CookTime:    45,
			Difficulty:  "Easy",
			Tags:        []string{"dinner", "chicken", "budget", "protein"},
			Ingredients: []Ingredient{
				{Name: "chicken thighs", Amount: 1, Unit: "package", Category: CategoryMeat, StoreUnit: "3lb family pack"},
				{Name: "potatoes", Amount: 1, Unit: "bag", Category: CategoryProduce, StoreUnit: "5lb bag potatoes"},
				{Name: "carrots", Amount: 2, Unit: "lbs", Category: CategoryProduce, StoreUnit: "2lb bag carrots"},
				{Name: "onion", Amount: 1, Unit: "bag", Category: CategoryProduce, StoreUnit: "3lb bag"},
				{Name: "olive oil", Amount: 1, Unit: "bottle", Category: CategoryPantry, StoreUnit: "16.9oz bottle"},
				{Name: "garlic powder", Amount: 1, Unit: "container", Category: CategorySpices, StoreUnit: "spice container"},
				{Name: "rosemary", Amount: 1, Unit: "container", Category: CategorySpices, StoreUnit: "spice container"},
				{Name: "thyme", Amount: 1, Unit: "container", Category: CategorySpices, StoreUnit: "spice container"},
			},
			Instructions: []string{
				"Cut potatoes and carrots into chunks, slice onion",
				"Toss vegetables with 2 tbsp oil and season",
				"Season chicken with remaining oil and spices",
				"Bake everything at 425°F for 45 minutes until chicken is done",
			},
			Nutrition:         Nutrition{Calories: 420, Protein: 32, Carbs: 28, Fat: 18},
			Allergens:         []string{},
			CommonIngredients: []string{"chicken thighs", "potatoes", "carrots", "onion"},
		},
		{
			ID:          "tuna-noodle-casserole",
			Name:        "Tuna Noodle Casserole",
			Description: "Budget-friendly classic using pantry staples",
			Servings:    8,
			PrepTime:    20,
			CookTime:    30,
			Difficulty:  "Easy",
			Tags:        []string{"dinner", "casserole", "budget", "pantry-friendly"},
			Ingredients: []Ingredient{
				{Name: "egg noodles", Amount: 12, Unit: "oz", Category: CategoryPantry},
				{Name: "tuna", Amount: 3, Unit: "cans", Category: CategoryPantry},
				{Name: "cream of mushroom soup", Amount: 2, Unit: "cans", Category: CategoryPantry},
				{Name: "frozen peas", Amount: 2, Unit: "cups", Category: CategoryFrozen},
				{Name: "cheddar cheese", Amount: 2, Unit: "cups", Category: CategoryDairy},
				{Name: "breadcrumbs", Amount: 1, Unit: "cup", Category: CategoryPantry},
				{Name: "butter", Amount: 2, Unit: "tbsp", Category: CategoryDairy},
			},
			Instructions: []string{
				"Cook noodles according to package directions",
				"Mix noodles, tuna, soup, peas, and half the cheese",
				"Transfer to baking dish, top with remaining cheese and breadcrumbs",
				"Bake at 350°F for 30 minutes until bubbly",
			},
			Nutrition:         Nutrition{Calories: 350, Protein: 22, Carbs: 32, Fat: 15},
			Allergens:         []string{"gluten", "dairy"},
			CommonIngredients: []string{"noodles", "tuna", "soup", "peas", "cheese"},
		},
		{
			ID:          "lentil-soup",
			Name:        "Hearty Lentil Soup",
			Description: "Protein-packed soup that costs under $1 per serving",
			Servings:    8,
			PrepTime:    15,
			CookTime:    45,
			Difficulty:  "Easy",
			Tags:        []string{"budget", "soup", "protein", "healthy"},
			Ingredients: []Ingredient{
				{Name: "dried lentils", Amount: 2, Unit: "cups", Category: CategoryPantry},
				{Name: "vegetable broth", Amount: 8, Unit: "cups", Category: CategoryPantry},
				{Name: "carrots", Amount: 3, Unit: "whole", Category: CategoryProduce},
				{Name: "celery", Amount: 3, Unit: "stalks", Category: CategoryProduce},
				{Name: "onion", Amount: 1, Unit: "whole", Category: CategoryProduce},
				{Name: "diced tomatoes", Amount: 1, Unit: "can", Category: CategoryPantry},
				{Name: "garlic", Amount: 4, Unit: "cloves", Category: CategoryProduce},
				{Name: "bay leaves", Amount: 2, Unit: "whole", Category: CategorySpices},
			},
			Instructions: []string{
				"Sauté diced vegetables in oil until soft",
				"Add lentils, broth, tomatoes, and seasonings",
				"Simmer 45 minutes until lentils are tender",
				"Remove bay leaves before serving",
			},
			Nutrition:         Nutrition{Calories: 240, Protein: 16, Carbs: 40, Fat: 2},
			Allergens:         []string{},
			CommonIngredients: []string{"lentils", "broth", "carrots", "celery", "onion"},
		},
		{
			ID:          "potato-leek-soup",
			Name:        "Creamy Potato Soup",
			Description: "Filling soup using inexpensive potatoes",
			Servings:    6,
			PrepTime:    20,
			CookTime:    30,
			Difficulty:  "Easy",
			Tags:        []string{"budget", "soup", "creamy", "filling"},
			Ingredients: []Ingredient{
				{Name: "potatoes", Amount: 3, Unit: "lbs", Category: CategoryProduce},
				{Name: "onion", Amount: 1, Unit: "whole", Category: CategoryProduce},
				{Name: "chicken broth", Amount: 6, Unit: "cups", Category: CategoryPantry},
				{Name: "milk", Amount: 2, Unit: "cups", Category: CategoryDairy},
				{Name: "butter", Amount: 3, Unit: "tbsp", Category: CategoryDairy},
				{Name: "flour", Amount: 3, Unit: "tbsp", Category: CategoryPantry},
				{Name: "cheddar cheese", Amount: 1, Unit: "cup", Category: CategoryDairy},
			},
			Instructions: []string{
				"Peel and cube potatoes, dice onion",
				"Simmer potatoes and onion in broth until tender",
				"Make roux with butter and flour, add milk",
				"Combine all ingredients, blend partially for texture",
			},
			Nutrition:         Nutrition{Calories: 290, Protein: 12, Carbs: 42, Fat: 10},
			Allergens:         []string{"dairy", "gluten"},
			CommonIngredients: []string{"potatoes", "onion", "broth", "milk", "cheese"},
		},
	}
}
