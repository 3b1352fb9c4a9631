package service

import "github.com/pageza/recipebook/backend/internal/model"

// SeedRecipes returns the sample recipes a fresh store starts with
func SeedRecipes() []model.DraftRecipe {
	return []model.DraftRecipe{
		{
			Name: "Classic Chocolate Chip Cookies",
			Ingredients: "2 cups all-purpose flour\n" +
				"1 tsp baking soda\n" +
				"1 tsp salt\n" +
				"1 cup butter\n" +
				"3/4 cup granulated sugar\n" +
				"3/4 cup brown sugar\n" +
				"2 large eggs\n" +
				"2 tsp vanilla extract\n" +
				"2 cups chocolate chips",
			Steps: "1. Preheat oven to 375°F. 2. Mix dry ingredients in a bowl. " +
				"3. Cream butter and sugars, add eggs and vanilla. " +
				"4. Combine wet and dry ingredients, fold in chocolate chips. " +
				"5. Drop spoonfuls on baking sheet. 6. Bake for 9-11 minutes until golden brown.",
			Image:    "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400&h=300&fit=crop",
			CookTime: "25 min",
			Servings: "24 cookies",
			Category: model.CategoryDessert,
		},
		{
			Name: "Mediterranean Pasta Salad",
			Ingredients: "1 lb pasta\n" +
				"1 cup cherry tomatoes\n" +
				"1/2 cup olives\n" +
				"1/2 cup feta cheese\n" +
				"1/4 cup red onion\n" +
				"1/4 cup olive oil\n" +
				"2 tbsp lemon juice\n" +
				"2 tsp oregano\n" +
				"Salt and pepper",
			Steps: "1. Cook pasta according to package directions and cool. " +
				"2. Chop all vegetables and combine in large bowl. " +
				"3. Whisk together olive oil, lemon juice, and oregano. " +
				"4. Toss pasta with vegetables and dressing. " +
				"5. Add feta cheese and season with salt and pepper. 6. Chill for 1 hour before serving.",
			Image:    "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=400&h=300&fit=crop",
			CookTime: "20 min",
			Servings: "6 people",
			Category: model.CategoryMainCourse,
		},
	}
}
