package food

import "github.com/msto63/rechenwerk/pkg/formula"

// Formulas returns the food formulas
func Formulas() []formula.Formula {
	return []formula.Formula{
		formula.Fixed(Domain, "recipe_scale", "Scale recipe quantities to a number of servings", RecipeScale),
		formula.Fixed(Domain, "macro_calories", "Energy and macronutrient shares from grams", MacroCalories),
		formula.Fixed(Domain, "shelf_life_q10", "Shelf life at a storage temperature using Q10", ShelfLifeQ10),
		formula.Fixed(Domain, "food_cost", "Plate cost, food cost percentage and gross profit", FoodCost),
	}
}
