// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     food
// Description: Recipe scaling, macronutrient energy, shelf life and food cost
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package food

import (
	"math"

	"github.com/msto63/rechenwerk/foundation/utils/mathx"
	"github.com/msto63/rechenwerk/foundation/utils/slicex"
	"github.com/msto63/rechenwerk/pkg/formula"
)

// Domain is the catalog domain of this package
const Domain = "food"

const (
	idRecipeScale   = Domain + ".recipe_scale"
	idMacroCalories = Domain + ".macro_calories"
	idShelfLifeQ10  = Domain + ".shelf_life_q10"
	idFoodCost      = Domain + ".food_cost"
)

// Atwater factors in kcal per gram
const (
	kcalProtein = 4.0
	kcalCarb    = 4.0
	kcalFat     = 9.0
	kcalAlcohol = 7.0
	kJPerKcal   = 4.184
)

// Ingredient is one line of a recipe
type Ingredient struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
	Unit     string  `json:"unit" yaml:"unit"`
}

// RecipeScaleInput is a recipe and the servings to scale it to
type RecipeScaleInput struct {
	Ingredients      []Ingredient `json:"ingredients" yaml:"ingredients"`
	OriginalServings float64      `json:"originalServings" yaml:"originalServings"`
	TargetServings   float64      `json:"targetServings" yaml:"targetServings"`
}

// RecipeScaleResult holds the scale factor and the scaled ingredients
type RecipeScaleResult struct {
	Factor      float64      `json:"factor" yaml:"factor"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// RecipeScale multiplies every quantity by target / original servings.
// The input ingredients are left untouched.
func RecipeScale(in RecipeScaleInput) (RecipeScaleResult, error) {
	if err := formula.RequireFinite(idRecipeScale, "", in.OriginalServings, in.TargetServings); err != nil {
		return RecipeScaleResult{}, err
	}
	if in.OriginalServings <= 0 {
		return RecipeScaleResult{}, formula.NotComputable(idRecipeScale, "originalServings", "original servings must be greater than 0")
	}
	if in.TargetServings < 0 {
		return RecipeScaleResult{}, formula.NotComputable(idRecipeScale, "targetServings", "target servings must not be negative")
	}
	for _, ing := range in.Ingredients {
		if err := formula.RequireFinite(idRecipeScale, "ingredients", ing.Quantity); err != nil {
			return RecipeScaleResult{}, err
		}
		if ing.Quantity < 0 {
			return RecipeScaleResult{}, formula.NotComputable(idRecipeScale, "ingredients", "quantity of %s must not be negative", ing.Name)
		}
	}

	factor := in.TargetServings / in.OriginalServings
	scaled := slicex.Map(in.Ingredients, func(ing Ingredient) Ingredient {
		return Ingredient{Name: ing.Name, Quantity: mathx.RoundTo(ing.Quantity*factor, 2), Unit: ing.Unit}
	})
	if scaled == nil {
		scaled = []Ingredient{}
	}
	return formula.Finite(idRecipeScale, RecipeScaleResult{Factor: mathx.RoundTo(factor, 4), Ingredients: scaled})
}

// MacroCaloriesInput lists macronutrients in grams
type MacroCaloriesInput struct {
	ProteinGrams float64 `json:"proteinGrams" yaml:"proteinGrams"`
	CarbGrams    float64 `json:"carbGrams" yaml:"carbGrams"`
	FatGrams     float64 `json:"fatGrams" yaml:"fatGrams"`
	AlcoholGrams float64 `json:"alcoholGrams" yaml:"alcoholGrams"`
}

// MacroCaloriesResult holds total energy and each macronutrient's share
type MacroCaloriesResult struct {
	Kcal       float64 `json:"kcal" yaml:"kcal"`
	KJ         float64 `json:"kJ" yaml:"kJ"`
	ProteinPct float64 `json:"proteinPct" yaml:"proteinPct"`
	CarbPct    float64 `json:"carbPct" yaml:"carbPct"`
	FatPct     float64 `json:"fatPct" yaml:"fatPct"`
	AlcoholPct float64 `json:"alcoholPct" yaml:"alcoholPct"`
}

// MacroCalories computes energy with the Atwater factors. Zero energy is a
// degenerate result with all shares zero.
func MacroCalories(in MacroCaloriesInput) (MacroCaloriesResult, error) {
	grams := []float64{in.ProteinGrams, in.CarbGrams, in.FatGrams, in.AlcoholGrams}
	if err := formula.RequireFinite(idMacroCalories, "", grams...); err != nil {
		return MacroCaloriesResult{}, err
	}
	if slicex.Some(grams, func(g float64) bool { return g < 0 }) {
		return MacroCaloriesResult{}, formula.NotComputable(idMacroCalories, "", "grams must not be negative")
	}

	protein := in.ProteinGrams * kcalProtein
	carb := in.CarbGrams * kcalCarb
	fat := in.FatGrams * kcalFat
	alcohol := in.AlcoholGrams * kcalAlcohol
	total := protein + carb + fat + alcohol
	if total == 0 {
		return MacroCaloriesResult{}, nil
	}

	share := func(kcal float64) float64 { return mathx.RoundTo(kcal/total*100, 2) }
	return formula.Finite(idMacroCalories, MacroCaloriesResult{
		Kcal:       mathx.RoundTo(total, 1),
		KJ:         mathx.RoundTo(total*kJPerKcal, 1),
		ProteinPct: share(protein),
		CarbPct:    share(carb),
		FatPct:     share(fat),
		AlcoholPct: share(alcohol),
	})
}

// ShelfLifeQ10Input relates shelf life at a reference temperature to a
// storage temperature through the Q10 temperature coefficient
type ShelfLifeQ10Input struct {
	ReferenceDays  float64 `json:"referenceDays" yaml:"referenceDays"`
	ReferenceTempC float64 `json:"referenceTempC" yaml:"referenceTempC"`
	StorageTempC   float64 `json:"storageTempC" yaml:"storageTempC"`
	Q10            float64 `json:"q10" yaml:"q10"`
}

// ShelfLifeQ10Result holds the rate acceleration and the adjusted shelf life
type ShelfLifeQ10Result struct {
	AccelerationFactor float64 `json:"accelerationFactor" yaml:"accelerationFactor"`
	ShelfLifeDays      float64 `json:"shelfLifeDays" yaml:"shelfLifeDays"`
}

// ShelfLifeQ10 computes factor = Q10^((Ts - Tref) / 10) and divides the
// reference shelf life by it.
func ShelfLifeQ10(in ShelfLifeQ10Input) (ShelfLifeQ10Result, error) {
	if err := formula.RequireFinite(idShelfLifeQ10, "", in.ReferenceDays, in.ReferenceTempC, in.StorageTempC, in.Q10); err != nil {
		return ShelfLifeQ10Result{}, err
	}
	if in.ReferenceDays <= 0 {
		return ShelfLifeQ10Result{}, formula.NotComputable(idShelfLifeQ10, "referenceDays", "reference days must be greater than 0")
	}
	if in.Q10 <= 0 {
		return ShelfLifeQ10Result{}, formula.NotComputable(idShelfLifeQ10, "q10", "q10 must be greater than 0")
	}

	factor := math.Pow(in.Q10, (in.StorageTempC-in.ReferenceTempC)/10)
	if err := formula.RequireFinite(idShelfLifeQ10, "storageTempC", factor); err != nil {
		return ShelfLifeQ10Result{}, err
	}
	if factor == 0 {
		return ShelfLifeQ10Result{}, formula.NotComputable(idShelfLifeQ10, "storageTempC", "acceleration factor underflows")
	}
	return formula.Finite(idShelfLifeQ10, ShelfLifeQ10Result{
		AccelerationFactor: mathx.RoundTo(factor, 4),
		ShelfLifeDays:      mathx.RoundTo(in.ReferenceDays/factor, 2),
	})
}

// FoodCostInput is the cost of a batch and its selling price per serving
type FoodCostInput struct {
	BatchCost float64 `json:"batchCost" yaml:"batchCost"`
	Servings  float64 `json:"servings" yaml:"servings"`
	MenuPrice float64 `json:"menuPrice" yaml:"menuPrice"`
}

// FoodCostResult holds plate cost, food cost percentage and gross profit
type FoodCostResult struct {
	CostPerServing        float64 `json:"costPerServing" yaml:"costPerServing"`
	FoodCostPercent       float64 `json:"foodCostPercent" yaml:"foodCostPercent"`
	GrossProfitPerServing float64 `json:"grossProfitPerServing" yaml:"grossProfitPerServing"`
}

// FoodCost computes the plate cost and its share of the menu price
func FoodCost(in FoodCostInput) (FoodCostResult, error) {
	if err := formula.RequireFinite(idFoodCost, "", in.BatchCost, in.Servings, in.MenuPrice); err != nil {
		return FoodCostResult{}, err
	}
	switch {
	case in.BatchCost < 0:
		return FoodCostResult{}, formula.NotComputable(idFoodCost, "batchCost", "batch cost must not be negative")
	case in.Servings <= 0:
		return FoodCostResult{}, formula.NotComputable(idFoodCost, "servings", "servings must be greater than 0")
	case in.MenuPrice <= 0:
		return FoodCostResult{}, formula.NotComputable(idFoodCost, "menuPrice", "menu price must be greater than 0")
	}

	perServing := in.BatchCost / in.Servings
	return formula.Finite(idFoodCost, FoodCostResult{
		CostPerServing:        mathx.RoundTo(perServing, 2),
		FoodCostPercent:       mathx.RoundTo(perServing/in.MenuPrice*100, 2),
		GrossProfitPerServing: mathx.RoundTo(in.MenuPrice-perServing, 2),
	})
}
