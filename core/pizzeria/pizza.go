package pizzeria

import "github.com/kilianp07/pizzafactory/core/model"

// Pizza describes the three preparation steps of one variant.
type Pizza interface {
	Variant() model.Variant
	Prepare() string
	Bake() string
	Serve() string
}

var recipes = map[model.Variant]model.Recipe{
	{Region: model.RegionUSA, Kind: model.KindCheese}: {
		Prepare: "Preparing an American Cheese Pizza with mozzarella and pepperoni 🇺🇸",
		Bake:    "Baking in a deep-dish oven.",
		Serve:   "Serving with ranch dip.",
	},
	{Region: model.RegionUSA, Kind: model.KindVeggie}: {
		Prepare: "Preparing an American Veggie Pizza with mushrooms and olives 🇺🇸",
		Bake:    "Baking in an electric oven.",
		Serve:   "Serving with garlic sauce.",
	},
	{Region: model.RegionItaly, Kind: model.KindCheese}: {
		Prepare: "Preparing an Italian Margherita Pizza with fresh basil and mozzarella 🇮🇹",
		Bake:    "Baking in a wood-fired oven.",
		Serve:   "Serving with olive oil drizzle.",
	},
	{Region: model.RegionItaly, Kind: model.KindVeggie}: {
		Prepare: "Preparing an Italian Veggie Pizza with artichokes and bell peppers 🇮🇹",
		Bake:    "Baking in a brick oven.",
		Serve:   "Serving with balsamic glaze.",
	},
	{Region: model.RegionChina, Kind: model.KindCheese}: {
		Prepare: "Preparing a Chinese Cheese Pizza with tofu and sesame sauce 🇨🇳",
		Bake:    "Baking in a clay oven.",
		Serve:   "Serving with sweet chili sauce.",
	},
	{Region: model.RegionChina, Kind: model.KindVeggie}: {
		Prepare: "Preparing a Chinese Veggie Pizza with bok choy and hoisin glaze 🇨🇳",
		Bake:    "Baking in a bamboo steamer oven.",
		Serve:   "Serving with soy dip.",
	},
}

// RecipeFor returns the recipe of v and whether it exists.
func RecipeFor(v model.Variant) (model.Recipe, bool) {
	r, ok := recipes[v]
	return r, ok
}

type pizza struct {
	variant model.Variant
	recipe  model.Recipe
}

func newPizza(v model.Variant) pizza {
	// every (region, kind) pair built by a registered factory has a recipe
	r, ok := recipes[v]
	if !ok {
		panic("pizzeria: no recipe for " + v.String())
	}
	return pizza{variant: v, recipe: r}
}

func (p pizza) Variant() model.Variant { return p.variant }
func (p pizza) Prepare() string        { return p.recipe.Prepare }
func (p pizza) Bake() string           { return p.recipe.Bake }
func (p pizza) Serve() string          { return p.recipe.Serve }

// Steps returns the step texts of p in serving order.
func Steps(p Pizza) []string {
	return []string{p.Prepare(), p.Bake(), p.Serve()}
}
