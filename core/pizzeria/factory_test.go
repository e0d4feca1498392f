package pizzeria

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/pizzafactory/core/model"
)

func TestResolve_AllVariants(t *testing.T) {
	tests := []struct {
		region, kind string
		want         []string
	}{
		{"usa", "cheese", []string{
			"Preparing an American Cheese Pizza with mozzarella and pepperoni 🇺🇸",
			"Baking in a deep-dish oven.",
			"Serving with ranch dip.",
		}},
		{"usa", "veggie", []string{
			"Preparing an American Veggie Pizza with mushrooms and olives 🇺🇸",
			"Baking in an electric oven.",
			"Serving with garlic sauce.",
		}},
		{"italy", "cheese", []string{
			"Preparing an Italian Margherita Pizza with fresh basil and mozzarella 🇮🇹",
			"Baking in a wood-fired oven.",
			"Serving with olive oil drizzle.",
		}},
		{"italy", "veggie", []string{
			"Preparing an Italian Veggie Pizza with artichokes and bell peppers 🇮🇹",
			"Baking in a brick oven.",
			"Serving with balsamic glaze.",
		}},
		{"china", "cheese", []string{
			"Preparing a Chinese Cheese Pizza with tofu and sesame sauce 🇨🇳",
			"Baking in a clay oven.",
			"Serving with sweet chili sauce.",
		}},
		{"china", "veggie", []string{
			"Preparing a Chinese Veggie Pizza with bok choy and hoisin glaze 🇨🇳",
			"Baking in a bamboo steamer oven.",
			"Serving with soy dip.",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.region+"/"+tt.kind, func(t *testing.T) {
			f, err := ResolveFactory(tt.region)
			require.NoError(t, err)
			p, err := ResolvePizza(f, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Steps(p))
			assert.Equal(t, f.Region(), p.Variant().Region)
		})
	}
}

func TestResolveFactory_CaseInsensitive(t *testing.T) {
	base, err := ResolveFactory("usa")
	require.NoError(t, err)
	for _, in := range []string{"USA", "UsA", " usa "} {
		f, err := ResolveFactory(in)
		require.NoError(t, err, in)
		assert.Equal(t, base.Region(), f.Region(), in)
		assert.Equal(t, Steps(base.CreateCheesePizza()), Steps(f.CreateCheesePizza()), in)
	}
}

func TestResolveFactory_Invalid(t *testing.T) {
	f, err := ResolveFactory("france")
	assert.Nil(t, f)
	assert.True(t, errors.Is(err, model.ErrInvalidRegion))
	assert.Contains(t, err.Error(), "USA, Italy, or China")
}

func TestResolvePizza_Invalid(t *testing.T) {
	f, err := ResolveFactory("italy")
	require.NoError(t, err)
	p, err := ResolvePizza(f, "pepperoni")
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, model.ErrInvalidPizzaKind))

	_, err = ResolvePizza(f, "  pepperoni\t")
	var ke *model.InvalidKindError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "pepperoni", ke.Input)
}

func TestResolvePizza_TrimmedKind(t *testing.T) {
	f, err := ResolveFactory("italy")
	require.NoError(t, err)
	p, err := ResolvePizza(f, " Veggie ")
	require.NoError(t, err)
	assert.Equal(t, model.KindVeggie, p.Variant().Kind)
	p, err = ResolvePizza(f, "CHEESE\r")
	require.NoError(t, err)
	assert.Equal(t, model.KindCheese, p.Variant().Kind)
}

func TestResolveFactory_NoCaseFoldingLookAlikes(t *testing.T) {
	// "ſ" is the long s; full case folding would map it to "s".
	for _, in := range []string{"uſa", "UſA", "chinа"} {
		f, err := ResolveFactory(in)
		assert.Nil(t, f, in)
		assert.ErrorIs(t, err, model.ErrInvalidRegion, in)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	var first []string
	for i := 0; i < 3; i++ {
		f, err := ResolveFactory("China")
		require.NoError(t, err)
		p, err := ResolvePizza(f, "Veggie")
		require.NoError(t, err)
		if first == nil {
			first = Steps(p)
			continue
		}
		assert.Equal(t, first, Steps(p))
	}
}

func TestMenu(t *testing.T) {
	items, err := Menu()
	require.NoError(t, err)
	require.Len(t, items, 6)
	assert.Equal(t, "USA", items[0].Region)
	assert.Equal(t, "cheese", items[0].Kind)
	assert.Equal(t, "China", items[5].Region)
	assert.Equal(t, "veggie", items[5].Kind)
	assert.Equal(t, "Serving with soy dip.", items[5].Serve)
}

func TestRecipeFor(t *testing.T) {
	_, ok := RecipeFor(model.Variant{Region: model.RegionUnknown, Kind: model.KindCheese})
	assert.False(t, ok)
	r, ok := RecipeFor(model.Variant{Region: model.RegionItaly, Kind: model.KindCheese})
	assert.True(t, ok)
	assert.Equal(t, "Baking in a wood-fired oven.", r.Bake)
}
