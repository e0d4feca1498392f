package pizzeria

import (
	"fmt"

	"github.com/kilianp07/pizzafactory/core/factory"
	"github.com/kilianp07/pizzafactory/core/model"
)

// PizzaFactory creates the pizzas of a single region.
type PizzaFactory interface {
	Region() model.Region
	CreateCheesePizza() Pizza
	CreateVeggiePizza() Pizza
}

type regionalFactory struct {
	region model.Region
}

func (f regionalFactory) Region() model.Region { return f.region }

func (f regionalFactory) CreateCheesePizza() Pizza {
	return newPizza(model.Variant{Region: f.region, Kind: model.KindCheese})
}

func (f regionalFactory) CreateVeggiePizza() Pizza {
	return newPizza(model.Variant{Region: f.region, Kind: model.KindVeggie})
}

var factories = factory.NewRegistry[PizzaFactory]()

func init() {
	for _, region := range model.Regions() {
		factories.MustRegister(region.Key(), func(map[string]any) (PizzaFactory, error) {
			return regionalFactory{region: region}, nil
		})
	}
}

// ResolveFactory returns the factory of the region named by s. Matching ignores
// case and surrounding whitespace. Unknown regions yield *model.InvalidRegionError.
func ResolveFactory(s string) (PizzaFactory, error) {
	region, err := model.ParseRegion(s)
	if err != nil {
		return nil, err
	}
	f, err := factories.Create(factory.ModuleConfig{Type: region.Key()})
	if err != nil {
		return nil, fmt.Errorf("pizza factory %s: %w", region, err)
	}
	return f, nil
}

// ResolvePizza asks f for the pizza kind named by s. Unknown kinds yield
// *model.InvalidKindError.
func ResolvePizza(f PizzaFactory, s string) (Pizza, error) {
	kind, err := model.ParseKind(s)
	if err != nil {
		return nil, err
	}
	if kind == model.KindVeggie {
		return f.CreateVeggiePizza(), nil
	}
	return f.CreateCheesePizza(), nil
}

// MenuItem is one row of the menu.
type MenuItem struct {
	Region string `json:"region" yaml:"region"`
	Kind   string `json:"kind" yaml:"kind"`
	model.Recipe `yaml:",inline"`
}

// Menu lists every variant produced by the registered factories, region by
// region, cheese before veggie.
func Menu() ([]MenuItem, error) {
	var items []MenuItem
	for _, name := range factories.Names() {
		f, err := ResolveFactory(name)
		if err != nil {
			return nil, err
		}
		for _, p := range []Pizza{f.CreateCheesePizza(), f.CreateVeggiePizza()} {
			v := p.Variant()
			items = append(items, MenuItem{
				Region: v.Region.String(),
				Kind:   v.Kind.Key(),
				Recipe: model.Recipe{Prepare: p.Prepare(), Bake: p.Bake(), Serve: p.Serve()},
			})
		}
	}
	return items, nil
}
