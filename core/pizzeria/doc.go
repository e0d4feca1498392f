// Package pizzeria implements the regional pizza families.
//
// A PizzaFactory creates the cheese and veggie pizzas of one region without the
// caller knowing which concrete variant it gets. The six variants share a single
// implementation backed by a recipe table keyed by model.Variant, and the three
// factories share a single implementation parameterised by region.
//
// ResolveFactory and ResolvePizza map user input onto a factory and a pizza.
// Both match case-insensitively and return a typed error from core/model on
// unknown input.
package pizzeria
