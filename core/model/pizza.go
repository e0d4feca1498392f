package model

import "fmt"

// Region identifies a regional cuisine. Each region has its own pizza factory.
type Region int

const (
	RegionUnknown Region = iota
	RegionUSA
	RegionItaly
	RegionChina
)

// Regions lists the supported regions in menu order.
func Regions() []Region { return []Region{RegionUSA, RegionItaly, RegionChina} }

// String returns the display name of the region.
func (r Region) String() string {
	switch r {
	case RegionUSA:
		return "USA"
	case RegionItaly:
		return "Italy"
	case RegionChina:
		return "China"
	default:
		return "Unknown"
	}
}

// Key returns the lower-case identifier accepted on input.
func (r Region) Key() string {
	switch r {
	case RegionUSA:
		return "usa"
	case RegionItaly:
		return "italy"
	case RegionChina:
		return "china"
	default:
		return ""
	}
}

// Kind selects one of the two products a factory can create.
type Kind int

const (
	KindUnknown Kind = iota
	KindCheese
	KindVeggie
)

// Kinds lists the supported pizza kinds in menu order.
func Kinds() []Kind { return []Kind{KindCheese, KindVeggie} }

func (k Kind) String() string {
	switch k {
	case KindCheese:
		return "Cheese"
	case KindVeggie:
		return "Veggie"
	default:
		return "Unknown"
	}
}

// Key returns the lower-case identifier accepted on input.
func (k Kind) Key() string {
	switch k {
	case KindCheese:
		return "cheese"
	case KindVeggie:
		return "veggie"
	default:
		return ""
	}
}

// Variant is one concrete (Region, Kind) combination.
type Variant struct {
	Region Region
	Kind   Kind
}

func (v Variant) String() string { return fmt.Sprintf("%s %s", v.Region, v.Kind) }

// Recipe holds the fixed text emitted by each preparation step.
type Recipe struct {
	Prepare string `json:"prepare" yaml:"prepare"`
	Bake    string `json:"bake" yaml:"bake"`
	Serve   string `json:"serve" yaml:"serve"`
}
