package model

import (
	"fmt"
	"strings"
)

// Category is the capability category an animal belongs to.
type Category int

const (
	// CategoryNone is the zero value. Only a zero Animal has it.
	CategoryNone Category = iota

	// CategoryCarnivore marks animals that carry Carnivore traits.
	CategoryCarnivore

	// CategoryHerbivore marks animals that carry Herbivore traits.
	CategoryHerbivore
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryCarnivore:
		return "carnivore"
	case CategoryHerbivore:
		return "herbivore"
	default:
		return "none"
	}
}

// Kind is the concrete kind of an animal.
type Kind int

const (
	// KindUnknown is the zero value. Constructors never produce it.
	KindUnknown Kind = iota

	// KindCat is a carnivore with a house cat flag.
	KindCat

	// KindDog is a carnivore with a good boy flag that can fetch sticks.
	KindDog

	// KindCow is a herbivore with several stomachs that produces milk.
	KindCow
)

// Kinds lists every concrete kind in declaration order.
var Kinds = []Kind{KindCat, KindDog, KindCow}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCat:
		return "cat"
	case KindDog:
		return "dog"
	case KindCow:
		return "cow"
	default:
		return "unknown"
	}
}

// Category returns the capability category of the kind.
func (k Kind) Category() Category {
	switch k {
	case KindCat, KindDog:
		return CategoryCarnivore
	case KindCow:
		return CategoryHerbivore
	default:
		return CategoryNone
	}
}

// ParseKind converts a kind name to a Kind. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown animal kind %q", s)
}
