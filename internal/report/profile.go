package report

import (
	"bytes"
	"strings"

	"github.com/nao1215/zoo/internal/model"
)

// Profile is the flattened view of an animal used by the structured writers.
// Category and kind sections are nil when they do not apply.
type Profile struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Age      int    `json:"age" yaml:"age"`
	Kind     string `json:"kind" yaml:"kind"`
	Category string `json:"category" yaml:"category"`
	Call     string `json:"call" yaml:"call"`

	Carnivore *CarnivoreProfile `json:"carnivore,omitempty" yaml:"carnivore,omitempty"`
	Herbivore *HerbivoreProfile `json:"herbivore,omitempty" yaml:"herbivore,omitempty"`

	// Actions holds the lines produced by the animal's actions
	// (fetching a stick, producing milk) in the order they ran.
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// CarnivoreProfile holds carnivore traits plus the cat and dog flags.
type CarnivoreProfile struct {
	FavouritePrey     []string `json:"favourite_prey" yaml:"favourite_prey"`
	DangerousToHumans bool     `json:"dangerous_to_humans" yaml:"dangerous_to_humans"`
	HouseCat          *bool    `json:"house_cat,omitempty" yaml:"house_cat,omitempty"`
	GoodBoy           *bool    `json:"good_boy,omitempty" yaml:"good_boy,omitempty"`
}

// HerbivoreProfile holds herbivore traits plus the cow stomach count.
type HerbivoreProfile struct {
	FavouriteFoods []string `json:"favourite_foods" yaml:"favourite_foods"`
	StomachCount   int      `json:"stomach_count,omitempty" yaml:"stomach_count,omitempty"`
}

// NewProfile builds the profile of a single animal. Actions are run
// against an in-memory buffer and their output lines are recorded.
func NewProfile(a *model.Animal) Profile {
	p := Profile{
		ID:       a.ID(),
		Name:     a.Name(),
		Age:      a.Age,
		Kind:     a.Kind().String(),
		Category: a.Category().String(),
		Call:     a.Call(),
	}

	var actions bytes.Buffer

	switch a.Category() {
	case model.CategoryCarnivore:
		c := a.Carnivore()
		p.Carnivore = &CarnivoreProfile{
			FavouritePrey:     nonNil(c.FavouritePrey),
			DangerousToHumans: c.IsDangerousToHumans,
		}
		switch a.Kind() {
		case model.KindCat:
			houseCat := a.Cat().IsHouseCat
			p.Carnivore.HouseCat = &houseCat
		case model.KindDog:
			goodBoy := a.Dog().IsGoodBoy
			p.Carnivore.GoodBoy = &goodBoy
			_ = a.Dog().FetchStick(&actions) //nolint:errcheck // bytes.Buffer never fails
		}
	case model.CategoryHerbivore:
		p.Herbivore = &HerbivoreProfile{
			FavouriteFoods: nonNil(a.Herbivore().FavouriteFoods),
		}
		if a.Kind() == model.KindCow {
			p.Herbivore.StomachCount = a.Cow().StomachCount()
			_ = a.Cow().ProduceMilk(&actions) //nolint:errcheck // bytes.Buffer never fails
		}
	}

	if actions.Len() > 0 {
		p.Actions = strings.Split(strings.TrimRight(actions.String(), "\n"), "\n")
	}
	return p
}

// NewProfiles builds profiles for all non-nil animals, preserving order.
// The result is never nil so empty input encodes as an empty list.
func NewProfiles(animals []*model.Animal) []Profile {
	profiles := make([]Profile, 0, len(animals))
	for _, a := range animals {
		if a == nil {
			continue
		}
		profiles = append(profiles, NewProfile(a))
	}
	return profiles
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
