package model

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// DefaultStomachCount is the number of stomachs a cow has unless told otherwise.
const DefaultStomachCount = 4

// Action output lines.
const (
	// FetchStickMessage is written by Dog.FetchStick.
	FetchStickMessage = "That stick never had a chance"

	// ProduceMilkMessage is written by Cow.ProduceMilk.
	ProduceMilkMessage = "Milk for the milk gods!"
)

// Animal is a single record on the farm.
//
// The kind decides which trait pointers are set: carnivore kinds carry
// Carnivore, herbivore kinds carry Herbivore, and exactly one of Cat, Dog
// or Cow is set. Animals are built with NewCat, NewDog or NewCow; a zero
// Animal has KindUnknown and no traits.
type Animal struct {
	id   int
	name string
	kind Kind

	// Age is freely settable and not validated.
	Age int

	carnivore *Carnivore
	herbivore *Herbivore

	cat *Cat
	dog *Dog
	cow *Cow
}

// Carnivore holds the traits shared by all carnivore kinds.
type Carnivore struct {
	FavouritePrey       []string
	IsDangerousToHumans bool
}

// Herbivore holds the traits shared by all herbivore kinds.
type Herbivore struct {
	FavouriteFoods []string
}

// Cat holds cat-only traits.
type Cat struct {
	IsHouseCat bool
}

// Dog holds dog-only traits.
type Dog struct {
	IsGoodBoy bool
}

// FetchStick writes the fetch-stick line to w.
func (d *Dog) FetchStick(w io.Writer) error {
	_, err := fmt.Fprintln(w, FetchStickMessage)
	return err
}

// Cow holds cow-only traits.
type Cow struct {
	stomachCount int
}

// StomachCount returns the number of stomachs. It is always positive.
func (c *Cow) StomachCount() int {
	return c.stomachCount
}

// SetStomachCount updates the number of stomachs.
// Non-positive values are ignored and the previous count is kept.
func (c *Cow) SetStomachCount(n int) {
	if n > 0 {
		c.stomachCount = n
	}
}

// ProduceMilk writes the produce-milk line to w.
func (c *Cow) ProduceMilk(w io.Writer) error {
	_, err := fmt.Fprintln(w, ProduceMilkMessage)
	return err
}

// Option configures optional fields of an Animal at construction time.
// Options that do not apply to the animal's kind are ignored.
type Option func(*Animal)

// WithAge sets the age.
func WithAge(age int) Option {
	return func(a *Animal) {
		a.Age = age
	}
}

// WithGoodBoy sets the good boy flag of a dog. Dogs default to true.
func WithGoodBoy(good bool) Option {
	return func(a *Animal) {
		if a.dog != nil {
			a.dog.IsGoodBoy = good
		}
	}
}

// WithStomachCount sets the stomach count of a cow.
// Non-positive values keep DefaultStomachCount.
func WithStomachCount(n int) Option {
	return func(a *Animal) {
		if a.cow != nil {
			a.cow.SetStomachCount(n)
		}
	}
}

// NewCat creates a cat. It returns a *ValidationError if name is empty or
// whitespace-only; the id taken for the rejected cat is not reissued.
func NewCat(ids *IDGenerator, name string, favouritePrey []string, isDangerousToHumans, isHouseCat bool, opts ...Option) (*Animal, error) {
	a, err := newAnimal(ids, name, KindCat)
	if err != nil {
		return nil, err
	}
	a.carnivore = &Carnivore{
		FavouritePrey:       slices.Clone(favouritePrey),
		IsDangerousToHumans: isDangerousToHumans,
	}
	a.cat = &Cat{IsHouseCat: isHouseCat}

	return a.apply(opts), nil
}

// NewDog creates a dog that is a good boy unless WithGoodBoy(false) is given.
// It returns a *ValidationError if name is empty or whitespace-only.
func NewDog(ids *IDGenerator, name string, favouritePrey []string, isDangerousToHumans bool, opts ...Option) (*Animal, error) {
	a, err := newAnimal(ids, name, KindDog)
	if err != nil {
		return nil, err
	}
	a.carnivore = &Carnivore{
		FavouritePrey:       slices.Clone(favouritePrey),
		IsDangerousToHumans: isDangerousToHumans,
	}
	a.dog = &Dog{IsGoodBoy: true}

	return a.apply(opts), nil
}

// NewCow creates a cow with DefaultStomachCount stomachs unless
// WithStomachCount is given. It returns a *ValidationError if name is
// empty or whitespace-only.
func NewCow(ids *IDGenerator, name string, favouriteFoods []string, opts ...Option) (*Animal, error) {
	a, err := newAnimal(ids, name, KindCow)
	if err != nil {
		return nil, err
	}
	a.herbivore = &Herbivore{FavouriteFoods: slices.Clone(favouriteFoods)}
	a.cow = &Cow{stomachCount: DefaultStomachCount}

	return a.apply(opts), nil
}

// newAnimal takes the next id and then validates the name, so a rejected
// record still uses up its id.
func newAnimal(ids *IDGenerator, name string, kind Kind) (*Animal, error) {
	a := &Animal{id: ids.Next(), kind: kind}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Animal) apply(opts []Option) *Animal {
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID returns the record id.
func (a *Animal) ID() int {
	return a.id
}

// Name returns the name exactly as it was set.
func (a *Animal) Name() string {
	return a.name
}

// SetName replaces the name. Empty or whitespace-only names are rejected
// with a *ValidationError and the previous name is kept.
func (a *Animal) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{
			Field: "name",
			Kind:  ErrorKindInvalidArgument,
			Value: name,
		}
	}
	a.name = name
	return nil
}

// Kind returns the concrete kind.
func (a *Animal) Kind() Kind {
	return a.kind
}

// Category returns the capability category.
func (a *Animal) Category() Category {
	return a.kind.Category()
}

// Carnivore returns the carnivore traits, or nil for other categories.
func (a *Animal) Carnivore() *Carnivore {
	return a.carnivore
}

// Herbivore returns the herbivore traits, or nil for other categories.
func (a *Animal) Herbivore() *Herbivore {
	return a.herbivore
}

// Cat returns the cat traits, or nil if the animal is not a cat.
func (a *Animal) Cat() *Cat {
	return a.cat
}

// Dog returns the dog traits, or nil if the animal is not a dog.
func (a *Animal) Dog() *Dog {
	return a.dog
}

// Cow returns the cow traits, or nil if the animal is not a cow.
func (a *Animal) Cow() *Cow {
	return a.cow
}

// Call returns the animal's call. See DescribeCall.
func (a *Animal) Call() string {
	return DescribeCall(a)
}
