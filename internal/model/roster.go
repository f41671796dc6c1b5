package model

import "fmt"

// DefaultRoster builds the farm printed by the zoo command:
// Felix the cat, Max the dog and Bella the cow, in that order.
// On a fresh generator they get ids 1, 2 and 3.
func DefaultRoster(ids *IDGenerator) ([]*Animal, error) {
	cat, err := NewCat(ids, "Felix", []string{"birds", "mice"}, false, true, WithAge(2))
	if err != nil {
		return nil, fmt.Errorf("failed to create cat: %w", err)
	}

	dog, err := NewDog(ids, "Max", []string{"cats"}, false, WithGoodBoy(false), WithAge(4))
	if err != nil {
		return nil, fmt.Errorf("failed to create dog: %w", err)
	}

	cow, err := NewCow(ids, "Bella", []string{"Grass"})
	if err != nil {
		return nil, fmt.Errorf("failed to create cow: %w", err)
	}

	return []*Animal{cat, dog, cow}, nil
}
