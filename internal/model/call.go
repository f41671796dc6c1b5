package model

// Category-level calls. Kind calls extend these, they never replace them.
const (
	BaseCall      = "Animal noise goes here"
	CarnivoreCall = "This predator can roar fiercely:"
	HerbivoreCall = "This docile herbivore has a lovely call:"
)

// categoryCalls maps each category to its call.
var categoryCalls = map[Category]string{
	CategoryNone:      BaseCall,
	CategoryCarnivore: CarnivoreCall,
	CategoryHerbivore: HerbivoreCall,
}

// kindCalls maps each kind to a function composing its call from the
// category call.
var kindCalls = map[Kind]func() string{
	KindCat: func() string { return categoryCall(CategoryCarnivore) + " MEOW!" },
	KindDog: func() string { return categoryCall(CategoryCarnivore) + " BARK BARK" },
	KindCow: func() string { return categoryCall(CategoryHerbivore) + " MOOOOOO!" },
}

// DescribeCall returns the call of the given animal.
// Nil and zero animals get BaseCall.
func DescribeCall(a *Animal) string {
	if a == nil {
		return BaseCall
	}
	return KindCall(a.kind)
}

// KindCall returns the call shared by every animal of the given kind.
// KindUnknown gets BaseCall.
func KindCall(k Kind) string {
	if call, ok := kindCalls[k]; ok {
		return call()
	}
	return categoryCall(k.Category())
}

func categoryCall(c Category) string {
	if call, ok := categoryCalls[c]; ok {
		return call
	}
	return BaseCall
}
