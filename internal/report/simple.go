package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/zoo/internal/config"
	"github.com/nao1215/zoo/internal/model"
)

// Console report formatting constants. The prey and food separators are
// deliberately independent of each other.
const (
	// PreySeparator joins a carnivore's favourite prey.
	PreySeparator = " and "

	// FoodSeparator joins a herbivore's favourite foods.
	FoodSeparator = "and"

	// MarkdownFoodSeparator joins favourite foods in Markdown tables,
	// where the console spelling would run the words together.
	MarkdownFoodSeparator = ", "

	// Separator is written after every animal, followed by an empty line.
	Separator = "-------------------------------------"
)

// SimpleWriter outputs the line-oriented console report.
//
// Every animal gets its id, name, age and call. Carnivores add their prey
// and danger flag, herbivores their foods; cats, dogs and cows then add
// their own lines and run their actions.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs every animal in order. Empty input writes nothing.
func (w *SimpleWriter) Write(animals []*model.Animal) (int, error) {
	var sb strings.Builder

	for _, a := range animals {
		if a == nil {
			continue
		}
		if err := w.writeAnimal(&sb, a); err != nil {
			return 0, err
		}
	}

	if sb.Len() == 0 {
		return 0, nil
	}

	n, err := io.WriteString(w.output, sb.String())
	w.logWrite(config.FormatText, countAnimals(animals), n, err)
	return n, err
}

// writeAnimal writes the common lines, then dispatches on category.
func (w *SimpleWriter) writeAnimal(sb *strings.Builder, a *model.Animal) error {
	fmt.Fprintf(sb, "Animal Id: %d\n", a.ID())
	fmt.Fprintf(sb, "Name: %s\n", a.Name())
	fmt.Fprintf(sb, "Age: %d\n", a.Age)
	sb.WriteString(a.Call())
	sb.WriteString("\n")

	var err error
	switch a.Category() {
	case model.CategoryCarnivore:
		err = w.writeCarnivore(sb, a)
	case model.CategoryHerbivore:
		err = w.writeHerbivore(sb, a)
	}
	if err != nil {
		return err
	}

	sb.WriteString(Separator)
	sb.WriteString("\n\n")
	return nil
}

// writeCarnivore writes the carnivore lines and the cat or dog lines.
func (w *SimpleWriter) writeCarnivore(sb *strings.Builder, a *model.Animal) error {
	c := a.Carnivore()
	fmt.Fprintf(sb, "This predator enjoys hunting: %s\n", strings.Join(c.FavouritePrey, PreySeparator))
	fmt.Fprintf(sb, "Is this predator lethal to humans?: %s\n", yesNo(c.IsDangerousToHumans))

	switch a.Kind() {
	case model.KindCat:
		fmt.Fprintf(sb, "Is this kitty a house cat?: %s\n", yesNo(a.Cat().IsHouseCat))
	case model.KindDog:
		fmt.Fprintf(sb, "Is this dog a good boy?: %s\n", goodBoyText(a.Dog().IsGoodBoy))
		return a.Dog().FetchStick(sb)
	}
	return nil
}

// writeHerbivore writes the herbivore lines and the cow lines.
func (w *SimpleWriter) writeHerbivore(sb *strings.Builder, a *model.Animal) error {
	fmt.Fprintf(sb, "This herbivore enjoys: %s\n", strings.Join(a.Herbivore().FavouriteFoods, FoodSeparator))

	if a.Kind() == model.KindCow {
		fmt.Fprintf(sb, "This cow has %d stomachs\n", a.Cow().StomachCount())
		return a.Cow().ProduceMilk(sb)
	}
	return nil
}
