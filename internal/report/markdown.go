package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/zoo/internal/config"
	"github.com/nao1215/zoo/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation rather than formatting strings by hand, so tables stay aligned
// and escaped.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(animals []*model.Animal) (int, error) {
	profiles := NewProfiles(animals)
	md := markdown.NewMarkdown(w.output)
	title := cases.Title(language.English)

	md.H1("Zoo Report")
	md.PlainText("")

	w.writeSummary(md, profiles, title)

	for _, p := range profiles {
		w.writeProfile(md, p, title)
	}

	w.writeFooter(md)

	n := len(md.String())
	err := md.Build()
	w.logWrite(config.FormatMarkdown, len(profiles), n, err)
	return n, err
}

// writeSummary writes the overview table of all animals.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, profiles []Profile, title cases.Caser) {
	if len(profiles) == 0 {
		md.Note("No animals on the farm.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(profiles))
	for i, p := range profiles {
		rows[i] = []string{
			strconv.Itoa(p.ID),
			p.Name,
			title.String(p.Kind),
			title.String(p.Category),
			strconv.Itoa(p.Age),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Id", "Name", "Kind", "Category", "Age"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeProfile writes one section per animal.
func (w *MarkdownWriter) writeProfile(md *markdown.Markdown, p Profile, title cases.Caser) {
	md.H2(fmt.Sprintf("%s (%s #%d)", p.Name, title.String(p.Kind), p.ID))
	md.PlainText("")

	rows := [][]string{
		{"Age", strconv.Itoa(p.Age)},
		{"Call", p.Call},
	}

	if c := p.Carnivore; c != nil {
		rows = append(rows,
			[]string{"Favourite prey", orDash(strings.Join(c.FavouritePrey, PreySeparator))},
			[]string{"Lethal to humans", yesNo(c.DangerousToHumans)},
		)
		if c.HouseCat != nil {
			rows = append(rows, []string{"House cat", yesNo(*c.HouseCat)})
		}
		if c.GoodBoy != nil {
			rows = append(rows, []string{"Good boy", goodBoyText(*c.GoodBoy)})
		}
	}

	if h := p.Herbivore; h != nil {
		rows = append(rows, []string{"Favourite foods", orDash(strings.Join(h.FavouriteFoods, MarkdownFoodSeparator))})
		if h.StomachCount > 0 {
			rows = append(rows, []string{"Stomachs", strconv.Itoa(h.StomachCount)})
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(p.Actions) > 0 {
		md.BulletList(p.Actions...)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by zoo*")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
