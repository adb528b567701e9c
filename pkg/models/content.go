package models

// Benefit is one entry of the benefits grid.
type Benefit struct {
	Icon  string
	Title string
	Text  string
}

// UseCase is one card of the use cases section.
type UseCase struct {
	Title string
	Text  string
}

// FAQEntry is a single question with its answer.
type FAQEntry struct {
	Question string
	Answer   string
}

// Stat is a headline number shown under the hero form.
type Stat struct {
	Label string
	Value string
}

// PageContent groups the literal lists the page sections are built from.
type PageContent struct {
	Brand     string
	Stats     []Stat
	Benefits  []Benefit
	Checklist []string
	UseCases  []UseCase
	FAQ       []FAQEntry
}
