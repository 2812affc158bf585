// Package classify holds the pure line predicates the structural segmenter
// consumes. All open-ended word lists live in a Lexicon built once at startup
// and passed by reference; the predicates themselves are stateless and never
// look further than one neighbouring line.
package classify

import (
	"strings"

	"github.com/textlabpt/gazex/internal/normalize"
)

// Tables is the serializable form of the classification word lists. Empty
// fields fall back to the built-in Portuguese defaults, so a config file can
// override a single list without restating the rest.
type Tables struct {
	// HeaderStarters seed top-level organization headers. Single words match
	// the first alphabetic token (diacritics ignored); multi-word entries
	// match as uppercase line prefixes.
	HeaderStarters []string `yaml:"headerStarters" json:"headerStarters"`
	// Stopwords are function words ignored when counting content tokens.
	Stopwords []string `yaml:"stopwords" json:"stopwords"`
	// Connectors are the short function words that, when they end a header
	// line, signal that the next line continues the header.
	Connectors []string `yaml:"connectors" json:"connectors"`
	// DocLabels are exact (whitespace-collapsed, uppercase) document labels.
	DocLabels []string `yaml:"docLabels" json:"docLabels"`
	// DocLabelPrefixes start numbered document labels such as
	// "DESPACHO n.º 59/2012".
	DocLabelPrefixes []string `yaml:"docLabelPrefixes" json:"docLabelPrefixes"`
	// NumberMarkers are the accepted spellings of the numbering sign.
	NumberMarkers []string `yaml:"numberMarkers" json:"numberMarkers"`
	// SecondaryStarters are institutional nouns that open secondary
	// organization names inside a section.
	SecondaryStarters []string `yaml:"secondaryStarters" json:"secondaryStarters"`
	// DomainNouns are substrings that mark a stopword-led line as a header
	// continuation (e.g. "DO PLANO E FINANÇAS").
	DomainNouns []string `yaml:"domainNouns" json:"domainNouns"`
}

// DefaultTables returns the built-in Portuguese gazette tables.
func DefaultTables() Tables {
	return Tables{
		HeaderStarters: []string{
			"SECRETARIA", "SECRETARIAS", "VICE-PRESIDÊNCIA", "VICE-PRESIDENCIA",
			"PRESIDÊNCIA", "PRESIDENCIA", "DIREÇÃO", "DIRECÇÃO",
			"ASSEMBLEIA", "CÂMARA", "CAMARA", "MUNICIPIO",
			"TRIBUNAL", "CONSERVATÓRIA", "CONSERVATORIA",
			"PRESIDÊNCIA DO GOVERNO", "PRESIDENCIA DO GOVERNO", "APRAM",
		},
		Stopwords: []string{
			"DO", "DA", "DE", "DOS", "DAS", "E", "A", "O", "EM", "PARA",
			"COM", "NO", "NA", "NOS", "NAS",
		},
		Connectors: []string{"E", "DO", "DA", "DE", "DOS", "DAS"},
		DocLabels: []string{
			"RETIFICAÇÃO", "RECTIFICAÇÃO", "RETIFICACAO", "RECTIFICACAO",
			"AVISO", "AVISOS",
			"DESPACHO", "DESPACHO CONJUNTO",
			"EDITAL", "DELIBERAÇÃO", "DELIBERACAO",
			"DECLARAÇÃO", "DECLARACAO",
			"LISTA", "LISTAS",
			"ANÚNCIO", "ANUNCIO", "ANÚNCIO (RESUMO)", "ANUNCIO (RESUMO)",
			"CONVOCATÓRIA", "CONVOCATORIA",
		},
		DocLabelPrefixes: []string{
			"DESPACHO", "DECLARAÇÃO", "DECLARACAO", "RETIFICAÇÃO",
			"RECTIFICAÇÃO", "AVISO", "AVISOS", "EDITAL", "ANÚNCIO", "ANUNCIO",
		},
		NumberMarkers: []string{"N.º", "Nº", "N°", "N.O", "N.O."},
		SecondaryStarters: []string{
			"INSTITUTO", "ASSOCIAÇÃO", "ASSOCIACAO", "CLUBE",
			"FUNDAÇÃO", "FUNDACAO", "DIREÇÃO", "DIRECÇÃO",
		},
		DomainNouns: []string{
			"PLANO", "FINAN", "CULTURA", "TURISMO", "TRANSPORT",
			"AMBIENTE", "RECURSOS",
		},
	}
}

// Merge overlays non-empty lists from o onto t.
func (t Tables) Merge(o Tables) Tables {
	if len(o.HeaderStarters) > 0 {
		t.HeaderStarters = o.HeaderStarters
	}
	if len(o.Stopwords) > 0 {
		t.Stopwords = o.Stopwords
	}
	if len(o.Connectors) > 0 {
		t.Connectors = o.Connectors
	}
	if len(o.DocLabels) > 0 {
		t.DocLabels = o.DocLabels
	}
	if len(o.DocLabelPrefixes) > 0 {
		t.DocLabelPrefixes = o.DocLabelPrefixes
	}
	if len(o.NumberMarkers) > 0 {
		t.NumberMarkers = o.NumberMarkers
	}
	if len(o.SecondaryStarters) > 0 {
		t.SecondaryStarters = o.SecondaryStarters
	}
	if len(o.DomainNouns) > 0 {
		t.DomainNouns = o.DomainNouns
	}
	return t
}

// Lexicon is the immutable lookup form of Tables. Build it once and share it;
// all predicate methods are safe for concurrent use.
type Lexicon struct {
	headerStarters    map[string]bool
	headerPrefixes    []string
	stopwords         map[string]bool
	connectors        []string
	docLabels         map[string]bool
	docLabelPrefixes  []string
	numberMarkers     []string
	secondaryStarters map[string]bool
	domainNouns       []string
}

// NewLexicon compiles tables into lookup form.
func NewLexicon(t Tables) *Lexicon {
	lx := &Lexicon{
		headerStarters:    toSet(t.HeaderStarters),
		headerPrefixes:    append([]string(nil), t.HeaderStarters...),
		stopwords:         toSet(t.Stopwords),
		docLabels:         toSet(t.DocLabels),
		docLabelPrefixes:  append([]string(nil), t.DocLabelPrefixes...),
		numberMarkers:     append([]string(nil), t.NumberMarkers...),
		secondaryStarters: toSet(t.SecondaryStarters),
		domainNouns:       append([]string(nil), t.DomainNouns...),
	}
	for _, c := range t.Connectors {
		lx.connectors = append(lx.connectors, " "+strings.ToUpper(c))
	}
	return lx
}

// DefaultLexicon compiles the built-in Portuguese tables.
func DefaultLexicon() *Lexicon {
	return NewLexicon(DefaultTables())
}

// toSet uppercases entries and also indexes their diacritic-free form, so
// accented table entries match the folded tokens the predicates produce.
func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words)*2)
	for _, w := range words {
		up := strings.ToUpper(strings.TrimSpace(w))
		set[up] = true
		set[strings.ToUpper(normalize.StripDiacritics(up))] = true
	}
	return set
}
