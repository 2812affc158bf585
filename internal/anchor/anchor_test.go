package anchor

import (
	"strings"
	"testing"

	"github.com/textlabpt/gazex/internal/summary"
)

func TestPassesAllCapsGate(t *testing.T) {
	cases := []struct {
		span string
		want bool
	}{
		{"SECRETARIA REGIONAL", true},
		{"SECRETARIA\nREGIONAL", true},
		{"SECRETARIA\n\nREGIONAL", false},
		{"SECRETARIA\n  \nREGIONAL", false},
		{"Secretaria REGIONAL", false},
		{"SECRETARIA REGIONAL, 2020", true},
		{"SECRETÁRIA REGIONAL", true},
	}
	for _, c := range cases {
		if got := passesAllCapsGate(c.span); got != c.want {
			t.Fatalf("passesAllCapsGate(%q) = %v, want %v", c.span, got, c.want)
		}
	}
}

func TestReanchor_TwoDocsTileSection(t *testing.T) {
	sum := "SECRETARIA REGIONAL\nAviso n.º 1/2020\nAviso n.º 2/2020\n"
	body := "SECRETARIA REGIONAL\nAviso n.º 1/2020\nprimeiro bloco de texto\nAviso n.º 2/2020\nsegundo bloco de texto\n"
	full := sum + body
	cut := len(sum)
	roster := []summary.Entry{{
		OrgText: "SECRETARIA REGIONAL",
		Docs:    []string{"Aviso n.º 1/2020", "Aviso n.º 2/2020"},
	}}

	items := Reanchor(full, cut, roster)
	if len(items) != 2 {
		t.Fatalf("expected 2 body items, got %+v", items)
	}

	first, second := items[0], items[1]
	if first.OrderIndex != 1 || second.OrderIndex != 2 {
		t.Fatalf("order indexes must be 1-based and increasing: %d, %d", first.OrderIndex, second.OrderIndex)
	}
	if first.SliceStart != first.OrgStart {
		t.Fatalf("first slice must start at the organization header: %+v", first)
	}
	if first.SliceEnd != second.SliceStart {
		t.Fatalf("slices must tile without gap: %d vs %d", first.SliceEnd, second.SliceStart)
	}
	if second.SliceEnd != len(full) {
		t.Fatalf("last slice must run to the section boundary, got %d", second.SliceEnd)
	}
	if first.DocTitle != "Aviso n.º 1/2020" || second.DocTitle != "Aviso n.º 2/2020" {
		t.Fatalf("unexpected titles %q / %q", first.DocTitle, second.DocTitle)
	}
	if !strings.Contains(first.SliceText, "primeiro bloco") || strings.Contains(first.SliceText, "segundo bloco") {
		t.Fatalf("first slice covers wrong text: %q", first.SliceText)
	}
}

func TestReanchor_RepeatedDocPhraseYieldsTwoBlocks(t *testing.T) {
	// The same label occurs twice in the section; the roster lists it twice,
	// so the forward cursor assigns two distinct occurrences.
	sum := "SECRETARIA REGIONAL\nRectificação\nRectificação\n"
	body := "SECRETARIA REGIONAL\nRectificação\nprimeiro texto\nRectificação\nsegundo texto\n"
	full := sum + body
	roster := []summary.Entry{{
		OrgText: "SECRETARIA REGIONAL",
		Docs:    []string{"Rectificação", "Rectificação"},
	}}

	items := Reanchor(full, len(sum), roster)
	if len(items) != 2 {
		t.Fatalf("expected first+last blocks with no middles, got %+v", items)
	}
	if items[0].DocStart == items[1].DocStart {
		t.Fatalf("duplicate phrase must consume distinct occurrences: %+v", items)
	}
}

func TestReanchor_SingleDocSpansWholeSection(t *testing.T) {
	sum := "SECRETARIA REGIONAL\nAviso n.º 7/2021\n"
	body := "SECRETARIA REGIONAL\nAviso n.º 7/2021\ntexto unico da seccao\n"
	full := sum + body
	roster := []summary.Entry{{
		OrgText: "SECRETARIA REGIONAL",
		Docs:    []string{"Aviso n.º 7/2021"},
	}}

	items := Reanchor(full, len(sum), roster)
	if len(items) != 1 {
		t.Fatalf("expected 1 body item, got %+v", items)
	}
	it := items[0]
	if it.SliceStart != it.OrgStart || it.SliceEnd != len(full) {
		t.Fatalf("single-doc slice must cover [org_start, section_end): %+v", it)
	}
}

func TestReanchor_MonotoneOrgAssignment(t *testing.T) {
	sum := "SECRETARIA REGIONAL DO TURISMO\nAviso n.º 1/2020\n" +
		"SECRETARIA REGIONAL DO AMBIENTE\nAviso n.º 2/2020\n"
	body := "SECRETARIA REGIONAL DO TURISMO\nAviso n.º 1/2020\ntexto\n" +
		"SECRETARIA REGIONAL DO AMBIENTE\nAviso n.º 2/2020\ntexto\n"
	full := sum + body
	roster := []summary.Entry{
		{OrgText: "SECRETARIA REGIONAL DO TURISMO", Docs: []string{"Aviso n.º 1/2020"}},
		{OrgText: "SECRETARIA REGIONAL DO AMBIENTE", Docs: []string{"Aviso n.º 2/2020"}},
	}

	items := Reanchor(full, len(sum), roster)
	if len(items) != 2 {
		t.Fatalf("expected both organizations anchored, got %+v", items)
	}
	if !(items[0].OrgStart < items[1].OrgStart) {
		t.Fatalf("anchored org starts must be strictly increasing: %+v", items)
	}
	// The first section must end exactly where the second organization's
	// anchor begins.
	if items[0].SliceEnd != items[1].OrgStart {
		t.Fatalf("section boundary mismatch: %d vs %d", items[0].SliceEnd, items[1].OrgStart)
	}
}

func TestReanchor_MixedCaseMentionRejected(t *testing.T) {
	sum := "SECRETARIA REGIONAL\nAviso n.º 1/2020\n"
	body := "referente a Secretaria Regional conforme anunciado\nAviso n.º 1/2020\ntexto\n"
	full := sum + body
	roster := []summary.Entry{{
		OrgText: "SECRETARIA REGIONAL",
		Docs:    []string{"Aviso n.º 1/2020"},
	}}

	if items := Reanchor(full, len(sum), roster); len(items) != 0 {
		t.Fatalf("mixed-case mention must not anchor an organization: %+v", items)
	}
}

func TestReanchor_BlankLineCrossingRejected(t *testing.T) {
	sum := "SECRETARIA REGIONAL\nAviso n.º 1/2020\n"
	body := "SECRETARIA\n\nREGIONAL\nAviso n.º 1/2020\ntexto\n"
	full := sum + body
	roster := []summary.Entry{{
		OrgText: "SECRETARIA REGIONAL",
		Docs:    []string{"Aviso n.º 1/2020"},
	}}

	if items := Reanchor(full, len(sum), roster); len(items) != 0 {
		t.Fatalf("span crossing a blank line must not anchor: %+v", items)
	}
}

func TestReanchor_UnanchoredOrgSkipped(t *testing.T) {
	sum := "SECRETARIA REGIONAL DO TURISMO\nAviso n.º 1/2020\n" +
		"SECRETARIA REGIONAL DO MAR\nAviso n.º 2/2020\n"
	// Only the second organization appears in the body.
	body := "SECRETARIA REGIONAL DO MAR\nAviso n.º 2/2020\ntexto\n"
	full := sum + body
	roster := []summary.Entry{
		{OrgText: "SECRETARIA REGIONAL DO TURISMO", Docs: []string{"Aviso n.º 1/2020"}},
		{OrgText: "SECRETARIA REGIONAL DO MAR", Docs: []string{"Aviso n.º 2/2020"}},
	}

	items := Reanchor(full, len(sum), roster)
	if len(items) != 1 {
		t.Fatalf("expected only the anchored organization to produce output, got %+v", items)
	}
	if items[0].OrgText != "SECRETARIA REGIONAL DO MAR" {
		t.Fatalf("wrong organization anchored: %+v", items[0])
	}
}

func TestReanchor_EmptyBodyProducesNothing(t *testing.T) {
	full := "SECRETARIA REGIONAL\nAviso\n"
	roster := []summary.Entry{{OrgText: "SECRETARIA REGIONAL", Docs: []string{"Aviso"}}}
	if items := Reanchor(full, len(full), roster); items != nil {
		t.Fatalf("empty body must yield nil, got %+v", items)
	}
}

func TestReanchor_AccentAndHyphenationInsensitive(t *testing.T) {
	sum := "VICE-PRESIDÊNCIA DO GOVERNO REGIONAL\nRectificação\n"
	// Body spells the name with a soft line wrap after the hyphen.
	body := "VICE-\nPRESIDENCIA DO GOVERNO REGIONAL\nRectificação\ntexto rectificado\n"
	full := sum + body
	roster := []summary.Entry{{
		OrgText: "VICE-PRESIDÊNCIA DO GOVERNO REGIONAL",
		Docs:    []string{"Rectificação"},
	}}

	items := Reanchor(full, len(sum), roster)
	if len(items) != 1 {
		t.Fatalf("normalization must bridge accents and hyphenation, got %+v", items)
	}
	if !strings.HasPrefix(items[0].SliceText, "VICE-") {
		t.Fatalf("slice must start at the original header text: %q", items[0].SliceText)
	}
}
