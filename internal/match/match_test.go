package match

import "testing"

func tokenTexts(text string, toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = text[t.Start:t.End]
	}
	return out
}

func TestTokenize_WordsAndPunctuation(t *testing.T) {
	text := "MADIGAB - GABINETE, LDA 12/2020"
	got := tokenTexts(text, Tokenize(text))
	want := []string{"MADIGAB", "-", "GABINETE", ",", "LDA", "12", "/", "2020"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTokenize_OffsetsAreStable(t *testing.T) {
	text := "  AVISO  N 3  "
	toks := Tokenize(text)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokenTexts(text, toks))
	}
	if text[toks[0].Start:toks[0].End] != "AVISO" || toks[0].Start != 2 {
		t.Fatalf("unexpected first token %+v", toks[0])
	}
}

func TestFindAll_SingleAndMultiTokenPhrases(t *testing.T) {
	text := "AVISO TEXTO AVISO FINAL CONTRATO DE SOCIEDADE"
	toks := Tokenize(text)
	m := NewPhraseMatcher()
	m.Add("doc", "AVISO")
	m.Add("contrato", "CONTRATO DE SOCIEDADE")

	matches := m.FindAll(text, toks)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %+v", matches)
	}
	if matches[0].ID != "doc" || matches[0].Start != 0 {
		t.Fatalf("unexpected first match %+v", matches[0])
	}
	last := matches[2]
	if last.ID != "contrato" || text[last.Start:last.End] != "CONTRATO DE SOCIEDADE" {
		t.Fatalf("unexpected contrato match %+v", last)
	}
}

func TestFindAll_NoPartialTokenMatch(t *testing.T) {
	text := "AVISOS NAO CONTAM"
	toks := Tokenize(text)
	m := NewPhraseMatcher()
	m.Add("doc", "AVISO")
	if matches := m.FindAll(text, toks); len(matches) != 0 {
		t.Fatalf("AVISO must not match inside AVISOS: %+v", matches)
	}
}

func TestFindAll_PunctuationInsidePhrase(t *testing.T) {
	text := "EMPRESA RALNEC - VESTUARIO, LIMITADA REGISTADA"
	toks := Tokenize(text)
	m := NewPhraseMatcher()
	m.Add("sec", "RALNEC - VESTUARIO, LIMITADA")

	matches := m.FindAll(text, toks)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %+v", matches)
	}
	if text[matches[0].Start:matches[0].End] != "RALNEC - VESTUARIO, LIMITADA" {
		t.Fatalf("unexpected span %q", text[matches[0].Start:matches[0].End])
	}
}
