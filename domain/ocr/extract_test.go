package ocr

import (
	"encoding/json"
	"testing"
)

func TestStrategies(t *testing.T) {
	tests := []struct {
		name      string
		in        Result
		strategy  Strategy
		want      string
		wantFound bool
	}{
		{"structured any slice", structured("a", 3, " ", "b"), StructuredTexts, "a\nb", true},
		{"structured string slice", map[string]any{"res": map[string]any{"rec_texts": []string{"x", ""}}}, StructuredTexts, "x", true},
		{"structured keeps inner spacing", structured("  padded "), StructuredTexts, "  padded ", true},
		{"structured missing res", map[string]any{"other": 1}, StructuredTexts, "", false},
		{"structured res not a map", map[string]any{"res": []any{}}, StructuredTexts, "", false},
		{"structured texts not a list", map[string]any{"res": map[string]any{"rec_texts": "a"}}, StructuredTexts, "", false},
		{"structured raw json", json.RawMessage(`{"res":{"rec_texts":["raw"]}}`), StructuredTexts, "raw", true},
		{"structured bad json", []byte(`{"res":`), StructuredTexts, "", false},
		{"legacy lines", []any{
			[]any{[]any{0, 0, 1, 1}, []any{" first ", 0.9}},
			[]any{"not a pair"},
			[]any{[]any{}, []any{"", 0.1}},
			[]any{[]any{}, []any{"second", 0.8}},
		}, LegacyLines, "first\nsecond", true},
		{"legacy raw json", []byte(`[[[0,0],["json line",0.5]]]`), LegacyLines, "json line", true},
		{"legacy wrong tuple size", []any{[]any{[]any{}, []any{"x"}}}, LegacyLines, "", false},
		{"legacy on map", structured("x"), LegacyLines, "", false},
		{"nil", nil, StructuredTexts, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.strategy(tc.in)
			if ok != tc.wantFound || got != tc.want {
				t.Fatalf("got %q,%v want %q,%v", got, ok, tc.want, tc.wantFound)
			}
		})
	}
}

func TestDefaultStrategies_FallBackToLegacy(t *testing.T) {
	p := &Processor{strategies: DefaultStrategies}
	text, name, ok := p.extract([]any{[]any{[]any{}, []any{"legacy", 0.9}}})
	if !ok || text != "legacy" || name != "legacy_lines" {
		t.Fatalf("got %q %q %v", text, name, ok)
	}
	text, name, ok = p.extract(structured("new"))
	if !ok || text != "new" || name != "structured" {
		t.Fatalf("got %q %q %v", text, name, ok)
	}
}

func TestLanguages(t *testing.T) {
	if DefaultLanguageCode() != "en" {
		t.Fatalf("default code %s", DefaultLanguageCode())
	}
	if code, ok := LanguageCode("Japanese"); !ok || code != "japan" {
		t.Fatalf("Japanese -> %s %v", code, ok)
	}
	if _, ok := LanguageCode("Klingon"); ok {
		t.Fatalf("unknown language should not resolve")
	}
	names := LanguageNames()
	if len(names) != len(Languages) || names[0] != DefaultLanguage {
		t.Fatalf("unexpected names %v", names)
	}
	for _, l := range Languages {
		if _, ok := TesseractLanguage(l.Code); !ok {
			t.Fatalf("no tesseract mapping for %s", l.Code)
		}
	}
}
