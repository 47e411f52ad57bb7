package ocr

import (
	"image"
	"strings"
	"testing"
)

func regionTexts(t *testing.T, results []Result) []string {
	t.Helper()
	out := make([]string, 0, len(results))
	for _, r := range results {
		text, ok := StructuredTexts(r)
		if !ok {
			t.Fatalf("group without text: %#v", r)
		}
		out = append(out, text)
	}
	return out
}

func TestGroupLines(t *testing.T) {
	top := Box{Box: image.Rect(0, 0, 200, 100)}
	bottom := Box{Box: image.Rect(0, 200, 200, 300)}
	empty := Box{Box: image.Rect(300, 300, 400, 400)}
	line := func(word string, r image.Rectangle) Box {
		return Box{Box: r, Word: word, Confidence: 90}
	}

	tests := []struct {
		name   string
		blocks []Box
		lines  []Box
		want   []string
	}{
		{"lines inside one block", []Box{top},
			[]Box{line("first\n", image.Rect(5, 5, 100, 20)), line(" second", image.Rect(5, 30, 100, 45))},
			[]string{"first\nsecond"}},
		{"lines split across blocks", []Box{top, bottom},
			[]Box{line("a", image.Rect(5, 5, 50, 20)), line("b", image.Rect(5, 210, 50, 230))},
			[]string{"a", "b"}},
		{"line outside every block forms trailing group", []Box{top},
			[]Box{line("orphan", image.Rect(500, 500, 600, 520)), line("inside", image.Rect(5, 5, 50, 20))},
			[]string{"inside", "orphan"}},
		{"empty block skipped", []Box{empty, top},
			[]Box{line("only", image.Rect(5, 5, 50, 20))},
			[]string{"only"}},
		{"no lines", []Box{top}, nil, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := regionTexts(t, GroupLines(tc.blocks, tc.lines))
			if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestGroupLines_Scores(t *testing.T) {
	res := GroupLines(nil, []Box{{Box: image.Rect(1, 2, 3, 4), Word: "x", Confidence: 87}})
	inner := res[0].(map[string]any)["res"].(map[string]any)
	if s := inner["rec_scores"].([]any)[0].(float64); s != 0.87 {
		t.Fatalf("score %v", s)
	}
	box := inner["rec_boxes"].([]any)[0].([]any)
	if box[0] != 1 || box[3] != 4 {
		t.Fatalf("box %v", box)
	}
}
