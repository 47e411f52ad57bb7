package ocr

import (
	"image"
	"strings"
)

// Box is one recognized element with its page rectangle. Confidence is on a
// 0-100 scale.
type Box struct {
	Box        image.Rectangle
	Word       string
	Confidence float64
}

// GroupLines assigns every line to the first block containing it and returns
// one structured result per non-empty group. Lines outside every block form a
// trailing group.
func GroupLines(blocks, lines []Box) []Result {
	groups := make([][]Box, len(blocks)+1)
	for _, l := range lines {
		idx := len(blocks)
		for i, b := range blocks {
			if l.Box.In(b.Box) {
				idx = i
				break
			}
		}
		groups[idx] = append(groups[idx], l)
	}
	out := make([]Result, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		texts := make([]any, 0, len(g))
		scores := make([]any, 0, len(g))
		boxes := make([]any, 0, len(g))
		for _, l := range g {
			texts = append(texts, strings.TrimSpace(l.Word))
			scores = append(scores, l.Confidence/100)
			boxes = append(boxes, boxCoords(l.Box))
		}
		out = append(out, map[string]any{
			"res": map[string]any{
				"rec_texts":  texts,
				"rec_scores": scores,
				"rec_boxes":  boxes,
			},
		})
	}
	return out
}

func boxCoords(r image.Rectangle) []any {
	return []any{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}
