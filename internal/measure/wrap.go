package measure

import "strings"

// Line is one wrapped line of text and its measured width.
type Line struct {
	Text  string
	Width float32
}

// wrap breaks s into lines no wider than maxWidth, breaking at spaces and
// at explicit newlines. A word wider than maxWidth gets a line of its own.
func wrap(s string, maxWidth float32, measure func(string) float32, space float32) []Line {
	if s == "" {
		return nil
	}
	var lines []Line
	for _, para := range strings.Split(s, "\n") {
		var cur Line
		started := false
		for _, word := range strings.Fields(para) {
			w := measure(word)
			if !started {
				cur = Line{Text: word, Width: w}
				started = true
				continue
			}
			if cur.Width+space+w > maxWidth {
				lines = append(lines, cur)
				cur = Line{Text: word, Width: w}
				continue
			}
			cur.Text += " " + word
			cur.Width += space + w
		}
		lines = append(lines, cur)
	}
	return lines
}

// extent returns the widest line width.
func extent(lines []Line) float32 {
	var w float32
	for _, l := range lines {
		w = max(w, l.Width)
	}
	return w
}
