package convert

import (
	"strings"

	"github.com/dshills/blockstorm/internal/engine/model"
)

// DocumentToPlainText returns the text of every run in document order,
// joined by single spaces. Used for search indexing and read-aloud.
func DocumentToPlainText(doc *model.Node) string {
	var runs []string
	eachRun(doc, func(text string) {
		runs = append(runs, text)
	})
	return strings.Join(runs, " ")
}

// WordCount returns the number of whitespace-delimited tokens across all
// Text runs. A word never spans two runs.
func WordCount(doc *model.Node) int {
	n := 0
	eachRun(doc, func(text string) {
		n += len(strings.Fields(text))
	})
	return n
}

func eachRun(doc *model.Node, fn func(string)) {
	if doc == nil {
		return
	}
	doc.Descendants(func(d *model.Node, _ int) bool {
		if d.IsText() {
			fn(d.Text())
		}
		return true
	})
}
