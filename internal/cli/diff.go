package cli

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff renders a line-based diff from oldText to newText. Every line of both
// texts appears once, prefixed with "  " when unchanged, "- " when only in oldText
// and "+ " when only in newText.
func LineDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()

	runesOld, runesNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(runesOld, runesNew, false))

	var out strings.Builder

	for _, d := range diffs {
		prefix := "  "

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffEqual:
		}

		for _, r := range d.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}

			line := lineArray[idx]

			out.WriteString(prefix)
			out.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}

	return out.String()
}
