package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/privates"
	md "github.com/nao1215/markdown"
)

// NoticesMarkdown renders the derived notification list, in derivation order:
// per-item notices first, the earnings notice after them, or a single
// all-clear line.
func NoticesMarkdown(notices []privates.Notice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Уведомления")

	lines := make([]string, 0, len(notices))
	for _, n := range notices {
		lines = append(lines, fmt.Sprintf("%s %s", noticeIcon(n.Level), n.Message))
	}
	doc.BulletList(lines...)

	return doc.String()
}
