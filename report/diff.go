package report

import (
	"strings"

	"github.com/Lgeu/santa23/puzzle"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const labelRunes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// labelRune renders a label as a single rune; labels past the alphabet use
// the private use area.
func labelRune(l int) rune {
	if l >= 0 && l < len(labelRunes) {
		return rune(labelRunes[l])
	}
	return rune(0xE000 + l)
}

// Runes renders a labeling one rune per position.
func Runes(l puzzle.Labeling) []rune {
	res := make([]rune, len(l))
	for i, x := range l {
		res[i] = labelRune(x)
	}
	return res
}

// Diff renders how got differs from want: runs missing from got are shown
// as [-...-], runs only in got as {+...+}.
func Diff(got, want puzzle.Labeling, colors *Colors) string {
	if colors == nil {
		colors = NoColors()
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(Runes(want), Runes(got), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString(colors.Deleted("[-%s-]", d.Text))
		case diffpatch.DiffInsert:
			b.WriteString(colors.Added("{+%s+}", d.Text))
		}
	}
	return b.String()
}
