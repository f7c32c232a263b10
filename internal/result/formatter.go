package result

import (
	"io"
	"strings"
)

type Formatter interface {
	FormatTree(tree *Tree)
	FormatTrees(trees []*Tree)
}

func NewFormatter(w io.Writer) Formatter {
	return &formatter{writer: w}
}

type formatter struct {
	writer io.Writer

	indent int

	padNext  bool
	lineHead bool
}

func (f *formatter) writeString(s string) {
	_, _ = f.writer.Write([]byte(s))
}

func (f *formatter) writeIndent() *formatter {
	if f.lineHead {
		f.writeString(strings.Repeat("\t", f.indent))
	}
	f.lineHead = false
	f.padNext = false

	return f
}

func (f *formatter) WriteNewline() *formatter {
	f.writeString("\n")
	f.lineHead = true
	f.padNext = false

	return f
}

func (f *formatter) WriteWord(word string) *formatter {
	if f.lineHead {
		f.writeIndent()
	}
	if f.padNext {
		f.writeString(" ")
	}
	f.writeString(strings.TrimSpace(word))
	f.padNext = true

	return f
}

func (f *formatter) WriteString(s string) *formatter {
	if f.lineHead {
		f.writeIndent()
	}
	if f.padNext {
		f.writeString(" ")
	}
	f.writeString(s)
	f.padNext = false

	return f
}

func (f *formatter) IncrementIndent() {
	f.indent++
}

func (f *formatter) DecrementIndent() {
	f.indent--
}

func (f *formatter) NoPadding() *formatter {
	f.padNext = false

	return f
}

func (f *formatter) FormatTrees(trees []*Tree) {
	for _, tree := range trees {
		f.FormatTree(tree)
	}
}

func (f *formatter) FormatTree(tree *Tree) {
	if tree == nil {
		tree = &Tree{}
	}

	if tree.Name != "" {
		f.WriteString(`Result(root: "`)
		f.WriteString(tree.Name)
		f.WriteWord(`")`)
	} else {
		f.WriteWord("Result")
	}
	f.WriteWord("{").WriteNewline()

	f.IncrementIndent()
	f.FormatEntries(tree.Entries)
	f.DecrementIndent()

	f.WriteWord("}").WriteNewline()
}

func (f *formatter) FormatEntries(entries []*Entry) {
	for _, entry := range entries {
		f.FormatEntry(entry)
	}
}

func (f *formatter) FormatEntry(entry *Entry) {
	f.WriteWord(entry.Name)

	switch {
	case entry.Leaf:
		f.NoPadding().WriteWord(":").WriteWord("leaf").WriteNewline()
	case len(entry.Branches) == 0:
		f.NoPadding().WriteWord(":").WriteWord("none").WriteNewline()
	default:
		f.WriteWord("[").WriteNewline()
		f.IncrementIndent()
		for _, branch := range entry.Branches {
			f.FormatBranch(branch)
		}
		f.DecrementIndent()
		f.WriteWord("]").WriteNewline()
	}
}

func (f *formatter) FormatBranch(branch *Branch) {
	f.WriteWord(branch.ResponseName)
	if IsDead(branch.Tree) {
		f.WriteWord("(dead)")
	}
	f.WriteWord("{").WriteNewline()

	if branch.Tree != nil {
		f.IncrementIndent()
		f.FormatEntries(branch.Tree.Entries)
		f.DecrementIndent()
	}

	f.WriteWord("}").WriteNewline()
}
