package docs

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-quicktest/qt"
)

func TestBook(t *testing.T) {
	book, err := Load(Files)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.DeepEquals(book, &Book{
		Title: "Summary",
		Chapters: []Chapter{
			{Title: "Introduction", Path: "introduction.md"},
			{Title: "Tutorials", Path: "tutorials/index.md", Children: []Chapter{
				{Title: "Basic usage", Path: "tutorials/basic_usage.md"},
			}},
			{Title: "How to", Path: "how_to/index.md", Children: []Chapter{
				{Title: "Compare floating point numbers", Path: "how_to/compare_floating_point_numbers.md"},
				{Title: "Compare composite types", Path: "how_to/compare_composite_types.md"},
				{Title: "Derive the traits", Path: "how_to/derive_the_traits.md"},
				{Title: "Assert in tests", Path: "how_to/assert_in_tests.md"},
				{Title: "Compare with go-cmp", Path: "how_to/compare_with_go_cmp.md"},
			}},
			{Title: "Background", Path: "background/index.md", Children: []Chapter{
				{Title: "Float comparison algorithms", Path: "background/float_comparison_algorithms.md"},
			}},
			{Title: "API documentation", Path: "api_documentation.md"},
		},
		Suffix: []Chapter{
			{Title: "About this documentation", Path: "about.md"},
		},
	}))
	qt.Assert(t, qt.HasLen(book.All(), 13))
}

func TestReadSummary(t *testing.T) {
	book, err := ReadSummary(strings.NewReader(`[Preface](./preface.md)

- [Setup](setup/../setup.md)
- [Reference](https://pkg.go.dev/github.com/antithesishq/floateq)
    - [Not written yet]()
- [` + "`Eq`" + ` in *depth*](eq.md)

[Credits](credits.md)
[License](license.md)
`))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(book, &Book{
		Prefix: []Chapter{{Title: "Preface", Path: "preface.md"}},
		Chapters: []Chapter{
			{Title: "Setup", Path: "setup.md"},
			{Title: "Reference", Path: "https://pkg.go.dev/github.com/antithesishq/floateq", Children: []Chapter{
				{Title: "Not written yet"},
			}},
			{Title: "Eq in depth", Path: "eq.md"},
		},
		Suffix: []Chapter{
			{Title: "Credits", Path: "credits.md"},
			{Title: "License", Path: "license.md"},
		},
	}))
	qt.Assert(t, qt.IsTrue(book.Chapters[1].IsExternal()))
	qt.Assert(t, qt.IsFalse(book.Chapters[0].IsExternal()))
}

func TestReadSummaryErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{{
		name: "too deep",
		src: `- [A](a.md)
    - [B](b.md)
        - [C](c.md)
`,
		want: `SUMMARY.md:3: chapters nested 3 levels deep, at most 2 are allowed`,
	}, {
		name: "item without link",
		src:  "- [A](a.md)\n- B\n",
		want: `SUMMARY.md:2: list item "B" must be a single link`,
	}, {
		name: "text after link",
		src:  "- [A](a.md) and more\n",
		want: `SUMMARY.md:1: list item "A and more" must be a single link`,
	}, {
		name: "ordered list",
		src:  "1. [A](a.md)\n",
		want: `SUMMARY.md:1: numbered chapters must be a bulleted list`,
	}, {
		name: "list after suffix",
		src:  "- [A](a.md)\n\n---\n\n[B](b.md)\n\n- [C](c.md)\n",
		want: `SUMMARY.md:7: numbered chapters must come before the suffix chapters`,
	}, {
		name: "separator first",
		src:  "---\n\n- [A](a.md)\n",
		want: `SUMMARY.md:1: separator before any numbered chapter`,
	}, {
		name: "separator after title",
		src:  "# Summary\n\n\n---\n\n- [A](a.md)\n",
		want: `SUMMARY.md:4: separator before any numbered chapter`,
	}, {
		name: "separator after prefix",
		src:  "[A](a.md)\n\n***\n",
		want: `SUMMARY.md:3: separator before any numbered chapter`,
	}, {
		name: "anchor without page",
		src:  "- [A](#intro)\n",
		want: `SUMMARY.md:1: chapter "A" links to an anchor without a page`,
	}, {
		name: "prose in paragraph",
		src:  "[A](a.md) is the first chapter\n",
		want: `SUMMARY.md:1: expected only links, found " is the first chapter"`,
	}, {
		name: "outside the book",
		src:  "- [A](../a.md)\n",
		want: `SUMMARY.md:1: chapter "A" links outside the book: ../a.md`,
	}, {
		name: "empty title",
		src:  "- [](a.md)\n",
		want: `SUMMARY.md:1: link without a title`,
	}, {
		name: "second title",
		src:  "# Summary\n\n- [A](a.md)\n\n# Part two\n",
		want: `SUMMARY.md:5: unexpected heading "Part two"`,
	}, {
		name: "code block",
		src:  "- [A](a.md)\n\n```\ncode\n```\n",
		want: `SUMMARY.md:\d+: unexpected FencedCodeBlock`,
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			book, err := ReadSummary(strings.NewReader(test.src))
			qt.Assert(t, qt.IsNil(book))
			qt.Assert(t, qt.ErrorMatches(err, test.want))
		})
	}
}

func TestCheck(t *testing.T) {
	fsys := fstest.MapFS{
		SummaryFile:       {Data: []byte("- [One](one.md)\n    - [Two](two.md)\n- [Three](three.md)\n- [Four]()\n- [Go](https://go.dev)\n")},
		"one.md":          {Data: []byte("# One\n\nText.\n")},
		"three.md":        {Data: []byte("Intro text.\n\n# Chapter 3\n")},
		"unreferenced.md": {Data: []byte("# Unreferenced\n")},
	}

	_, err := Load(fsys)
	qt.Assert(t, qt.IsNotNil(err))
	problems := strings.Split(err.Error(), "\n")
	qt.Assert(t, qt.HasLen(problems, 2))
	qt.Assert(t, qt.Matches(problems[0], `chapter "Two": open two.md: .*`))
	qt.Assert(t, qt.Equals(problems[1], `chapter "Three": three.md starts with "Chapter 3"`))

	fsys["two.md"] = &fstest.MapFile{Data: []byte("# Two\n")}
	fsys["three.md"] = &fstest.MapFile{Data: []byte("# Three\n")}
	book, err := Load(fsys)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(book.All(), 5))
}

func TestChapterAnchor(t *testing.T) {
	fsys := fstest.MapFS{
		SummaryFile: {Data: []byte("- [A](a.md#usage)\n    - [Notes](./b/../a.md#notes)\n")},
		"a.md":      {Data: []byte("# A\n")},
	}
	book, err := ReadSummary(strings.NewReader(string(fsys[SummaryFile].Data)))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(book.Chapters, []Chapter{
		{Title: "A", Path: "a.md", Children: []Chapter{{Title: "Notes", Path: "a.md"}}},
	}))

	// The page is checked, not the anchor.
	_, err = Load(fsys)
	qt.Assert(t, qt.ErrorMatches(err, `chapter "Notes": a.md starts with "A"`))

	fsys[SummaryFile] = &fstest.MapFile{Data: []byte("- [A](a.md#usage)\n")}
	_, err = Load(fsys)
	qt.Assert(t, qt.IsNil(err))
}

func TestLoadWithoutSummary(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	qt.Assert(t, qt.ErrorMatches(err, `unable to open outline: open SUMMARY.md: .*`))
}
