// Package docs holds the floateq book and reads its outline.
//
// The outline, SUMMARY.md, is a markdown file in the format book renderers
// such as mdBook expect: an optional title, links to prefix chapters, a
// bulleted list of numbered chapters nested at most MaxDepth levels, then
// after a horizontal rule the links to suffix chapters.
package docs

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Files is the book: the outline and every chapter it links to.
//
//go:embed *.md tutorials/*.md how_to/*.md background/*.md
var Files embed.FS

// SummaryFile is the name of the outline in the book root.
const SummaryFile = "SUMMARY.md"

// MaxDepth is how deeply numbered chapters may nest.
const MaxDepth = 2

// Chapter is one entry of the outline.
type Chapter struct {
	Title string
	// Path is relative to the book root, or an absolute URL for external
	// chapters. It is empty for draft chapters, which have no page yet.
	Path     string
	Children []Chapter
}

// IsExternal reports whether the chapter links outside the book.
func (c Chapter) IsExternal() bool {
	return strings.Contains(c.Path, "://")
}

// Book is a parsed outline.
type Book struct {
	Title    string
	Prefix   []Chapter
	Chapters []Chapter
	Suffix   []Chapter
}

// All returns every chapter of the book in reading order.
func (b *Book) All() []Chapter {
	var all []Chapter
	var walk func([]Chapter)
	walk = func(chapters []Chapter) {
		for _, c := range chapters {
			all = append(all, c)
			walk(c.Children)
		}
	}
	walk(b.Prefix)
	walk(b.Chapters)
	walk(b.Suffix)
	return all
}

type summaryParser struct {
	src   []byte
	book  *Book
	state int
}

const (
	statePrefix = iota
	stateNumbered
	stateSuffix
)

// ReadSummary parses an outline.
func ReadSummary(r io.Reader) (*Book, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read outline")
	}
	p := &summaryParser{src: src, book: &Book{}}
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := p.block(n); err != nil {
			return nil, err
		}
	}
	return p.book, nil
}

func (p *summaryParser) block(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Heading:
		if n.Level != 1 || p.book.Title != "" || p.state != statePrefix || len(p.book.Prefix) > 0 {
			return p.errorf(n, "unexpected heading %q", p.text(n))
		}
		p.book.Title = p.text(n)
	case *ast.Paragraph:
		chapters, err := p.links(n)
		if err != nil {
			return err
		}
		if p.state == statePrefix {
			p.book.Prefix = append(p.book.Prefix, chapters...)
		} else {
			p.state = stateSuffix
			p.book.Suffix = append(p.book.Suffix, chapters...)
		}
	case *ast.List:
		if p.state == stateSuffix {
			return p.errorf(n, "numbered chapters must come before the suffix chapters")
		}
		chapters, err := p.list(n, 1)
		if err != nil {
			return err
		}
		p.state = stateNumbered
		p.book.Chapters = append(p.book.Chapters, chapters...)
	case *ast.ThematicBreak:
		if p.state == statePrefix {
			return p.errorf(n, "separator before any numbered chapter")
		}
		p.state = stateSuffix
	default:
		return p.errorf(n, "unexpected %s", n.Kind())
	}
	return nil
}

// links returns the chapters of a paragraph made only of links.
func (p *summaryParser) links(para ast.Node) ([]Chapter, error) {
	var chapters []Chapter
	for n := para.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Link:
			c, err := p.chapter(para, n)
			if err != nil {
				return nil, err
			}
			chapters = append(chapters, c)
		case *ast.Text:
			if len(bytes.TrimSpace(n.Segment.Value(p.src))) > 0 {
				return nil, p.errorf(para, "expected only links, found %q", n.Segment.Value(p.src))
			}
		default:
			return nil, p.errorf(para, "expected only links, found %s", n.Kind())
		}
	}
	return chapters, nil
}

func (p *summaryParser) list(list *ast.List, depth int) ([]Chapter, error) {
	if depth > MaxDepth {
		return nil, p.errorf(list, "chapters nested %d levels deep, at most %d are allowed", depth, MaxDepth)
	}
	if list.IsOrdered() {
		return nil, p.errorf(list, "numbered chapters must be a bulleted list")
	}
	var chapters []Chapter
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		entry := item.FirstChild()
		if entry == nil {
			return nil, p.errorf(list, "empty list item")
		}
		link, ok := entry.FirstChild().(*ast.Link)
		if !ok || link.NextSibling() != nil {
			return nil, p.errorf(entry, "list item %q must be a single link", p.text(entry))
		}
		c, err := p.chapter(entry, link)
		if err != nil {
			return nil, err
		}
		for sub := entry.NextSibling(); sub != nil; sub = sub.NextSibling() {
			nested, ok := sub.(*ast.List)
			if !ok {
				return nil, p.errorf(sub, "unexpected %s in list item", sub.Kind())
			}
			children, err := p.list(nested, depth+1)
			if err != nil {
				return nil, err
			}
			c.Children = append(c.Children, children...)
		}
		chapters = append(chapters, c)
	}
	return chapters, nil
}

func (p *summaryParser) chapter(block ast.Node, link *ast.Link) (Chapter, error) {
	c := Chapter{Title: p.text(link)}
	if c.Title == "" {
		return c, p.errorf(block, "link without a title")
	}
	dest := string(link.Destination)
	switch {
	case dest == "":
	case strings.Contains(dest, "://"):
		c.Path = dest
	default:
		if i := strings.IndexByte(dest, '#'); i >= 0 {
			dest = dest[:i]
		}
		if dest == "" {
			return c, p.errorf(block, "chapter %q links to an anchor without a page", c.Title)
		}
		c.Path = path.Clean(dest)
		if !fs.ValidPath(c.Path) {
			return c, p.errorf(block, "chapter %q links outside the book: %s", c.Title, dest)
		}
	}
	return c, nil
}

// text is the plain text of an inline subtree.
func (p *summaryParser) text(n ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(p.src))
			if n.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func (p *summaryParser) errorf(n ast.Node, format string, args ...any) error {
	return errors.Errorf("%s:%d: %s", SummaryFile, p.line(n), fmt.Sprintf(format, args...))
}

// line is the 1-based line a block starts on.
func (p *summaryParser) line(n ast.Node) int {
	return bytes.Count(p.src[:p.start(n)], []byte("\n")) + 1
}

// start is the offset a block starts at. Blocks without text of their own,
// such as a thematic break, start on the first non-blank line after the
// previous block.
func (p *summaryParser) start(n ast.Node) int {
	for c := n; c != nil && c.Type() == ast.TypeBlock; c = c.FirstChild() {
		if lines := c.Lines(); lines.Len() > 0 {
			return lines.At(0).Start
		}
	}
	pos := 0
	if prev := n.PreviousSibling(); prev != nil {
		pos = p.end(prev)
	}
	return p.skipBlank(pos)
}

// end is the offset just past the last text of a block.
func (p *summaryParser) end(n ast.Node) int {
	for c := n.LastChild(); c != nil; c = c.PreviousSibling() {
		if c.Type() == ast.TypeBlock {
			return p.end(c)
		}
	}
	if lines := n.Lines(); lines.Len() > 0 {
		return lines.At(lines.Len() - 1).Stop
	}
	start := p.start(n)
	if i := bytes.IndexByte(p.src[start:], '\n'); i >= 0 {
		return start + i + 1
	}
	return len(p.src)
}

// skipBlank moves pos to the start of the next line holding text, finishing
// the current line first if pos is in the middle of one.
func (p *summaryParser) skipBlank(pos int) int {
	if pos > 0 && p.src[pos-1] != '\n' {
		i := bytes.IndexByte(p.src[pos:], '\n')
		if i < 0 {
			return len(p.src)
		}
		pos += i + 1
	}
	for pos < len(p.src) {
		i := bytes.IndexByte(p.src[pos:], '\n')
		if i < 0 || len(bytes.TrimSpace(p.src[pos:pos+i])) > 0 {
			break
		}
		pos += i + 1
	}
	return pos
}

// Load reads the outline of the book in fsys and checks it against the
// chapters present.
func Load(fsys fs.FS) (*Book, error) {
	f, err := fsys.Open(SummaryFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open outline")
	}
	defer f.Close()

	book, err := ReadSummary(f)
	if err != nil {
		return nil, err
	}
	if err := Check(fsys, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Check verifies that every chapter of book linking into fsys exists and
// starts with a heading matching its title.
func Check(fsys fs.FS, book *Book) error {
	local := lo.Filter(book.All(), func(c Chapter, _ int) bool {
		return c.Path != "" && !c.IsExternal()
	})
	var problems []string
	for _, c := range local {
		src, err := fs.ReadFile(fsys, c.Path)
		if err != nil {
			problems = append(problems, errors.Wrapf(err, "chapter %q", c.Title).Error())
			continue
		}
		if heading := firstHeading(src); heading != c.Title {
			problems = append(problems, errors.Errorf("chapter %q: %s starts with %q", c.Title, c.Path, heading).Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "\n"))
	}
	return nil
}

func firstHeading(src []byte) string {
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			p := &summaryParser{src: src}
			return p.text(h)
		}
	}
	return ""
}
