// Package extract converts HTML gazette pages into the line-structured plain
// text the segmenter consumes. Block elements become line breaks so that a
// page rendered as one <p> per printed line round-trips into the same line
// layout a plain-text gazette has.
package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Document is the extracted page content.
type Document struct {
	Title string
	Text  string
}

// FromHTML extracts line-structured text from HTML, preferring <main> or
// <article> and falling back to <body>. Scripts, styles, navigation and
// footers are skipped. Each block element contributes its own line;
// consecutive blank lines collapse to a single one.
func FromHTML(input []byte) Document {
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return Document{}
	}

	title := strings.TrimSpace(findTitle(node))
	content := findFirst(node, "main")
	if content == nil {
		content = findFirst(node, "article")
	}
	if content == nil {
		content = findFirst(node, "body")
	}

	var b strings.Builder
	if content != nil {
		collectLines(&b, content)
	}
	return Document{Title: title, Text: tidyLines(b.String())}
}

func findTitle(n *html.Node) string {
	head := findFirst(n, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return t.FirstChild.Data
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func collectLines(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe":
			return
		case "br":
			b.WriteString("\n")
		case "p", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr", "div":
			b.WriteString("\n")
		case "table", "ul", "ol":
			b.WriteString("\n")
		}
	}
	if n.Type == html.TextNode {
		// Inline text keeps its place on the current line; interior newlines
		// inside HTML source are formatting noise, not line structure.
		b.WriteString(strings.Join(strings.Fields(n.Data), " "))
		b.WriteString(" ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(b, c)
	}
}

// tidyLines trims every line and collapses runs of blank lines to one.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := true
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		if t == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, t)
		blank = false
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
