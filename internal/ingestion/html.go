package ingestion

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTML extracts visible text from an HTML document, typically a saved job
// posting. Script, style, and navigation chrome are dropped; block
// elements become line breaks so headings survive as their own lines.
type HTML struct{}

func (*HTML) Extract(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, footer, iframe").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, h5, h6, p, li, td, div, br").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes contribute, otherwise nested divs duplicate text.
		if s.Children().Filter("p, li, div, ul, ol, table").Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	if sb.Len() == 0 {
		return strings.TrimSpace(root.Text()), nil
	}
	return sb.String(), nil
}
