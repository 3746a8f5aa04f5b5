package convert

import (
	"strings"

	"golang.org/x/net/html"
)

// element is a line that consists of exactly one HTML element.
type element struct {
	tag   string
	attrs []html.Attribute
	// inner is the raw markup between the start and end tags.
	inner string
}

func (e element) attr(key string) string {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

var voidElements = map[string]bool{"hr": true, "img": true, "br": true}

// parseElement reports whether s is a single element, optionally followed
// by whitespace. Void elements such as <hr> and <img> stand alone; other
// elements must be closed by a matching end tag.
func parseElement(s string) (element, bool) {
	z := html.NewTokenizer(strings.NewReader(s))

	tt := z.Next()
	if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
		return element{}, false
	}
	offset := len(z.Raw())
	tok := z.Token()
	el := element{tag: tok.Data, attrs: tok.Attr}
	if tt == html.SelfClosingTagToken || voidElements[el.tag] {
		return el, onlySpaceRemains(z)
	}

	start, depth := offset, 0
	for {
		tt = z.Next()
		if tt == html.ErrorToken {
			return element{}, false
		}
		raw := len(z.Raw())
		switch tt {
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == el.tag {
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == el.tag {
				if depth == 0 {
					el.inner = s[start:offset]
					return el, onlySpaceRemains(z)
				}
				depth--
			}
		}
		offset += raw
	}
}

func onlySpaceRemains(z *html.Tokenizer) bool {
	for {
		switch z.Next() {
		case html.ErrorToken:
			return true
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) != "" {
				return false
			}
		default:
			return false
		}
	}
}
