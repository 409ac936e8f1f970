package bbcode

import (
	"net/url"
	"strings"

	"github.com/bbforge/bbforge/internal/doctree"
)

// resolveLink renders a link node as [url=target]text[/url]. The text is the
// already-transcoded link description and falls back to the target itself.
func resolveLink(n *doctree.Node, text string) (string, error) {
	var target string
	switch n.Scheme {
	case "http", "https":
		target = n.Scheme + ":" + n.Path
	case doctree.SchemeAnchor:
		target = canonicalAnchor(n.RawTarget)
	default:
		return "", unsupportedf("link scheme %q", n.Scheme)
	}
	if text == "" {
		text = target
	}
	return WrapValue("url", text, target), nil
}

// canonicalAnchor normalizes a same-document target to a percent-encoded
// "#fragment". Some front ends emit "/#fragment" for anchor-only targets;
// that leading slash is stripped as a literal special case rather than a
// generalized rule.
func canonicalAnchor(raw string) string {
	if strings.HasPrefix(raw, "/#") {
		raw = raw[1:]
	}
	frag := strings.TrimPrefix(raw, "#")
	if unescaped, err := url.PathUnescape(frag); err == nil {
		frag = unescaped
	}
	return "#" + url.PathEscape(frag)
}
