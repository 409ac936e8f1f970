package bbcode

import "strings"

// Attr is a single bracket-tag attribute, rendered as key="value".
type Attr struct {
	Key   string
	Value string
}

// Wrap surrounds contents with [tag]...[/tag]. Attributes render
// space-separated in the order given and are omitted entirely when absent.
// Contents pass through byte for byte; the dialect needs no escaping.
func Wrap(tag, contents string, attrs ...Attr) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(tag)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	b.WriteString(contents)
	b.WriteString("[/")
	b.WriteString(tag)
	b.WriteByte(']')
	return b.String()
}

// WrapValue surrounds contents with [tag=value]...[/tag].
func WrapValue(tag, contents, value string) string {
	return "[" + tag + "=" + value + "]" + contents + "[/" + tag + "]"
}
