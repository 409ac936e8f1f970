package bbcode

// headlinePrefixes maps a headline level to its textual prefix. Level 0 is
// reserved for synthetic headings such as the footnote section.
var headlinePrefixes = [...]string{"", "# ", "== ", "+++ ", ":::: ", "----- "}

// formatHeadline renders a headline title at the given level: the prefixed
// title wrapped in an underline tag, then a bold tag, then a blank line.
// Levels outside 0..5 are a hard failure, never clamped.
func formatHeadline(level int, title string) (string, error) {
	if level < 0 || level >= len(headlinePrefixes) {
		return "", unsupportedf("headline level %d", level)
	}
	return Wrap("b", Wrap("u", headlinePrefixes[level]+title)) + "\n\n", nil
}
