// Package layout holds the placement math shared by the renderer and the
// pointer mapping: centering padding and the screen <-> cell transform.
package layout

// Padding returns the filler units placed before and after content so that
// before + content + after == width
// When width-content is odd the extra unit goes before the content; for
// single-unit content this is before = (width-1)/2 + 1 - width%2
// Content wider than width gets no padding
func Padding(width, content int) (before, after int) {
	if content < 0 {
		content = 0
	}
	spare := width - content
	if spare <= 0 {
		return 0, 0
	}
	after = spare / 2
	before = after + spare%2
	return before, after
}
