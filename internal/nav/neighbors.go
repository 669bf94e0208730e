package nav

import "strings"

// Locate returns the index of the first page whose link is a prefix of
// currentPath, or -1 when none is.
func Locate(pages []Page, currentPath string) int {
	for i, p := range pages {
		if strings.HasPrefix(currentPath, p.Link) {
			return i
		}
	}
	return -1
}

// Neighbors returns the pages immediately before and after the current page
// in the reading sequence. Either result may be nil at the ends.
//
// When currentPath matches no page, prev is nil and next is the first page,
// so a reader who lands outside the sequence is pointed at its start.
func Neighbors(pages []Page, currentPath string) (prev, next *Page) {
	i := Locate(pages, currentPath)
	if i > 0 {
		p := pages[i-1]
		prev = &p
	}
	if i+1 < len(pages) {
		n := pages[i+1]
		next = &n
	}
	return prev, next
}

// Find returns the page whose link is exactly link.
func Find(pages []Page, link string) (Page, bool) {
	for _, p := range pages {
		if p.Link == link {
			return p, true
		}
	}
	return Page{}, false
}
