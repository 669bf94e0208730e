package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/docnav/docnav/internal/nav"
)

// SidebarHTML renders sidebar groups as nested <ul><li> HTML. Collapsed
// sections are emitted without the "expanded" class; the script toggles it.
func SidebarHTML(groups []nav.SidebarGroup) string {
	var b strings.Builder
	b.WriteString(`<ul class="nav-groups">` + "\n")
	for _, g := range groups {
		fmt.Fprintf(&b, `<li class="nav-group"><span class="group-title">%s</span>`+"\n", html.EscapeString(g.Name))
		renderItems(&b, g.Items)
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}

func renderItems(b *strings.Builder, items []nav.SidebarItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, it := range items {
		if it.Leaf {
			activeClass := ""
			if it.Active {
				activeClass = ` class="active" aria-current="page"`
			}
			fmt.Fprintf(b, `<li class="file"><a href="%s"%s>%s</a></li>`+"\n",
				html.EscapeString(it.Link), activeClass, html.EscapeString(it.Name))
			continue
		}
		expanded := ""
		if !it.Collapsed {
			expanded = " expanded"
		}
		fmt.Fprintf(b, `<li class="dir%s"><span class="dir-toggle">%s</span>`+"\n", expanded, html.EscapeString(it.Name))
		renderItems(b, it.Children)
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
}
