package nav

// Menu holds the show/hide state of the small-screen navigation menu.
// Moving to a different path closes it. A Menu is owned by one viewer and is
// not safe for concurrent use.
type Menu struct {
	open bool
	path string
}

// Open reports whether the menu is shown.
func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// Navigate records a move to path, closing the menu if the path changed.
func (m *Menu) Navigate(path string) {
	if path != m.path {
		m.open = false
	}
	m.path = path
}
