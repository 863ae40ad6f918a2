package state

import "strings"

type Menu struct {
	state int
}

func NewMenu() *Menu {
	return &Menu{state: MenuClosed}
}

func (m *Menu) Toggle() {
	if m.state == MenuOpen {
		m.state = MenuClosed
	} else {
		m.state = MenuOpen
	}
}

// LinkClicked closes the menu.
func (m *Menu) LinkClicked() {
	m.state = MenuClosed
}

func (m *Menu) IsOpen() bool {
	return m.state == MenuOpen
}

// AriaLabelKey is the message key of the hamburger button label.
func (m *Menu) AriaLabelKey() string {
	if m.IsOpen() {
		return "menu.close"
	}
	return "menu.open"
}

// ActiveLink reports whether a navigation link points at the current page.
// ".html" suffixes and trailing slashes are ignored so that static and served
// paths compare equal.
func ActiveLink(currentPath, href string) bool {
	return normalizePath(currentPath) == normalizePath(href)
}

func normalizePath(p string) string {
	p = strings.TrimSuffix(p, "index.html")
	p = strings.TrimSuffix(p, ".html")
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
