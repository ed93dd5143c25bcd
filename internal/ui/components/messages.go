package components

// NavigateMsg asks the root model to follow a route: "#section" switches
// sections, anything else leaves the landing page.
type NavigateMsg struct{ Route string }

// ScrollMsg moves a scroll container by whole lines or pages. Positive
// values scroll down.
type ScrollMsg struct {
	Lines int
	Pages int
}

// StatusMsg replaces the status bar text.
type StatusMsg struct{ Text string }
