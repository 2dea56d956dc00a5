package ui

// InterruptMsg asks the prompt to quit without launching anything
type InterruptMsg struct{}

// pagerMsg contains the result of showing text in the pager
type pagerMsg struct {
	err error
}
