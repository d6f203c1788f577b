package browser

// opDoneMsg reports that a controller operation finished.
type opDoneMsg struct {
	op  string
	err error
}
