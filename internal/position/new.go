package position

// NewPosition returns the standard starting position. It cannot fail:
// the starting FEN is always legal.
func NewPosition() Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic("position: starting FEN rejected: " + err.Error())
	}
	return p
}
