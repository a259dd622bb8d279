package model

// Player is one of the two sides of a game
type Player int

const (
	PlayerX Player = iota // human side
	PlayerO               // automated side
)

// Cell symbols used on the board and in the persisted text form
const (
	SymbolEmpty rune = '.'
	SymbolX     rune = 'x'
	SymbolO     rune = 'o'
)

// Symbol returns the mark this player leaves on the board
func (p Player) Symbol() rune {
	if p == PlayerO {
		return SymbolO
	}
	return SymbolX
}

// Other returns the opposing side
func (p Player) Other() Player {
	if p == PlayerO {
		return PlayerX
	}
	return PlayerO
}

func (p Player) String() string {
	return string(p.Symbol())
}

// PlayerFromSymbol maps a board symbol back to its owner
func PlayerFromSymbol(symbol rune) (Player, bool) {
	switch symbol {
	case SymbolX:
		return PlayerX, true
	case SymbolO:
		return PlayerO, true
	default:
		return 0, false
	}
}
