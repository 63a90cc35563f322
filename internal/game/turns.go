package game

// Colour identifies a side.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row offset a side advances by: +1 for White, which
// starts on the first rows, and -1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Player is a participant identified by colour.
type Player struct {
	Colour Colour
}

// Turns is a cyclic cursor over a fixed list of players.
type Turns struct {
	players []Player
	cursor  int
}

// NewTurns returns the two-player rotation White, Black with White to move.
func NewTurns() *Turns {
	return &Turns{
		players: []Player{{Colour: White}, {Colour: Black}},
	}
}

// Current returns the player whose turn it is.
func (t *Turns) Current() Player {
	return t.players[t.cursor]
}

// Next advances the cursor, wrapping after the last player.
func (t *Turns) Next() {
	t.cursor = (t.cursor + 1) % len(t.players)
}

// Reset moves the cursor back to the first player.
func (t *Turns) Reset() {
	t.cursor = 0
}

// SetCurrent moves the cursor to the player of colour c. It reports false,
// leaving the cursor unchanged, if no such player exists.
func (t *Turns) SetCurrent(c Colour) bool {
	for i, p := range t.players {
		if p.Colour == c {
			t.cursor = i
			return true
		}
	}
	return false
}

// Players returns the players in turn order.
func (t *Turns) Players() []Player {
	out := make([]Player, len(t.players))
	copy(out, t.players)
	return out
}

// Len returns the number of players.
func (t *Turns) Len() int {
	return len(t.players)
}

func (t *Turns) clone() *Turns {
	return &Turns{players: t.Players(), cursor: t.cursor}
}
