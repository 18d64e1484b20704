package domain

// Cell is the content of one board position.
type Cell int

const (
	Empty   Cell = 0
	PlayerA Cell = 1
	PlayerB Cell = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Symbol returns the character the console shows for the cell.
func (c Cell) Symbol() string {
	switch c {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	default:
		return "-"
	}
}

func (c Cell) IsPlayer() bool {
	return c == PlayerA || c == PlayerB
}

// Opponent returns the other player; Empty stays Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Coord addresses a single cell, row 0 being the top.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Outcome is recomputed after every successful move.
type Outcome struct {
	Status GameStatus
	Winner Cell
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull    Error = "column is full"
	ErrInvalidColumn Error = "column out of range"
	ErrInvalidToken  Error = "token must be a player"
	ErrGameOver      Error = "game is already finished"
)
