package domain

// Game drives one Board through its turns. Once won or drawn it rejects
// further moves instead of trusting the caller to stop.
type Game struct {
	board     *Board
	current   Cell
	outcome   Outcome
	moveCount int
	lastMove  Coord
}

func NewGame() *Game {
	return &Game{
		board:    NewBoard(),
		current:  PlayerA,
		outcome:  Outcome{Status: StatusActive, Winner: Empty},
		lastMove: Coord{Row: -1, Col: -1},
	}
}

// Play drops the current player's token into column and returns the row
// it landed on.
func (g *Game) Play(column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameOver
	}

	row, err := g.board.DropToken(column, g.current)
	if err != nil {
		return -1, err
	}

	g.moveCount++
	g.lastMove = Coord{Row: row, Col: column}

	if g.board.CheckWin(row, column, g.current) {
		g.outcome = Outcome{Status: StatusWon, Winner: g.current}
		return row, nil
	}

	if g.board.IsBoardFull() {
		g.outcome = Outcome{Status: StatusDraw, Winner: Empty}
		return row, nil
	}

	g.current = g.current.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.outcome.Status == StatusWon || g.outcome.Status == StatusDraw
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Current is the player to move, or the winner once the game is won.
func (g *Game) Current() Cell {
	return g.current
}

func (g *Game) Moves() int {
	return g.moveCount
}

// LastMove is (-1, -1) before the first move.
func (g *Game) LastMove() Coord {
	return g.lastMove
}

func (g *Game) Board() [Rows][Columns]Cell {
	return g.board.Snapshot()
}

// WinningLine returns the cells of the winning run once the game is won.
func (g *Game) WinningLine() ([]Coord, bool) {
	if g.outcome.Status != StatusWon {
		return nil, false
	}
	return g.board.WinningLine(g.outcome.Winner)
}

// IsValidMove reports whether column can be played right now.
func (g *Game) IsValidMove(column int) bool {
	return !g.IsFinished() && ValidateColumn(column) == nil && !g.board.IsColumnFull(column)
}
