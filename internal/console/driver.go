package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/iamasit07/connect-four/internal/domain"
)

const (
	msgInvalidMove  = "Invalid move. Please try again."
	msgInvalidInput = "Invalid input. Please enter a number."
)

// Driver runs the turn loop of one game against a text terminal.
type Driver struct {
	in      *bufio.Scanner
	out     io.Writer
	symbols Symbols
	game    *domain.Game
}

func NewDriver(in io.Reader, out io.Writer, symbols Symbols) *Driver {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	if symbols == nil {
		symbols = DefaultSymbols()
	}
	return &Driver{
		in:      scanner,
		out:     out,
		symbols: symbols,
		game:    domain.NewGame(),
	}
}

// Run plays until someone wins or the board fills up. It returns
// io.ErrUnexpectedEOF if the input ends first.
func (d *Driver) Run() (domain.Outcome, error) {
	for !d.game.IsFinished() {
		if err := RenderBoard(d.out, d.game.Board(), d.symbols); err != nil {
			return d.game.Outcome(), err
		}

		player := d.game.Current()
		fmt.Fprintf(d.out, "Player %s, choose a column (1-%d): \n", d.symbols.For(player), domain.Columns)

		column, err := d.readMove()
		if err != nil {
			return d.game.Outcome(), err
		}

		row, err := d.game.Play(column)
		if err != nil {
			fmt.Fprintln(d.out, msgInvalidMove)
			continue
		}
		log.Printf("[GAME] Player %s dropped into column %d, row %d", d.symbols.For(player), column+1, row)
	}

	if err := RenderBoard(d.out, d.game.Board(), d.symbols); err != nil {
		return d.game.Outcome(), err
	}

	outcome := d.game.Outcome()
	if outcome.Status == domain.StatusWon {
		fmt.Fprintf(d.out, "Player %s wins!\n", d.symbols.For(outcome.Winner))
	} else {
		fmt.Fprintln(d.out, "It's a draw!")
	}
	return outcome, nil
}

// readMove reads tokens until one names a playable column and returns it
// 0-indexed.
func (d *Driver) readMove() (int, error) {
	for d.in.Scan() {
		input := d.in.Text()

		move, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(d.out, msgInvalidInput)
			continue
		}

		column := move - 1
		if !d.game.IsValidMove(column) {
			fmt.Fprintln(d.out, msgInvalidMove)
			continue
		}
		return column, nil
	}

	if err := d.in.Err(); err != nil {
		return -1, fmt.Errorf("failed to read move: %w", err)
	}
	return -1, io.ErrUnexpectedEOF
}

func (d *Driver) Game() *domain.Game {
	return d.game
}
