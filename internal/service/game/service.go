package game

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect-four/internal/domain"
)

const replayKeyPrefix = "replay:"

// CacheRepository is the subset of a key/value store the service needs.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// ReplayResult describes the position reached after replaying a move list.
type ReplayResult struct {
	Status      domain.GameStatus `json:"status"`
	Winner      int               `json:"winner"`
	NextPlayer  int               `json:"next_player"`
	TotalMoves  int               `json:"total_moves"`
	LastMove    *domain.Coord     `json:"last_move,omitempty"`
	WinningLine []domain.Coord    `json:"winning_line,omitempty"`
	Board       [][]int           `json:"board_state"`
}

// IllegalMoveError reports which move of a replay the engine refused.
type IllegalMoveError struct {
	Index  int
	Column int
	Err    error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("move %d (column %d): %v", e.Index, e.Column, e.Err)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

// Service replays move lists on fresh games. Every call owns its own
// domain.Game, so concurrent calls share nothing but the cache.
type Service struct {
	cache CacheRepository
	ttl   time.Duration
}

// NewService accepts a nil cache, in which case every replay is computed.
func NewService(cache CacheRepository, ttl time.Duration) *Service {
	return &Service{
		cache: cache,
		ttl:   ttl,
	}
}

// Replay plays columns (0-indexed) alternately, PlayerA first.
func (s *Service) Replay(ctx context.Context, columns []int) (*ReplayResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := replayKey(columns)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	g := domain.NewGame()
	for i, column := range columns {
		if _, err := g.Play(column); err != nil {
			return nil, &IllegalMoveError{Index: i, Column: column, Err: err}
		}
	}

	result := buildResult(g)
	s.toCache(ctx, key, result)

	return result, nil
}

func (s *Service) fromCache(ctx context.Context, key string) (*ReplayResult, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil || data == "" {
		return nil, false
	}

	var result ReplayResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		log.Printf("[GAME] Warning: Dropping unreadable cache entry %s: %v", key, err)
		if delErr := s.cache.Del(ctx, key); delErr != nil {
			log.Printf("[GAME] Warning: Failed to delete cache entry %s: %v", key, delErr)
		}
		return nil, false
	}
	return &result, true
}

func (s *Service) toCache(ctx context.Context, key string, result *ReplayResult) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[GAME] Warning: Failed to marshal replay result: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		log.Printf("[GAME] Warning: Failed to cache replay result: %v", err)
	}
}

func buildResult(g *domain.Game) *ReplayResult {
	outcome := g.Outcome()
	result := &ReplayResult{
		Status:     outcome.Status,
		Winner:     int(outcome.Winner),
		TotalMoves: g.Moves(),
		Board:      convertBoardToInts(g.Board()),
	}

	if !g.IsFinished() {
		result.NextPlayer = int(g.Current())
	}
	if g.Moves() > 0 {
		last := g.LastMove()
		result.LastMove = &last
	}
	if line, ok := g.WinningLine(); ok {
		result.WinningLine = line
	}

	return result
}

func replayKey(columns []int) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = strconv.Itoa(c)
	}
	return replayKeyPrefix + strings.Join(parts, ",")
}

// Helper function to convert the board to plain ints for JSON output
func convertBoardToInts(board [domain.Rows][domain.Columns]domain.Cell) [][]int {
	intBoard := make([][]int, len(board))
	for i := range board {
		intBoard[i] = make([]int, len(board[i]))
		for j := range board[i] {
			intBoard[i][j] = int(board[i][j])
		}
	}
	return intBoard
}
