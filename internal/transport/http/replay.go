package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/service/game"
)

// Replayer is implemented by game.Service.
type Replayer interface {
	Replay(ctx context.Context, columns []int) (*game.ReplayResult, error)
}

type ReplayHandler struct {
	Service Replayer
}

func NewReplayHandler(service Replayer) *ReplayHandler {
	return &ReplayHandler{Service: service}
}

// replayRequest carries 1-indexed columns, the same numbering players see.
type replayRequest struct {
	Moves []int `json:"moves"`
}

type replayError struct {
	Error  string `json:"error"`
	Move   *int   `json:"move,omitempty"`
	Column *int   `json:"column,omitempty"`
}

// Replay plays the submitted moves on a fresh board and returns the result
func (h *ReplayHandler) Replay(c *gin.Context) {
	var req replayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, replayError{Error: "Invalid request body"})
		return
	}
	if len(req.Moves) > domain.Rows*domain.Columns+1 {
		c.JSON(http.StatusBadRequest, replayError{Error: "Too many moves"})
		return
	}

	columns := make([]int, len(req.Moves))
	for i, m := range req.Moves {
		columns[i] = m - 1
	}

	result, err := h.Service.Replay(c.Request.Context(), columns)
	if err != nil {
		var illegal *game.IllegalMoveError
		if errors.As(err, &illegal) {
			move := illegal.Index
			column := illegal.Column + 1
			c.JSON(http.StatusUnprocessableEntity, replayError{
				Error:  illegal.Err.Error(),
				Move:   &move,
				Column: &column,
			})
			return
		}

		log.Printf("[HTTP] Replay failed: %v", err)
		c.JSON(http.StatusInternalServerError, replayError{Error: "Failed to replay game"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// NewRouter wires the replay routes behind the shared middleware.
func NewRouter(handler *ReplayHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middlewares...)

	router.GET("/health", Health)
	router.POST("/api/replay", handler.Replay)

	return router
}
