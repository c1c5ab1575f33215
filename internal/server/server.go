package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gramework/gramework"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/day02"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/puzzle"
)

// Answer is the body of a successful solve response
type Answer struct {
	Day       int    `json:"day"`
	Part      int    `json:"part"`
	Answer    int    `json:"answer"`
	RequestID string `json:"request_id"`
}

type Server struct {
	solver puzzle.Solver
	app    *gramework.App
}

// New serves POST /solve/?day=N&part=M with the puzzle input as the body.
func New(solver puzzle.Solver) *Server {
	s := &Server{solver: solver}

	app := gramework.New()
	app.POST("/solve/", func(ctx *gramework.Context) {
		handleSolve(ctx, s)
	})
	s.app = app
	return s
}

func (s *Server) ListenAndServe(addr string) error {
	slog.Info("solve server listening", "addr", addr)
	return s.app.ListenAndServe(addr)
}

func handleSolve(ctx *gramework.Context, s *Server) {
	requestID := uuid.NewString()
	params := ctx.GETParams()

	answer, status, err := s.solve(ctx, requestID, firstParam(params, "day"), firstParam(params, "part"), ctx.PostBody())
	switch status {
	case http.StatusOK:
	case http.StatusBadRequest:
		ctx.BadRequest(err)
		return
	default:
		ctx.Err500("Could not solve puzzle: ", err)
		return
	}

	if err := ctx.JSON(answer); err != nil {
		ctx.Err500("Could not encode answer: ", err)
	}
}

// solve is the transport independent part of the handler, it returns the
// http status to reply with
func (s *Server) solve(ctx context.Context, requestID, day, part string, input []byte) (Answer, int, error) {
	key, err := puzzle.ParseKey(day, part)
	if err != nil {
		slog.Warn("bad solve request", "request_id", requestID, "err", err)
		return Answer{}, http.StatusBadRequest, err
	}

	result, err := s.solver.Solve(ctx, key.Day, key.Part, input)
	if err != nil {
		slog.Error("solve failed", "request_id", requestID, "day", key.Day, "part", key.Part, "err", err)
		if errors.Is(err, puzzle.ErrUnknownPuzzle) || errors.Is(err, day02.ErrMalformedRecord) {
			return Answer{}, http.StatusBadRequest, err
		}
		return Answer{}, http.StatusInternalServerError, fmt.Errorf("request %s: %w", requestID, err)
	}

	slog.Info("solve request done", "request_id", requestID, "day", key.Day, "part", key.Part, "answer", result)
	return Answer{
		Day:       int(key.Day),
		Part:      int(key.Part),
		Answer:    result,
		RequestID: requestID,
	}, http.StatusOK, nil
}

func firstParam(params map[string][]string, name string) string {
	values := params[name]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
