package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubenet/grid"
	"github.com/katalvlaran/cubenet/solver"
	"github.com/katalvlaran/cubenet/walker"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// WalkRequest is the first websocket message of a /walk session.
type WalkRequest struct {
	Method solver.Method `json:"method"`
	Puzzle string        `json:"puzzle"`
}

// Frame is one websocket message sent by /walk.
type Frame struct {
	Type     string           `json:"type"` // "step", "solution" or "error"
	Step     *walker.Step     `json:"step,omitempty"`
	Solution *solver.Solution `json:"solution,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// query turns the method and cross_check parameters into solver options.
func query(r *http.Request) ([]solver.Option, error) {
	q := r.URL.Query()
	m, err := solver.ParseMethod(q.Get("method"))
	if err != nil {
		return nil, err
	}
	opts := []solver.Option{solver.WithMethod(m)}
	if raw := q.Get("cross_check"); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: cross_check %q", grid.ErrSyntax, raw)
		}
		if on {
			opts = append(opts, solver.WithCrossCheck())
		}
	}
	return opts, nil
}

// status maps input errors to 400 and unsolvable boards to 422.
func status(err error) int {
	switch {
	case errors.Is(err, grid.ErrSyntax),
		errors.Is(err, grid.ErrEmptyBoard),
		errors.Is(err, grid.ErrNoStart),
		errors.Is(err, solver.ErrUnknownMethod):
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

func (s *Server) respond(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warnf("respond: cant encode %v", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := status(err)
	s.log.WithFields(log.Fields{"path": r.URL.Path, "status": code}).Warn(err)
	s.respond(w, code, ErrorBody{Error: err.Error()})
}

func readBody(r *http.Request) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("server: read body: %w", err)
	}
	return string(raw), nil
}

func (s *Server) handlePortals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := query(r)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		body, err := readBody(r)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		// a trailing move list is allowed and ignored
		board, _, _ := strings.Cut(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n")
		g, err := grid.ParseGrid(board)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		d, err := solver.Derive(g, append(opts, solver.WithLogger(s.log))...)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.log.WithFields(log.Fields{"method": d.Method, "portals": len(d.Portals)}).Info("portals served")
		s.respond(w, http.StatusOK, d)
	}
}

func (s *Server) handlePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := query(r)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		p, err := grid.Parse(io.LimitReader(r.Body, maxBody))
		if err != nil {
			s.fail(w, r, err)
			return
		}
		opts = append(opts, solver.WithLogger(s.log), solver.WithWalkOptions(walker.WithContext(r.Context())))
		sol, err := solver.Solve(p, opts...)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		s.log.WithFields(log.Fields{"method": sol.Method, "password": sol.Walk.Password}).Info("password served")
		s.respond(w, http.StatusOK, sol)
	}
}

func (s *Server) handleWalk() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.log.Info("walk: upgrading websocket")
		con, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied to the client
			s.log.Warnf("walk: upgrade failed %v", err)
			return
		}
		defer con.Close()
		con.SetReadLimit(maxBody)

		var req WalkRequest
		if err := con.ReadJSON(&req); err != nil {
			s.log.Warnf("walk: cant decode request %v", err)
			s.closeWith(con, fmt.Errorf("%w: request: %v", grid.ErrSyntax, err))
			return
		}
		p, err := grid.Parse(strings.NewReader(req.Puzzle))
		if err != nil {
			s.closeWith(con, err)
			return
		}

		send := func(st walker.Step) error {
			return con.WriteJSON(Frame{Type: "step", Step: &st})
		}
		sol, err := solver.Solve(p,
			solver.WithMethod(req.Method),
			solver.WithLogger(s.log),
			solver.WithWalkOptions(walker.WithContext(r.Context()), walker.WithOnStep(send)))
		if err != nil {
			s.closeWith(con, err)
			return
		}
		if err := con.WriteJSON(Frame{Type: "solution", Solution: sol}); err != nil {
			s.log.Warnf("walk: cant write solution %v", err)
			return
		}
		s.log.WithField("password", sol.Walk.Password).Info("walk: finished")
		_ = con.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}

// closeWith reports err as the final frame.
func (s *Server) closeWith(con *websocket.Conn, err error) {
	s.log.Warnf("walk: %v", err)
	if werr := con.WriteJSON(Frame{Type: "error", Error: err.Error()}); werr != nil {
		s.log.Warnf("walk: cant write error %v", werr)
		return
	}
	_ = con.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseUnsupportedData, ""))
}
