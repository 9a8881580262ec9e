// Package web streams solve results over a websocket connection: each
// incoming message is a solver configuration, each outgoing message its
// JSON-encoded result tensors.
package web

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/nrel/florisgo"
)

// SolveRequest is the JSON message a client sends to request a solve.
type SolveRequest struct {
	Config map[string]interface{} `json:"config"`
}

// SolveResponse is the JSON message sent back once a solve completes.
type SolveResponse struct {
	RotorAveragedVelocity *floris.Tensor3 `json:"rotor_averaged_velocity,omitempty"`
	TurbineCts             *floris.Tensor3 `json:"turbine_cts,omitempty"`
	AxialInductions        *floris.Tensor3 `json:"axial_inductions,omitempty"`
	TurbinePowers           *floris.Tensor3 `json:"turbine_powers,omitempty"`
	Error                   string          `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// CheckOrigin is permissive by default, matching a local
	// development/same-origin deployment; callers embedding Server in a
	// production binary should override it.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Solver builds a ready-to-solve *floris.Solver from a decoded
// SolveRequest's configuration, letting Server stay agnostic of where
// turbine specifications come from.
type Solver func(cfg map[string]interface{}) (*floris.Solver, error)

// Server serves one websocket endpoint: each incoming connection may send
// any number of SolveRequest messages and receives one SolveResponse per
// request, in order.
type Server struct {
	NewSolver Solver
	Logger    *logrus.Logger

	mu sync.Mutex
}

func (s *Server) logger() *logrus.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return logrus.StandardLogger()
}

// ServeHTTP upgrades the connection and runs the request/response loop
// until the client disconnects or sends a message Server can't decode.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger().WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var req SolveRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		resp := s.handle(req)
		s.mu.Lock()
		err := conn.WriteJSON(resp)
		s.mu.Unlock()
		if err != nil {
			return
		}
	}
}

func (s *Server) handle(req SolveRequest) SolveResponse {
	solver, err := s.NewSolver(req.Config)
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}
	solver, err = solver.Solve()
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}

	velocity, err := solver.RotorAveragedVelocity()
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}
	cts, err := solver.TurbineCts()
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}
	a, err := solver.AxialInductions()
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}
	power, err := solver.TurbinePowers()
	if err != nil {
		return SolveResponse{Error: err.Error()}
	}

	return SolveResponse{
		RotorAveragedVelocity: velocity,
		TurbineCts:             cts,
		AxialInductions:        a,
		TurbinePowers:           power,
	}
}
