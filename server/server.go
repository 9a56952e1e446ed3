package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

const (
	URIPortals  = "/portals"
	URIPassword = "/password"
	URIWalk     = "/walk"

	// maxBody bounds request bodies and websocket messages.
	maxBody = 1 << 20
)

// Server routes requests to the solver.
type Server struct {
	router   *way.Router
	upgrader *websocket.Upgrader
	log      log.FieldLogger
}

// New returns a Server logging to logger, or to the standard logrus
// logger when logger is nil.
func New(logger log.FieldLogger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	s := &Server{
		upgrader: &websocket.Upgrader{},
		log:      logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("POST", URIPortals, s.handlePortals())
	s.router.HandleFunc("POST", URIPassword, s.handlePassword())
	s.router.HandleFunc("GET", URIWalk, s.handleWalk())
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
