// Command cubenetd serves the solver over HTTP; see package server.
package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/cubenet/server"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalln(err)
	}
	log.SetLevel(cfg.LogLevel)

	s := server.New(log.StandardLogger())
	log.Infof("listening on %s", cfg.Addr())
	log.Fatalln(http.ListenAndServe(cfg.Addr(), s))
}
