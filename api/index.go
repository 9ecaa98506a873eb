package handler

import (
	"net/http"
	"sync"

	"github.com/NikQuila/website-gocar-sub000/config"
	"github.com/NikQuila/website-gocar-sub000/di"
	"github.com/NikQuila/website-gocar-sub000/shared/logger"
	transportHTTP "github.com/NikQuila/website-gocar-sub000/transport/http"
)

var (
	server *transportHTTP.HTTP
	once   sync.Once
)

// Handler serves the API as a serverless function. The container is built
// once per instance so the availability cache survives between invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Setup(cfg, "serverless")

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
