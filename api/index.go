package handler

import (
	"net/http"
	"sync"

	"hms/config"
	"hms/di"
	"hms/shared/logger"
	hmsHTTP "hms/transport/http"
)

var (
	service *hmsHTTP.HTTP
	once    sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the
// first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg.Server.LogLevel)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
