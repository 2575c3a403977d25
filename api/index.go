package handler

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"net/http"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	app  *di.App
	once sync.Once
)

// Handler is the serverless entrypoint. The dependency graph is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.InitJSONLogger(cfg)
		logger.SetLogLevel(cfg)

		decimal.MarshalJSONWithoutQuotes = true

		app = di.InitializeApp()
	})

	app.HTTP.ServeHTTP(w, r)
}
