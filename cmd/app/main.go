package main

import (
	"clinicbook/config"
	"clinicbook/di"
	"clinicbook/infras/metrics"
	"clinicbook/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	metrics.Register()

	http := di.InitializeService()
	http.Serve()
}
