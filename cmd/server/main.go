package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/enersim/usage-alert-service/pkg/common"
	"github.com/enersim/usage-alert-service/pkg/db"
	"github.com/enersim/usage-alert-service/pkg/engine"
	alertHttp "github.com/enersim/usage-alert-service/pkg/http"
	"github.com/enersim/usage-alert-service/pkg/whatsapp"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	alertDbType := os.Getenv(common.EnvKeyAlertDBType)
	switch alertDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown ALERT_DB_TYPE: " + alertDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyAlertHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyAlertDefaultRate), 64); err != nil {
		log.Fatal("Invalid ALERT_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyAlertDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid ALERT_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	var transport engine.Transport
	gatewayURL := strings.TrimSpace(os.Getenv(common.EnvKeyAlertGatewayURL))
	if gatewayURL != "" {
		transport = whatsapp.NewClient(gatewayURL, os.Getenv(common.EnvKeyAlertGatewayToken))
		logger.Info("WhatsApp gateway configured", zap.String("url", gatewayURL))
	} else {
		logger.Warn("ALERT_WA_GATEWAY_URL not set, notification sends will be recorded as failures")
	}

	alertEngine := engine.Engine{
		Db:        *dbInstance,
		Transport: transport,
	}
	alertEngine.WithServices(engine.ServiceOpts{
		Trigger:    alertEngine.GetITrigger(),
		History:    alertEngine.GetIHistory(),
		Settings:   alertEngine.GetISettings(),
		Evaluator:  alertEngine.GetIEvaluator(),
		Dispatcher: alertEngine.GetIDispatcher(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":2080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &alertHttp.RestfulServer{
		Server:           gin.Default(),
		Engine:           &alertEngine,
		RateLimiterStore: engine.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
