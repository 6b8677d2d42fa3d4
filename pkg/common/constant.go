package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAlertDBType string = "ALERT_DB_TYPE"
	EnvKeyAlertDbPath string = "ALERT_DB_PATH"

	EnvKeyAlertHttpHostPort string = "ALERT_HTTP_HOST_PORT"

	EnvKeyAlertDefaultRate  string = "ALERT_DEFAULT_RATE"
	EnvKeyAlertDefaultBurst string = "ALERT_DEFAULT_BURST"

	EnvKeyAlertGatewayURL   string = "ALERT_WA_GATEWAY_URL"
	EnvKeyAlertGatewayToken string = "ALERT_WA_GATEWAY_TOKEN"

	LoggerNameAlertEngine       string = "alert_engine"
	LoggerNameRestfulServer     string = "restful_server"
	LoggerFieldAlertCategory    string = "category"
	LoggerCategoryAlertTrigger  string = "trigger"
	LoggerCategoryAlertHistory  string = "history"
	LoggerCategoryAlertSettings string = "settings"
	LoggerCategoryAlertEvaluate string = "evaluate"
	LoggerCategoryAlertDispatch string = "dispatch"
	LoggerCategoryAlertStartup  string = "startup"
	LoggerCategoryAlertWhatsapp string = "whatsapp"
)
