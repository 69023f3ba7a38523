package main

import (
	"os"

	"sonar_nim/handler"
	"sonar_nim/helper"
	"sonar_nim/helper/gitlab/gitlab_impl"
	"sonar_nim/log"
	"sonar_nim/model"

	"github.com/labstack/echo/v4"
	glog "github.com/labstack/gommon/log"
)

func init() {
	os.Setenv("APP_NAME", "sonar-nim")
	logger := log.InitLogger(false)
	// Check if KUBERNETES_SERVICE_HOST is set
	if _, exists := os.LookupEnv("KUBERNETES_SERVICE_HOST"); !exists {
		// If not in Kubernetes, set LOG_LEVEL to DEBUG
		os.Setenv("LOG_LEVEL", "DEBUG")
	}
	logger.SetLevel(log.GetLogLevel("LOG_LEVEL"))
}

func main() {
	var cfg model.Config
	helper.LoadConfigFile(&cfg)
	if cfg.GitLab.URL == "" || cfg.GitLab.Token == "" {
		log.Warn("GitLab URL or token is not configured; publishing will fail")
	}

	gitlab := gitlab_impl.New(nil)

	sonarWebhookHandler := handler.SonarWebhookHandler{
		GitLab: gitlab,
		Config: cfg,
	}

	e := echo.New()
	e.Logger.SetLevel(glog.INFO)
	e.POST("/webhook", sonarWebhookHandler.HandleSonarWebhook)
	e.Logger.Fatal(e.Start(":5000"))
}
