package helper

import (
	"os"

	"sonar_nim/log"
	"sonar_nim/model"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile fills cfg from config_file/gitlab-config.yaml, then lets the
// GITLAB_URL and GITLAB_TOKEN environment variables override the file values.
// A missing file is not fatal as long as the environment carries both values.
func LoadConfigFile(cfg *model.Config) {
	f, err := os.ReadFile("config_file/gitlab-config.yaml")
	if err != nil {
		log.Error(err)
	} else if err := yaml.Unmarshal(f, cfg); err != nil {
		log.Error(err)
	}

	if url := os.Getenv("GITLAB_URL"); url != "" {
		cfg.GitLab.URL = url
	}
	if token := os.Getenv("GITLAB_TOKEN"); token != "" {
		cfg.GitLab.Token = token
	}
}
