package model

type Config struct {
	GitLab GitLabConfig `yaml:"gitlab"`
}

// GitLabConfig points the publisher at the target GitLab instance. URL must
// end with a slash, e.g. https://gitlab.example.com/.
type GitLabConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}
