package gitlab_impl

import (
	"net/http"

	"sonar_nim/helper/gitlab"
)

type HttpClient struct {
	http *http.Client
}

// New returns a production client.
// You can swap it for a mock in tests.
func New(httpClient *http.Client) gitlab.GitLab {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HttpClient{http: httpClient}
}
