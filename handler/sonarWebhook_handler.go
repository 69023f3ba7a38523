package handler

import (
	"fmt"
	"net/http"

	"sonar_nim/helper"
	"sonar_nim/helper/gitlab"
	"sonar_nim/log"
	"sonar_nim/model"

	"github.com/labstack/echo/v4"
)

type SonarWebhookHandler struct {
	GitLab gitlab.GitLab
	Config model.Config
}

// HandleSonarWebhook processes one SonarQube Cloud analysis webhook: it
// renders the quality gate result as a markdown comment and creates or
// updates the corresponding note on the GitLab merge request.
func (sw *SonarWebhookHandler) HandleSonarWebhook(c echo.Context) error {
	var event model.AnalysisEvent
	if err := c.Bind(&event); err != nil {
		log.Errorf("Exception occurred: %v", err)
		return c.JSON(http.StatusInternalServerError, model.WebhookResponse{
			Message: "Exception occurred",
			Details: err.Error(),
		})
	}
	log.Infof("Received webhook payload for project %s, branch %s", event.Project.Name, event.Branch.Name)

	// Only pull request analyses carry a merge request to comment on.
	if event.Branch.Type != "PULL_REQUEST" {
		log.Info("Ignoring non-pull request branch type")
		return c.JSON(http.StatusOK, model.WebhookResponse{
			Message: "Ignoring non-pull request branch type",
		})
	}

	comment := helper.GenerateComment(&event)

	projectID, mergeRequestIID := helper.ExtractGitLabIDs(&event)
	if projectID == "" || mergeRequestIID == "" {
		log.Error("Missing GitLab project ID or merge request IID")
		return c.JSON(http.StatusBadRequest, model.WebhookResponse{
			Message: "Missing GitLab project ID or merge request IID",
		})
	}

	result, err := sw.PublishComment(projectID, mergeRequestIID, comment)
	if err != nil {
		log.Errorf("Exception occurred: %v", err)
		return c.JSON(http.StatusInternalServerError, model.WebhookResponse{
			Message: "Exception occurred",
			Details: err.Error(),
		})
	}
	log.Infof("GitLab response status: %d", result.StatusCode)
	log.Debugf("GitLab response body: %s", result.Body)

	if result.StatusCode == http.StatusOK || result.StatusCode == http.StatusCreated {
		return c.JSON(result.StatusCode, model.WebhookResponse{
			Message: fmt.Sprintf("Comment %s successfully", result.Action),
		})
	}
	return c.JSON(result.StatusCode, model.WebhookResponse{
		Message: fmt.Sprintf("Failed to %s comment", result.Action),
		Details: result.Body,
	})
}
