package helper

import "sonar_nim/model"

const (
	gitlabProjectIDProperty = "sonar.analysis.gitlabProjectId"
	mergeRequestIDProperty  = "sonar.analysis.mergeRequestId"
)

// ExtractGitLabIDs pulls the GitLab project ID and merge request IID out of
// the analysis properties. The scanner has to be launched with
// -Dsonar.analysis.gitlabProjectId and -Dsonar.analysis.mergeRequestId for
// these to be present; either one missing means the event cannot be routed.
func ExtractGitLabIDs(event *model.AnalysisEvent) (projectID, mergeRequestIID string) {
	return event.Properties[gitlabProjectIDProperty], event.Properties[mergeRequestIDProperty]
}
