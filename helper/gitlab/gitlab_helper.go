package gitlab

import "sonar_nim/model"

// GitLab exposes the merge request note operations the publisher needs.
// baseURL must end with a slash; token is a PRIVATE-TOKEN credential.
// Create and update return the remote status code and raw response body so the
// webhook caller sees GitLab's answer verbatim.
type GitLab interface {
	FetchMergeRequestNotes(baseURL, token, projectID, mergeRequestIID string) ([]model.MergeRequestNote, error)
	CreateMergeRequestNote(baseURL, token, projectID, mergeRequestIID, body string) (int, string, error)
	UpdateMergeRequestNote(baseURL, token, projectID, mergeRequestIID string, noteID int, body string) (int, string, error)
}
