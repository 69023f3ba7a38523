package gitlab_impl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sonar_nim/log"
	"sonar_nim/model"
)

// notesURL builds the GitLab notes endpoint for one merge request.
// baseURL is expected to end with a slash.
func notesURL(baseURL, projectID, mergeRequestIID string) string {
	return fmt.Sprintf("%sapi/v4/projects/%s/merge_requests/%s/notes", baseURL, projectID, mergeRequestIID)
}

// Fetch all notes (comments) on a specific merge request
func (hc *HttpClient) FetchMergeRequestNotes(baseURL, token, projectID, mergeRequestIID string) ([]model.MergeRequestNote, error) {
	apiURL := notesURL(baseURL, projectID, mergeRequestIID)
	log.Debugf("Fetching notes from URL: %s", apiURL)

	req, err := http.NewRequest("GET", apiURL, nil)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	req.Header.Set("PRIVATE-TOKEN", token)

	resp, err := hc.http.Do(req)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	if resp.StatusCode != 200 {
		log.Errorf("Failed to fetch notes. Status: %d, Body: %s", resp.StatusCode, string(rawBody))
		return nil, fmt.Errorf("failed to fetch notes, status: %d", resp.StatusCode)
	}

	var notes []model.MergeRequestNote
	if err := json.Unmarshal(rawBody, &notes); err != nil {
		log.Error(err)
		return nil, err
	}
	log.Debugf("Fetched %d notes for merge request %s", len(notes), mergeRequestIID)

	return notes, nil
}

// Create a new note on a specific merge request
func (hc *HttpClient) CreateMergeRequestNote(baseURL, token, projectID, mergeRequestIID, commentText string) (int, string, error) {
	apiURL := notesURL(baseURL, projectID, mergeRequestIID)
	log.Debugf("Posting note to URL: %s", apiURL)

	body, err := json.Marshal(map[string]string{"body": commentText})
	if err != nil {
		log.Error(err)
		return 0, "", err
	}

	req, err := http.NewRequest("POST", apiURL, strings.NewReader(string(body)))
	if err != nil {
		log.Error(err)
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PRIVATE-TOKEN", token)

	resp, err := hc.http.Do(req)
	if err != nil {
		log.Error(err)
		return 0, "", err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err)
		return resp.StatusCode, "", err
	}

	if resp.StatusCode != 201 {
		log.Errorf("Failed to post note. Status: %d, Body: %s", resp.StatusCode, string(rawBody))
	} else {
		log.Debug("Note posted successfully")
	}
	return resp.StatusCode, string(rawBody), nil
}

// Update an existing note on a specific merge request
func (hc *HttpClient) UpdateMergeRequestNote(baseURL, token, projectID, mergeRequestIID string, noteID int, commentText string) (int, string, error) {
	apiURL := fmt.Sprintf("%s/%d", notesURL(baseURL, projectID, mergeRequestIID), noteID)
	log.Debugf("Updating note at URL: %s", apiURL)

	body, err := json.Marshal(map[string]string{"body": commentText})
	if err != nil {
		log.Error(err)
		return 0, "", err
	}

	req, err := http.NewRequest("PUT", apiURL, strings.NewReader(string(body)))
	if err != nil {
		log.Error(err)
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("PRIVATE-TOKEN", token)

	resp, err := hc.http.Do(req)
	if err != nil {
		log.Error(err)
		return 0, "", err
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err)
		return resp.StatusCode, "", err
	}

	if resp.StatusCode != 200 {
		log.Errorf("Failed to update note %d. Status: %d, Body: %s", noteID, resp.StatusCode, string(rawBody))
	} else {
		log.Debug("Note updated successfully")
	}
	return resp.StatusCode, string(rawBody), nil
}
