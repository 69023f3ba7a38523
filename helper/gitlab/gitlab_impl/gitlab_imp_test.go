package gitlab_impl

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMergeRequestNotes(t *testing.T) {
	var gotMethod, gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotToken = r.Header.Get("PRIVATE-TOKEN")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id": 10, "body": "first note"}, {"id": 11, "body": "## SonarCloud Analysis Results"}]`)
	}))
	defer srv.Close()

	client := New(srv.Client())
	notes, err := client.FetchMergeRequestNotes(srv.URL+"/", "secret", "123", "7")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/v4/projects/123/merge_requests/7/notes", gotPath)
	assert.Equal(t, "secret", gotToken)
	require.Len(t, notes, 2)
	assert.Equal(t, 11, notes[1].ID)
	assert.Equal(t, "## SonarCloud Analysis Results", notes[1].Body)
}

func TestFetchMergeRequestNotesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"401 Unauthorized"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.Client())
	_, err := client.FetchMergeRequestNotes(srv.URL+"/", "bad-token", "123", "7")
	assert.EqualError(t, err, "failed to fetch notes, status: 401")
}

func TestCreateMergeRequestNote(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotPayload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 55}`)
	}))
	defer srv.Close()

	client := New(srv.Client())
	status, body, err := client.CreateMergeRequestNote(srv.URL+"/", "secret", "123", "7", "## SonarCloud Analysis Results\nall good")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v4/projects/123/merge_requests/7/notes", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "## SonarCloud Analysis Results\nall good", gotPayload["body"])
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, `{"id": 55}`, body)
}

func TestCreateMergeRequestNotePassesFailureThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"403 Forbidden"}`)
	}))
	defer srv.Close()

	client := New(srv.Client())
	status, body, err := client.CreateMergeRequestNote(srv.URL+"/", "secret", "123", "7", "body")
	require.NoError(t, err)

	// Non-2xx is the caller's problem to surface, not an error here.
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, `{"message":"403 Forbidden"}`, body)
}

func TestUpdateMergeRequestNote(t *testing.T) {
	var gotMethod, gotPath string
	var gotPayload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		fmt.Fprint(w, `{"id": 42}`)
	}))
	defer srv.Close()

	client := New(srv.Client())
	status, body, err := client.UpdateMergeRequestNote(srv.URL+"/", "secret", "123", "7", 42, "refreshed body")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v4/projects/123/merge_requests/7/notes/42", gotPath)
	assert.Equal(t, "refreshed body", gotPayload["body"])
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, `{"id": 42}`, body)
}
