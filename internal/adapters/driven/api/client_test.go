package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	return client, srv
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := NewClient("localhost:5000")
	assert.Error(t, err)

	_, err = NewClient("")
	assert.Error(t, err)
}

func TestListCandidates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/candidates", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{
				"id": "c-1",
				"name": "Asha Rao",
				"email": "asha@example.com",
				"company": "Initech",
				"designation": "Engineer",
				"confidence": 0.91,
				"extraction_status": "Extracted",
				"skills": ["go", "sql"],
				"company_history": [
					{"company": "Initech", "duration": "2022 - present", "is_current": true}
				]
			}
		]`)
	}))

	list, err := client.ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)

	c := list[0]
	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, "Asha Rao", c.Name)
	assert.Equal(t, domain.ExtractionSuccess, c.ExtractionStatus)
	assert.InDelta(t, 0.91, c.Confidence, 1e-9)
	assert.Equal(t, []string{"go", "sql"}, c.Skills)
	require.Len(t, c.CompanyHistory, 1)
	assert.True(t, c.CompanyHistory[0].IsCurrent)
}

func TestServerErrorCarriesEnvelopeMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error": "Candidate not found"}`)
	}))

	_, err := client.GetCandidate(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Candidate not found", apiErr.ServerMessage())
	assert.False(t, apiErr.IsNetwork())
	// A 404 reads as the domain's not-found sentinel.
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServerErrorNon404IsNotNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.GetCandidate(context.Background(), "c-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestServerErrorWithoutEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "boom")
	}))

	err := client.DeleteCandidate(context.Background(), "c-1")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Empty(t, apiErr.ServerMessage())
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := NewClient(url)
	require.NoError(t, err)

	_, err = client.ListCandidates(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsNetwork())
	assert.Empty(t, apiErr.ServerMessage())
}

func TestDeleteCandidate(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.DeleteCandidate(context.Background(), "c-1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/candidates/c-1", gotPath)
}

func TestUpdateTelegramSendsJSONBody(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.UpdateTelegram(context.Background(), "c-1", "asha_r"))
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"telegram_username": "asha_r"}`, string(gotBody))
}

func TestRequestDocuments(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/c-1/request-documents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message": "Document request sent via Telegram"}`)
	}))

	msg, err := client.RequestDocuments(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Document request sent via Telegram", msg)
}

func TestListDocuments(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/c-1/documents", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id": "d-1", "type": "PAN", "status": "", "file_url": "/uploads/pan.pdf"},
			{"id": "d-2", "type": "Aadhaar", "status": "requested", "file_url": ""}
		]`)
	}))

	docs, err := client.ListDocuments(context.Background(), "c-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, domain.DocumentPAN, docs[0].Type)
	assert.Equal(t, domain.DocumentCollected, docs[0].Status)
	assert.Equal(t, "c-1", docs[0].CandidateID)
	assert.Equal(t, domain.DocumentAadhaar, docs[1].Type)
	assert.Equal(t, domain.DocumentRequested, docs[1].Status)
}

func TestResolveFileURL(t *testing.T) {
	client, srv := newTestClient(t, http.NotFoundHandler())

	assert.Equal(t, srv.URL+"/uploads/pan.pdf", client.ResolveFileURL("/uploads/pan.pdf"))
	assert.Equal(t, "https://cdn.example.com/x.pdf", client.ResolveFileURL("https://cdn.example.com/x.pdf"))
	assert.Equal(t, "", client.ResolveFileURL(""))
}

func TestUploadResume(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("resume bytes"), 0600))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("resume")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cv.pdf", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "resume bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "c-9", "confidence": 0.87, "messages": ["Resume uploaded successfully", "Extraction successful"]}`)
	}))

	var reported []int
	receipt, err := client.UploadResume(context.Background(), resume, func(p int) {
		reported = append(reported, p)
	})
	require.NoError(t, err)
	assert.Equal(t, "c-9", receipt.CandidateID)
	assert.InDelta(t, 0.87, receipt.Confidence, 1e-9)
	assert.Len(t, receipt.StageMessages, 2)

	require.NotEmpty(t, reported)
	assert.Equal(t, 100, reported[len(reported)-1])
}

func TestUploadResumeSingleMessageResponse(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("x"), 0600))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "c-9", "message": "Resume uploaded successfully"}`)
	}))

	receipt, err := client.UploadResume(context.Background(), resume, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Resume uploaded successfully"}, receipt.StageMessages)
}

func TestSubmitDocumentsSendsBothFields(t *testing.T) {
	dir := t.TempDir()
	pan := filepath.Join(dir, "pan.pdf")
	aadhaar := filepath.Join(dir, "aadhaar.pdf")
	require.NoError(t, os.WriteFile(pan, []byte("pan"), 0600))
	require.NoError(t, os.WriteFile(aadhaar, []byte("aadhaar"), 0600))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/c-1/submit-documents", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		for _, field := range []string{"pan", "aadhaar"} {
			_, header, err := r.FormFile(field)
			require.NoError(t, err, "missing field %s", field)
			assert.Equal(t, field+".pdf", header.Filename)
		}
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.SubmitDocuments(context.Background(), "c-1", pan, aadhaar))
}

func TestUploadResumeMissingFile(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())

	_, err := client.UploadResume(context.Background(), "/nonexistent/cv.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrNoFile)
}
