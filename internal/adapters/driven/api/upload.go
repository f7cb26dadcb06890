package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
	"github.com/parassrivastav/traqcheck-cli/internal/core/ports/driven"
)

// UploadResume submits a resume as multipart form data under the field
// name "resume", reporting transfer progress through fn.
func (c *Client) UploadResume(ctx context.Context, path string, fn driven.ProgressFunc) (*driven.UploadReceipt, error) {
	const op = "upload resume"

	body, contentType, err := encodeFileForm(map[string]string{"resume": path})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var dto uploadReceiptDTO
	if err := c.postMultipart(ctx, op, "/candidates/upload", body, contentType, fn, &dto); err != nil {
		return nil, err
	}
	return &driven.UploadReceipt{
		CandidateID:   dto.ID,
		Confidence:    dto.Confidence,
		StageMessages: dto.stageMessages(),
	}, nil
}

// SubmitDocuments uploads PAN and Aadhaar files as multipart form data
// under the field names "pan" and "aadhaar".
func (c *Client) SubmitDocuments(ctx context.Context, candidateID, panPath, aadhaarPath string) error {
	const op = "submit documents"

	body, contentType, err := encodeFileForm(map[string]string{
		"pan":     panPath,
		"aadhaar": aadhaarPath,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	path := "/candidates/" + url.PathEscape(candidateID) + "/submit-documents"
	return c.postMultipart(ctx, op, path, body, contentType, nil, nil)
}

// postMultipart sends an encoded multipart body, counting bytes through a
// progress reader when fn is non-nil.
func (c *Client) postMultipart(ctx context.Context, op, path string, body *bytes.Buffer, contentType string, fn driven.ProgressFunc, out any) error {
	var reader io.Reader = body
	total := int64(body.Len())
	if fn != nil {
		reader = &progressReader{r: body, total: total, fn: fn}
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = total

	return c.do(op, req, out)
}

// encodeFileForm builds a multipart body with one file part per field.
// Fields are written in a stable order so tests can assert the payload.
func encodeFileForm(files map[string]string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	// Deterministic field order: resume, pan, aadhaar.
	for _, field := range []string{"resume", "pan", "aadhaar"} {
		path, ok := files[field]
		if !ok {
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", domain.ErrNoFile, path)
		}
		part, err := w.CreateFormFile(field, filepath.Base(path))
		if err != nil {
			f.Close()
			return nil, "", fmt.Errorf("create form file %s: %w", field, err)
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
		f.Close()
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalise form: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

// progressReader reports cumulative transfer progress as a rounded whole
// percentage, mirroring round(bytes * 100 / total).
type progressReader struct {
	r     io.Reader
	read  int64
	total int64
	fn    driven.ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		if p.total > 0 {
			p.fn(int(math.Round(float64(p.read) * 100 / float64(p.total))))
		}
	}
	return n, err
}
