package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"prepai/interview-api/internal/models"
	"prepai/interview-api/internal/services"
)

type stubStorage struct {
	saveErr   error
	saves     int
	deleted   []string
	deleteErr error
}

func (s *stubStorage) SaveFile(file *multipart.FileHeader) (string, string, error) {
	if s.saveErr != nil {
		return "", "", s.saveErr
	}
	s.saves++
	return "resume_stub.pdf", "/tmp/resume_stub.pdf", nil
}

func (s *stubStorage) GetFilePath(filename string) string {
	return filename
}

func (s *stubStorage) DeleteFile(filename string) error {
	s.deleted = append(s.deleted, filename)
	return s.deleteErr
}

func (s *stubStorage) EnsureUploadDir() error {
	return nil
}

type stubPDFParser struct {
	text string
	err  error
}

func (p *stubPDFParser) ExtractText(filePath string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.text, nil
}

type stubProfileExtractor struct {
	profile models.Profile
	err     error
}

func (e *stubProfileExtractor) Extract(ctx context.Context, resumeText string) (models.Profile, error) {
	if e.err != nil {
		return models.Profile{}, e.err
	}
	return e.profile, nil
}

func newUploadApp(storage services.StorageService, parser services.PDFParserService, extractor services.ProfileExtractor) *fiber.App {
	app := fiber.New()
	h := NewUploadHandler(storage, parser, extractor, 10485760)
	app.Post("/upload-resume", h.HandleUploadResume)
	return app
}

func postResume(t *testing.T, app *fiber.App, filename string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 stub content")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func longResumeText() string {
	return strings.Repeat("Senior Go engineer with distributed systems experience. ", 5)
}

func TestHandleUploadResumeSuccess(t *testing.T) {
	storage := &stubStorage{}
	extractor := &stubProfileExtractor{profile: models.Profile{Name: "Ada", Skills: []string{"Go"}}}
	app := newUploadApp(storage, &stubPDFParser{text: longResumeText()}, extractor)

	resp := postResume(t, app, "resume.pdf")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body models.UploadResumeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Status != "success" || body.Profile.Name != "Ada" {
		t.Fatalf("unexpected response: %+v", body)
	}
	if len(storage.deleted) != 0 {
		t.Fatalf("successful upload deleted files: %v", storage.deleted)
	}
}

func TestHandleUploadResumeRejectsNonPDF(t *testing.T) {
	storage := &stubStorage{}
	app := newUploadApp(storage, &stubPDFParser{}, &stubProfileExtractor{})

	resp := postResume(t, app, "resume.txt")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if storage.saves != 0 {
		t.Fatalf("non-PDF upload was saved")
	}
}

func TestHandleUploadResumeMissingFile(t *testing.T) {
	app := newUploadApp(&stubStorage{}, &stubPDFParser{}, &stubProfileExtractor{})

	req := httptest.NewRequest(http.MethodPost, "/upload-resume", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleUploadResumeDeletesFileOnUnreadablePDF(t *testing.T) {
	storage := &stubStorage{}
	app := newUploadApp(storage, &stubPDFParser{err: errors.New("broken xref table")}, &stubProfileExtractor{})

	resp := postResume(t, app, "resume.pdf")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "resume_stub.pdf" {
		t.Fatalf("stored file not cleaned up: %v", storage.deleted)
	}
}

func TestHandleUploadResumeDeletesFileOnShortText(t *testing.T) {
	storage := &stubStorage{}
	app := newUploadApp(storage, &stubPDFParser{text: "too short"}, &stubProfileExtractor{})

	resp := postResume(t, app, "resume.pdf")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "resume_stub.pdf" {
		t.Fatalf("stored file not cleaned up: %v", storage.deleted)
	}
}

func TestHandleUploadResumeCleanupFailureStillRejects(t *testing.T) {
	storage := &stubStorage{deleteErr: errors.New("file already gone")}
	app := newUploadApp(storage, &stubPDFParser{text: "too short"}, &stubProfileExtractor{})

	resp := postResume(t, app, "resume.pdf")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleUploadResumeExtractorUpstreamFailure(t *testing.T) {
	extractor := &stubProfileExtractor{err: services.ErrUpstream}
	app := newUploadApp(&stubStorage{}, &stubPDFParser{text: longResumeText()}, extractor)

	resp := postResume(t, app, "resume.pdf")
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
}
