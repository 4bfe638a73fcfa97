package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prepai/interview-api/internal/models"
	"prepai/interview-api/internal/services"
)

type UploadHandler struct {
	storageService   services.StorageService
	pdfParser        services.PDFParserService
	profileExtractor services.ProfileExtractor
	maxFileSize      int64
}

func NewUploadHandler(
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	profileExtractor services.ProfileExtractor,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		storageService:   storageService,
		pdfParser:        pdfParser,
		profileExtractor: profileExtractor,
		maxFileSize:      maxFileSize,
	}
}

// HandleUploadResume handles POST /upload-resume: save the PDF, extract its
// text, and turn it into a structured profile.
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing resume file",
		})
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".pdf" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF resumes allowed",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	resumeText, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		h.deleteStoredFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to read PDF: %v", err),
		})
	}

	if len(resumeText) < services.MinResumeChars {
		h.deleteStoredFile(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not extract meaningful text from PDF",
		})
	}

	profile, err := h.profileExtractor.Extract(c.Context(), resumeText)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.UploadResumeResponse{
		Status:  "success",
		Profile: profile,
	})
}

// deleteStoredFile removes a resume that will never be processed further.
func (h *UploadHandler) deleteStoredFile(filename string) {
	if err := h.storageService.DeleteFile(filename); err != nil {
		log.Printf("⚠️  Failed to delete stored resume %s: %v\n", filename, err)
	}
}
