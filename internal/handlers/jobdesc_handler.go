package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"careerforge/interview-lab/internal/models"
	"careerforge/interview-lab/internal/services"
)

type JobDescriptionHandler struct {
	storageService services.StorageService
	pdfParser      services.PDFParserService
	maxFileSize    int64
}

func NewJobDescriptionHandler(
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *JobDescriptionHandler {
	return &JobDescriptionHandler{
		storageService: storageService,
		pdfParser:      pdfParser,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /interview/job-description. The PDF is parsed and
// discarded; only the extracted text goes back to the caller.
func (h *JobDescriptionHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "multipart field 'file' is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save file: %v", err),
		})
	}
	defer h.storageService.DeleteFile(filename)

	content, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to parse PDF: %v", err),
		})
	}

	return c.JSON(models.JobDescriptionResponse{
		JobDescription: content.Text,
		PageCount:      content.PageCount,
	})
}
