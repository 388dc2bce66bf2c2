// Package handler contains HTTP handlers for the API.
package handler

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/extract"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadHandler serves the multipart file routes.
type UploadHandler struct {
	analyzer   *service.Analyzer
	translator *ErrorTranslator
	logger     *zap.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(analyzer *service.Analyzer, translator *ErrorTranslator, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		analyzer:   analyzer,
		translator: translator,
		logger:     logger.Named("upload_handler"),
	}
}

// UploadFile handles POST /api/upload-file: extract text from an
// uploaded PDF or Word document and return it.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "Please upload a file")
		return
	}

	h.logger.Info("processing uploaded file",
		zap.String("filename", file.Filename),
		zap.Int64("size", file.Size),
	)

	text, err := h.extractUpload(c, file)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	respondData(c, gin.H{
		"text":     text,
		"filename": file.Filename,
	})
}

// UploadDocument handles POST /api/upload-document: extract, detect
// language, analyze, and translate the outputs. The optional "language"
// form field picks the target; it defaults to Spanish, the most
// requested language of the frontend's users.
func (h *UploadHandler) UploadDocument(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "Please upload a file")
		return
	}

	targetLang := c.PostForm("language")
	if targetLang == "" {
		targetLang = "es"
	}

	h.logger.Info("processing uploaded document",
		zap.String("filename", file.Filename),
		zap.String("target_language", targetLang),
	)

	text, err := h.extractUpload(c, file)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	insights, err := h.analyzer.ProcessDocument(c.Request.Context(), text, targetLang)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	respondData(c, gin.H{
		"detectedLanguage": insights.DetectedLanguage,
		"summary":          insights.Summary,
		"checklist":        insights.Checklist,
		"rawText":          insights.RawText,
		"metadata": gin.H{
			"fileName":       file.Filename,
			"fileType":       filepath.Ext(file.Filename),
			"textLength":     insights.Metadata.TextLength,
			"summaryLength":  insights.Metadata.SummaryLength,
			"checklistCount": insights.Metadata.ChecklistCount,
			"translated":     insights.Translated,
			"targetLanguage": insights.TargetLanguage,
		},
	})
}

// extractUpload spills the multipart file to a temporary path assigned
// by the upload layer and runs the file extractor over it.
func (h *UploadHandler) extractUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	tmpPath := filepath.Join(os.TempDir(), uuid.NewString())
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		return "", err
	}
	defer os.Remove(tmpPath)

	return extract.File(tmpPath, file.Filename)
}
