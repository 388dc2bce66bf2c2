// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/extract"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/language"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/service"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/validate"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PolicyHandler serves the text- and URL-based pipeline routes.
type PolicyHandler struct {
	fetcher    *extract.Fetcher
	analyzer   *service.Analyzer
	language   *language.Service
	translator *ErrorTranslator
	logger     *zap.Logger
}

// NewPolicyHandler creates a PolicyHandler.
func NewPolicyHandler(
	fetcher *extract.Fetcher,
	analyzer *service.Analyzer,
	lang *language.Service,
	translator *ErrorTranslator,
	logger *zap.Logger,
) *PolicyHandler {
	return &PolicyHandler{
		fetcher:    fetcher,
		analyzer:   analyzer,
		language:   lang,
		translator: translator,
		logger:     logger.Named("policy_handler"),
	}
}

// respondData wraps a payload in the success envelope the frontend expects.
func respondData(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// targetLanguage resolves the optional target language from body or
// query, defaulting to English (no translation).
func targetLanguage(bodyLang string, c *gin.Context) string {
	if bodyLang != "" {
		return bodyLang
	}
	if q := c.Query("language"); q != "" {
		return q
	}
	return "en"
}

// ExtractText handles POST /api/extract-text.
func (h *PolicyHandler) ExtractText(c *gin.Context) {
	var req domain.ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.ExtractText(&req); err != nil {
		h.translator.Respond(c, err)
		return
	}

	h.logger.Info("extracting text", zap.String("url", req.URL))

	doc, err := h.extractFromURL(c, req.URL)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	respondData(c, gin.H{
		"text":  doc.RawText,
		"title": doc.Title,
		"url":   req.URL,
	})
}

// Summarize handles POST /api/summarize.
func (h *PolicyHandler) Summarize(c *gin.Context) {
	var req domain.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.PolicyText(&req); err != nil {
		h.translator.Respond(c, err)
		return
	}

	lang := targetLanguage(req.Language, c)

	summary, err := h.analyzer.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	translated := false
	if lang != "en" {
		summary, err = h.language.Translate(c.Request.Context(), summary, lang)
		if err != nil {
			h.translator.Respond(c, err)
			return
		}
		translated = true
	}

	respondData(c, gin.H{
		"summary":        summary,
		"originalLength": len(req.Text),
		"translated":     translated,
		"targetLanguage": lang,
	})
}

// Checklist handles POST /api/checklist.
func (h *PolicyHandler) Checklist(c *gin.Context) {
	var req domain.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.PolicyText(&req); err != nil {
		h.translator.Respond(c, err)
		return
	}

	lang := targetLanguage(req.Language, c)

	items, err := h.analyzer.Checklist(c.Request.Context(), req.Text)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	count := len(items)
	translated := false
	if lang != "en" {
		items, err = h.language.TranslateAll(c.Request.Context(), items, lang)
		if err != nil {
			h.translator.Respond(c, err)
			return
		}
		translated = true
	}

	respondData(c, gin.H{
		"checklist":      items,
		"count":          count,
		"translated":     translated,
		"targetLanguage": lang,
	})
}

// AnalyzeURL handles POST /api/analyze-url: extract, then summary and
// checklist concurrently.
func (h *PolicyHandler) AnalyzeURL(c *gin.Context) {
	var req domain.AnalyzeURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.AnalyzeURL(&req); err != nil {
		h.translator.Respond(c, err)
		return
	}

	h.logger.Info("analyzing url", zap.String("url", req.URL))

	doc, err := h.extractFromURL(c, req.URL)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), doc.RawText)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	respondData(c, gin.H{
		"url":       req.URL,
		"title":     doc.Title,
		"summary":   result.Summary,
		"checklist": result.Checklist,
		"rawText":   doc.RawText,
		"metadata":  result.Metadata,
	})
}

// AskQuestion handles POST /api/ask-question.
func (h *PolicyHandler) AskQuestion(c *gin.Context) {
	var req domain.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Question(&req); err != nil {
		h.translator.Respond(c, err)
		return
	}

	lang := targetLanguage(req.Language, c)

	answer, err := h.analyzer.AnswerQuestion(c.Request.Context(), req.PolicyText, req.Question)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	exchange := domain.QAExchange{
		Question:       req.Question,
		Answer:         answer,
		TargetLanguage: lang,
	}
	if lang != "en" {
		translated, err := h.language.Translate(c.Request.Context(), answer, lang)
		if err != nil {
			h.translator.Respond(c, err)
			return
		}
		exchange.Answer = translated
		exchange.Translated = true
	}

	respondData(c, gin.H{
		"question":       exchange.Question,
		"answer":         exchange.Answer,
		"translated":     exchange.Translated,
		"targetLanguage": exchange.TargetLanguage,
	})
}

// ProcessDocument handles POST /api/process-document: the analysis
// pipeline over raw text already in the client's hands.
func (h *PolicyHandler) ProcessDocument(c *gin.Context) {
	var req domain.TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.PolicyText(&req); err != nil {
		h.translator.Respond(c, err)
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), req.Text)
	if err != nil {
		h.translator.Respond(c, err)
		return
	}

	respondData(c, gin.H{
		"summary":   result.Summary,
		"checklist": result.Checklist,
		"metadata": gin.H{
			"originalLength": result.Metadata.TextLength,
			"summaryLength":  result.Metadata.SummaryLength,
			"checklistCount": result.Metadata.ChecklistCount,
			"method":         "direct_api",
		},
	})
}

// extractFromURL fetches a page and reduces it to a PolicyDocument.
func (h *PolicyHandler) extractFromURL(c *gin.Context, url string) (*domain.PolicyDocument, error) {
	html, err := h.fetcher.FetchURL(c.Request.Context(), url)
	if err != nil {
		return nil, err
	}

	extracted, err := extract.HTML(html)
	if err != nil {
		return nil, err
	}

	return &domain.PolicyDocument{
		SourceKind: domain.SourceURL,
		RawText:    extracted.Text,
		Title:      extracted.Title,
	}, nil
}
