// Package service contains the business logic layer.
package service

import (
	"context"
	"time"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/ai"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/checklist"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/language"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Analyzer orchestrates the document-to-insight pipeline. It composes
// the completion gateway, the checklist parser and the language service;
// every dependency arrives through the constructor.
type Analyzer struct {
	gateway  ai.Gateway
	parser   *checklist.Parser
	language *language.Service
	logger   *zap.Logger
}

// NewAnalyzer creates an Analyzer with all dependencies.
func NewAnalyzer(gateway ai.Gateway, parser *checklist.Parser, lang *language.Service, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		gateway:  gateway,
		parser:   parser,
		language: lang,
		logger:   logger.Named("analyzer"),
	}
}

// Summarize produces a plain-English summary of the policy text with
// one completion call.
func (a *Analyzer) Summarize(ctx context.Context, text string) (string, error) {
	start := time.Now()
	a.logger.Debug("generating summary", zap.Int("text_len", len(text)))

	summary, err := a.gateway.Complete(ctx, ai.SummaryPrompt(text))
	if err != nil {
		return "", err
	}

	a.logger.Info("summary generated",
		zap.Int("summary_len", len(summary)),
		zap.Duration("duration", time.Since(start)),
	)
	return summary, nil
}

// Checklist produces the ordered eligibility requirements with one
// completion call, parsed down to clean item strings. An empty list is
// a valid outcome when the model emitted no list-shaped lines.
func (a *Analyzer) Checklist(ctx context.Context, text string) ([]string, error) {
	start := time.Now()
	a.logger.Debug("generating checklist", zap.Int("text_len", len(text)))

	raw, err := a.gateway.Complete(ctx, ai.ChecklistPrompt(text))
	if err != nil {
		return nil, err
	}

	items := a.parser.Parse(raw)

	a.logger.Info("checklist generated",
		zap.Int("item_count", len(items)),
		zap.Duration("duration", time.Since(start)),
	)
	return items, nil
}

// Analyze runs Summarize and Checklist concurrently and joins both.
// The two calls are independent, so they share an errgroup: if either
// fails the whole operation fails and no partial result escapes.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	start := time.Now()

	var summary string
	var items []string

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = a.Summarize(gCtx, text)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = a.Checklist(gCtx, text)
		return err
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("analysis failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	a.logger.Info("analysis completed",
		zap.Int("summary_len", len(summary)),
		zap.Int("checklist_count", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	return domain.NewAnalysisResult(text, summary, items), nil
}

// AnswerQuestion answers a free-form question with the entire policy
// text embedded as context. Every question resends the full document;
// there is no running conversation.
func (a *Analyzer) AnswerQuestion(ctx context.Context, policyText, question string) (string, error) {
	start := time.Now()
	a.logger.Debug("answering question",
		zap.Int("policy_len", len(policyText)),
		zap.Int("question_len", len(question)),
	)

	answer, err := a.gateway.Complete(ctx, ai.QuestionPrompt(policyText, question))
	if err != nil {
		return "", err
	}

	a.logger.Info("question answered",
		zap.Int("answer_len", len(answer)),
		zap.Duration("duration", time.Since(start)),
	)
	return answer, nil
}

// ProcessDocument is the upload pipeline: detect the source language,
// analyze concurrently, then translate the outputs sequentially when the
// target language is not English. Translation depends on the joined
// analysis, so it cannot overlap with it.
func (a *Analyzer) ProcessDocument(ctx context.Context, text, targetLang string) (*domain.DocumentInsights, error) {
	if targetLang == "" {
		targetLang = "en"
	}

	detected := a.language.Detect(text)

	result, err := a.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	insights := &domain.DocumentInsights{
		DetectedLanguage: detected,
		Summary:          result.Summary,
		Checklist:        result.Checklist,
		RawText:          text,
		Metadata:         result.Metadata,
		TargetLanguage:   targetLang,
	}

	if targetLang != "en" {
		translatedSummary, err := a.language.Translate(ctx, result.Summary, targetLang)
		if err != nil {
			return nil, err
		}
		translatedItems, err := a.language.TranslateAll(ctx, result.Checklist, targetLang)
		if err != nil {
			return nil, err
		}
		insights.Summary = translatedSummary
		insights.Checklist = translatedItems
		insights.Translated = true
	}

	return insights, nil
}
