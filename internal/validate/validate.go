// Package validate declares the request schemas checked before any
// external call is made. Schemas are explicit values applied at each
// route; there is no name-keyed registry to look up.
package validate

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// minPolicyTextLength applies to summarize/checklist/process inputs.
// Shorter text is rejected as too short to be meaningful; Q&A context
// only needs to be non-empty.
const minPolicyTextLength = 10

// httpURL accepts absolute http/https URLs only.
var httpURL = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required handles emptiness with its own message
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be a valid URL starting with http:// or https://")
	}
	return nil
})

// ExtractText validates the extract-text request body.
func ExtractText(req *domain.ExtractTextRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.URL,
			validation.Required.Error("URL is required"),
			httpURL,
		),
	)
	return asPipelineError("validate_extract_text", err)
}

// AnalyzeURL validates the analyze-url request body.
func AnalyzeURL(req *domain.AnalyzeURLRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.URL,
			validation.Required.Error("URL is required"),
			httpURL,
		),
	)
	return asPipelineError("validate_analyze_url", err)
}

// PolicyText validates free text for summarize/checklist/process routes.
func PolicyText(req *domain.TextRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Text,
			validation.Required.Error("text is required"),
			validation.Length(minPolicyTextLength, 0).
				Error(fmt.Sprintf("text must be at least %d characters long; shorter text is too short to be meaningful", minPolicyTextLength)),
		),
	)
	return asPipelineError("validate_text", err)
}

// Question validates the ask-question request body.
func Question(req *domain.QuestionRequest) error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.PolicyText,
			validation.Required.Error("policy text is required"),
		),
		validation.Field(&req.Question,
			validation.Required.Error("question is required"),
		),
	)
	return asPipelineError("validate_question", err)
}

// asPipelineError converts ozzo's per-field error map into one
// KindValidation error listing every violated rule, not just the first.
func asPipelineError(op string, err error) error {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validation.Errors)
	if !ok {
		return domain.ValidationError(op, []string{err.Error()})
	}

	fields := make([]string, 0, len(verrs))
	for f := range verrs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(verrs))
	for _, f := range fields {
		details = append(details, fmt.Sprintf("%s: %s", strings.ToLower(f), verrs[f].Error()))
	}

	return domain.ValidationError(op, details)
}
