// Package domain contains the core domain models and types.
// These models represent the business logic contracts and are independent
// of any infrastructure concerns.
package domain

// SourceKind identifies where a policy document came from.
type SourceKind string

const (
	// SourceURL means the document was scraped from a web page.
	SourceURL SourceKind = "url"

	// SourceFile means the document was extracted from an uploaded file.
	SourceFile SourceKind = "file"
)

// PolicyDocument is the extracted plain text of a government policy,
// regardless of origin. It is created once per request and never mutated.
type PolicyDocument struct {
	// SourceKind records how the document was obtained.
	SourceKind SourceKind

	// RawText is the cleaned plain text of the policy.
	RawText string

	// Title is the document title (page title, first heading, or a placeholder).
	Title string
}

// AnalysisMetadata describes the sizes of an analysis run.
type AnalysisMetadata struct {
	// TextLength is the length of the input policy text in bytes.
	TextLength int `json:"textLength"`

	// SummaryLength is the length of the generated summary in bytes.
	SummaryLength int `json:"summaryLength"`

	// ChecklistCount is the number of parsed checklist items.
	ChecklistCount int `json:"checklistCount"`
}

// AnalysisResult is the combined output of the summary and checklist
// pipeline. Invariants: ChecklistCount == len(Checklist) and
// SummaryLength == len(Summary).
type AnalysisResult struct {
	// Summary is the plain-English policy summary.
	Summary string `json:"summary"`

	// Checklist is the ordered list of eligibility requirements.
	Checklist []string `json:"checklist"`

	// Metadata carries derived size information.
	Metadata AnalysisMetadata `json:"metadata"`
}

// NewAnalysisResult builds an AnalysisResult with consistent metadata.
func NewAnalysisResult(text, summary string, checklist []string) *AnalysisResult {
	return &AnalysisResult{
		Summary:   summary,
		Checklist: checklist,
		Metadata: AnalysisMetadata{
			TextLength:     len(text),
			SummaryLength:  len(summary),
			ChecklistCount: len(checklist),
		},
	}
}

// QAExchange is one question/answer pair about a policy. There is no
// conversation state: the full policy text is resent with every question.
type QAExchange struct {
	// Question is the user's question.
	Question string `json:"question"`

	// Answer is the model's answer.
	Answer string `json:"answer"`

	// Translated reports whether the answer was translated.
	Translated bool `json:"translated"`

	// TargetLanguage is the ISO 639-1 code the answer is in.
	TargetLanguage string `json:"targetLanguage"`
}

// DocumentInsights is the output of the full upload-document pipeline:
// extraction, language detection, analysis and optional translation.
type DocumentInsights struct {
	// DetectedLanguage is the ISO 639-1 code detected from the raw text.
	DetectedLanguage string `json:"detectedLanguage"`

	// Summary is the (possibly translated) policy summary.
	Summary string `json:"summary"`

	// Checklist is the (possibly translated) eligibility checklist.
	Checklist []string `json:"checklist"`

	// RawText is the extracted policy text before analysis.
	RawText string `json:"rawText"`

	// Metadata describes the untranslated analysis output.
	Metadata AnalysisMetadata `json:"metadata"`

	// Translated reports whether the outputs were translated.
	Translated bool `json:"translated"`

	// TargetLanguage is the language the outputs were translated to.
	TargetLanguage string `json:"targetLanguage"`
}

// Request bodies for the HTTP surface. Validation rules live in
// internal/validate; gin only unmarshals these.

// ExtractTextRequest asks for text extraction from a URL.
type ExtractTextRequest struct {
	URL string `json:"url"`
}

// AnalyzeURLRequest asks for the full extract+summarize+checklist pipeline.
type AnalyzeURLRequest struct {
	URL string `json:"url"`
}

// TextRequest carries free policy text for summarize/checklist/process
// endpoints, with an optional target language for translation.
type TextRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// QuestionRequest asks a question about a policy text.
type QuestionRequest struct {
	PolicyText string `json:"policyText"`
	Question   string `json:"question"`
	Language   string `json:"language"`
}
