// Package ai provides the completion gateway interface and implementations.
package ai

import "fmt"

// Prompts are versioned as code so they can be reviewed and tested.
// Analysis builders leave Temperature unset so the configured default
// (AI_TEMPERATURE) applies on the wire; translation pins a lower value
// to keep output literal.

const temperatureTranslation = 0.2

const summarySystemPrompt = `You are a helpful assistant that explains government-aid policies in plain English. Focus on key points, benefits, and important details that citizens need to know.

Guidelines:
- Use **bold** for the most important terms and amounts
- Use bullet points for lists of benefits or conditions
- Keep paragraph breaks so the summary is easy to scan
- Do not invent details that are not in the policy text`

const checklistSystemPrompt = `You are a helpful assistant that creates eligibility checklists for government policies. Extract all eligibility requirements and criteria from the policy text.

Rules:
- Return ONLY the requirements, one per line, as a numbered or bulleted list
- Include only conditions a person must meet to qualify
- Do NOT include benefits, application steps, or how-to-apply instructions
- Do NOT add explanations before or after the list`

const questionSystemPrompt = `You are GovAid AI, a helpful and knowledgeable assistant that specializes in government policies and benefits. You have access to the following policy document and can answer questions about it in a conversational, helpful manner.

Your role is to:
- Answer questions about government policies clearly and accurately
- Provide helpful, actionable information
- Be conversational and friendly
- If information is not in the provided context, say so clearly
- Always be helpful and supportive

Policy Document:
%s`

const translatorSystemPrompt = `You are a professional translator. Translate faithfully, preserving meaning, tone and any markdown formatting. Return only the translation.`

// SummaryPrompt builds the completion request for a plain-English summary.
func SummaryPrompt(policyText string) CompletionRequest {
	return CompletionRequest{
		System: summarySystemPrompt,
		User:   fmt.Sprintf("Please summarize the following government policy text in a clear and easy-to-understand way:\n\n%s", policyText),
	}
}

// ChecklistPrompt builds the completion request for an eligibility checklist.
func ChecklistPrompt(policyText string) CompletionRequest {
	return CompletionRequest{
		System: checklistSystemPrompt,
		User:   fmt.Sprintf("Please create a checklist of eligibility requirements from the following government policy text. Return only the requirements as a numbered list:\n\n%s", policyText),
	}
}

// QuestionPrompt builds the completion request for free-form Q&A. The
// entire policy text travels in the system prompt on every call; there
// is no retrieval or running conversation.
func QuestionPrompt(policyText, question string) CompletionRequest {
	return CompletionRequest{
		System: fmt.Sprintf(questionSystemPrompt, policyText),
		User:   question,
	}
}

// TranslationPrompt builds the completion request for translating text
// into the named target language.
func TranslationPrompt(text, languageName string) CompletionRequest {
	return CompletionRequest{
		System:      translatorSystemPrompt,
		User:        fmt.Sprintf("Translate the following text to %s:\n\n%s\n\nTranslation:", languageName, text),
		Temperature: temperatureTranslation,
	}
}
