package errors

import "fmt"

// Error codes
const (
	CodeAssistant      = "ASSISTANT_ERROR"
	CodeClassification = "CLASSIFICATION_ERROR"
	CodeSynthesis      = "SYNTHESIS_ERROR"
	CodeExport         = "EXPORT_ERROR"
	CodeStore          = "STORE_ERROR"
	CodeEngine         = "ENGINE_ERROR"
	CodeValidation     = "VALIDATION_ERROR"
)

type AssistantError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *AssistantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AssistantError) Unwrap() error {
	return e.Cause
}

func NewAssistantError(message, code string, context map[string]any) *AssistantError {
	return &AssistantError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

func (e *AssistantError) WithCause(cause error) *AssistantError {
	e.Cause = cause
	return e
}

type ClassificationError struct {
	*AssistantError
	Question string
}

func NewClassificationError(message, question string, cause error) *ClassificationError {
	return &ClassificationError{
		AssistantError: &AssistantError{
			Message: message,
			Code:    CodeClassification,
			Context: map[string]any{
				"question": question,
			},
			Cause: cause,
		},
		Question: question,
	}
}

type SynthesisError struct {
	*AssistantError
	Pattern string
}

func NewSynthesisError(message, pattern string, cause error) *SynthesisError {
	return &SynthesisError{
		AssistantError: &AssistantError{
			Message: message,
			Code:    CodeSynthesis,
			Context: map[string]any{
				"pattern": pattern,
			},
			Cause: cause,
		},
		Pattern: pattern,
	}
}

type ExportError struct {
	*AssistantError
	Format string
	Path   string
}

func NewExportError(message, format, path string, cause error) *ExportError {
	return &ExportError{
		AssistantError: &AssistantError{
			Message: message,
			Code:    CodeExport,
			Context: map[string]any{
				"format": format,
				"path":   path,
			},
			Cause: cause,
		},
		Format: format,
		Path:   path,
	}
}

type StoreError struct {
	*AssistantError
	Operation string
	Key       string
}

func NewStoreError(message, operation, key string, cause error) *StoreError {
	return &StoreError{
		AssistantError: &AssistantError{
			Message: message,
			Code:    CodeStore,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type EngineError struct {
	*AssistantError
	Provider string
}

func NewEngineError(message, provider string, cause error) *EngineError {
	return &EngineError{
		AssistantError: &AssistantError{
			Message: message,
			Code:    CodeEngine,
			Context: map[string]any{
				"provider": provider,
			},
			Cause: cause,
		},
		Provider: provider,
	}
}

type ValidationError struct {
	*AssistantError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		AssistantError: &AssistantError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}
