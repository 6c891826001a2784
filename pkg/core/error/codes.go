// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     error
// Description: Error codes and severities used across trinom
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// CodeInvalidInput marks text that could not be read as a number or a menu choice.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeDegenerate marks inputs for which a formula is undefined: a=0 passed
	// to canonical-form code, fewer than two sample points, an empty interval.
	CodeDegenerate Code = "DEGENERATE"

	// CodeValueOutOfRange marks a well-formed number beyond what trinom can
	// handle, such as a point count too large to be allocated.
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Files and rendering
	CodeExportFailed Code = "EXPORT_FAILED"
	CodeRenderFailed Code = "RENDER_FAILED"
	CodeImportFailed Code = "IMPORT_FAILED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeValueOutOfRange:
		return "input"
	case CodeDegenerate:
		return "computation"
	case CodeExportFailed, CodeRenderFailed, CodeImportFailed:
		return "output"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a user mistake the menu recovers from
	SeverityLow Severity = iota
	SeverityMedium
	// SeverityHigh aborts the current command
	SeverityHigh
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidInput, CodeDegenerate, CodeValueOutOfRange, CodeNotFound:
		return SeverityLow
	case CodeExportFailed, CodeRenderFailed, CodeImportFailed:
		return SeverityMedium
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
