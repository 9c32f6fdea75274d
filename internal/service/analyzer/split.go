package analyzer

import (
	"strings"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/util"
)

var conjunctionSeparators = []string{" and ", " also ", " additionally ", " furthermore ", " moreover ", " plus "}

var enumerationSeparators = []string{" first ", " second ", " third ", " next ", " then ", " finally "}

var clauseSeparators = []string{";", ".", ":", "--", "—"}

var connectorWords = []string{"and", "also", "but", "or", "so", "then", "next"}

// SplitParts decomposes a compound question into its component questions.
// Question marks split first, then conjunctions, then enumeration markers,
// then clause punctuation on long fragments. Fragments shorter than the
// minimum or without letters are dropped, and the part count is capped. If
// nothing survives, the original input is returned as a single part.
func SplitParts(input string) []string {
	trimmed := strings.TrimSpace(input)
	parts := []string{trimmed}

	parts = splitOnQuestionMarks(parts)

	for _, sep := range conjunctionSeparators {
		parts = splitFold(parts, sep)
	}
	for _, sep := range enumerationSeparators {
		parts = splitFold(parts, sep)
	}

	for _, sep := range clauseSeparators {
		var next []string
		for _, part := range parts {
			if strings.Contains(part, sep) && len(part) > constants.Processing.LongClauseLength {
				for _, piece := range strings.Split(part, sep) {
					if p := strings.TrimSpace(piece); p != "" {
						next = append(next, p)
					}
				}
			} else {
				next = append(next, part)
			}
		}
		parts = next
	}

	var cleaned []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > constants.Processing.MinFragmentLength &&
			!util.Contains(connectorWords, strings.ToLower(part)) &&
			util.HasLetter(part) {
			cleaned = append(cleaned, part)
		}
	}

	if len(cleaned) == 0 {
		return []string{trimmed}
	}
	if len(cleaned) > constants.Processing.MaxQuestionParts {
		cleaned = cleaned[:constants.Processing.MaxQuestionParts]
	}
	return cleaned
}

// splitOnQuestionMarks splits on '?' and reattaches the mark to every part
// except the trailing remainder
func splitOnQuestionMarks(parts []string) []string {
	var next []string
	for _, part := range parts {
		if !strings.Contains(part, "?") {
			next = append(next, part)
			continue
		}
		pieces := strings.Split(part, "?")
		for i, piece := range pieces {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if i < len(pieces)-1 {
				piece += "?"
			}
			next = append(next, piece)
		}
	}
	return next
}

// splitFold splits each part on a separator, case-insensitively
func splitFold(parts []string, sep string) []string {
	var next []string
	for _, part := range parts {
		lowered := strings.ToLower(part)
		if !strings.Contains(lowered, sep) {
			next = append(next, part)
			continue
		}
		rest := part
		for {
			idx := strings.Index(strings.ToLower(rest), sep)
			if idx < 0 {
				break
			}
			if head := strings.TrimSpace(rest[:idx]); head != "" {
				next = append(next, head)
			}
			rest = rest[idx+len(sep):]
		}
		if tail := strings.TrimSpace(rest); tail != "" {
			next = append(next, tail)
		}
	}
	return next
}
