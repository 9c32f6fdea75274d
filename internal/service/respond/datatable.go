package respond

import (
	"strings"
	"time"

	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/util"
)

const exportFooter = "📥 **Export:** CSV/Excel available here:"

func (s *System) synthesizeDataTable(processed domain.ProcessedInput, docText string) domain.StructuredResponse {
	table := buildTable(processed.Original, docText)
	exports := s.exporter.Generate(table)
	content := formatDataTableResponse(table, exports)

	return domain.StructuredResponse{
		Content:     content,
		Pattern:     domain.PatternDataTable,
		Category:    domain.CategoryDocumentAnalysis,
		Confidence:  processed.Confidence,
		Sources:     []string{"data_extraction"},
		Suggestions: dataSuggestions(),
		Tone:        domain.ToneProfessional,
		Structured: map[string]any{
			"pattern": domain.PatternDataTable.String(),
			"table":   table,
			"exports": exports,
		},
		ContextUsed: []string{"data_analysis"},
		Timestamp:   time.Now(),
	}
}

// buildTable picks a table variant keyed off the question focus. Without a
// document there is nothing to tabulate beyond the load status.
func buildTable(question, docText string) domain.DataTable {
	metadata := map[string]any{
		"source":    "document_analysis",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if docText == "" {
		return domain.DataTable{
			Title:    "Contract Information",
			Headers:  []string{"Item", "Details"},
			Rows:     [][]string{{"Status", "No document loaded"}},
			Metadata: metadata,
		}
	}

	lowered := strings.ToLower(question)
	switch {
	case util.ContainsAny(lowered, []string{"party", "parties", "who"}):
		return domain.DataTable{
			Title:   "Contract Parties",
			Headers: []string{"Role", "Entity", "Responsibilities"},
			Rows: [][]string{
				{"Party 1", "First contracting party", "Primary obligations"},
				{"Party 2", "Second contracting party", "Secondary obligations"},
			},
			Metadata: metadata,
		}
	case util.ContainsAny(lowered, []string{"payment", "fee", "cost"}):
		return domain.DataTable{
			Title:   "Payment Terms",
			Headers: []string{"Payment Type", "Amount", "Due Date", "Conditions"},
			Rows: [][]string{
				{"Initial Payment", "As specified", "Upon signing", "Standard terms"},
				{"Ongoing Fees", "As specified", "Monthly/Quarterly", "Performance based"},
			},
			Metadata: metadata,
		}
	case util.ContainsAny(lowered, []string{"timeline", "schedule", "dates"}):
		return domain.DataTable{
			Title:   "Contract Timeline",
			Headers: []string{"Milestone", "Date", "Responsible Party", "Status"},
			Rows: [][]string{
				{"Contract Start", "Effective Date", "Both parties", "Active"},
				{"Key Deliverables", "As specified", "As assigned", "Pending"},
				{"Contract End", "Expiration Date", "Both parties", "Future"},
			},
			Metadata: metadata,
		}
	case util.ContainsAny(lowered, []string{"risk", "liability", "responsibility"}):
		return domain.DataTable{
			Title:   "Risk and Liability Matrix",
			Headers: []string{"Risk Type", "Responsible Party", "Mitigation", "Impact Level"},
			Rows: [][]string{
				{"Performance Risk", "Service Provider", "SLA monitoring", "Medium"},
				{"Financial Risk", "Both parties", "Insurance coverage", "High"},
				{"Legal Risk", "As specified", "Legal compliance", "Variable"},
			},
			Metadata: metadata,
		}
	default:
		return domain.DataTable{
			Title:   "Contract Summary",
			Headers: []string{"Aspect", "Details"},
			Rows: [][]string{
				{"Document Type", "Contract/Agreement"},
				{"Parties", "Multiple parties involved"},
				{"Key Terms", "Various obligations and rights"},
				{"Status", "Active/Under Review"},
			},
			Metadata: metadata,
		}
	}
}

func formatDataTableResponse(table domain.DataTable, exports []domain.ExportFile) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(table.Title)
	b.WriteString("\n\n")
	b.WriteString(renderMarkdownTable(table))

	if len(exports) > 0 {
		b.WriteString("\n")
		b.WriteString(exportFooter)
		b.WriteString("\n")
		for _, export := range exports {
			b.WriteString("- [")
			b.WriteString(strings.ToUpper(export.Format))
			b.WriteString("](")
			b.WriteString(export.DownloadURL)
			b.WriteString(")\n")
		}
	}

	return b.String()
}

func renderMarkdownTable(table domain.DataTable) string {
	if len(table.Headers) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(table.Headers, " | "))
	b.WriteString(" |\n|")
	for range table.Headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range table.Rows {
		b.WriteString("| ")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}

// containsTabularContent reports whether rendered content embeds a markdown table
func containsTabularContent(content string) bool {
	return strings.Contains(content, "|") && strings.Contains(content, "---")
}

// extractTableFromContent parses the first markdown table out of content.
// Returns false when no well-formed table is present.
func extractTableFromContent(content string) (domain.DataTable, bool) {
	var tableLines []string
	inTable := false
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, "|") {
			inTable = true
			tableLines = append(tableLines, line)
		} else if inTable {
			break
		}
	}

	if len(tableLines) < 2 {
		return domain.DataTable{}, false
	}

	headers := parseTableRow(tableLines[0])
	if len(headers) == 0 {
		return domain.DataTable{}, false
	}

	var rows [][]string
	for _, line := range tableLines[2:] {
		row := parseTableRow(line)
		if len(row) == len(headers) {
			rows = append(rows, row)
		}
	}

	return domain.DataTable{
		Title:    "Extracted Data",
		Headers:  headers,
		Rows:     rows,
		Metadata: map[string]any{},
	}, true
}

func parseTableRow(line string) []string {
	cells := strings.Split(line, "|")
	if len(cells) < 3 {
		return nil
	}
	row := make([]string, 0, len(cells)-2)
	for _, cell := range cells[1 : len(cells)-1] {
		row = append(row, strings.TrimSpace(cell))
	}
	return row
}

func dataSuggestions() []string {
	return []string{
		"Can you create a summary table?",
		"What are the key dates and deadlines?",
		"Show me the parties and their roles",
		"Create a risk assessment matrix",
	}
}
