package domain

// Document is the read-only collaborator record supplied by the caller.
// LegalType is an optional classification hint ("MTA", "NDA", ...).
type Document struct {
	ID        string
	Title     string
	Text      string
	LegalType string
}

// IsLegal reports whether the document carries a legal-type classification
func (d *Document) IsLegal() bool {
	return d != nil && d.LegalType != ""
}
