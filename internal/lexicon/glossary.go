package lexicon

// PlainEnglishGlossary maps legal terms to reader-friendly explanations used
// by the document synthesizer
var PlainEnglishGlossary = map[string]string{
	"liability":       "Liability refers to legal responsibility - who is responsible if something goes wrong.",
	"indemnification": "Indemnification means one party agrees to protect the other from certain losses or legal claims.",
	"breach":          "A breach occurs when someone doesn't fulfill their obligations under the contract.",
	"termination":     "Termination is how and when the contract can be ended by either party.",
	"consideration":   "Consideration is what each party gives or receives in exchange (money, services, etc.).",
	"force majeure":   "Force majeure covers unforeseeable events (like natural disasters) that prevent contract performance.",
	"warranty":        "A warranty is a promise or guarantee about the quality or condition of something.",
	"covenant":        "A covenant is a formal promise or commitment to do or not do something.",
}

// MTAGlossary maps MTA concepts to their specialist explanations
var MTAGlossary = map[string]string{
	"provider":          "The institution or entity providing the original material",
	"recipient":         "The institution or entity receiving the material for research",
	"original material": "The material being transferred as specified in the agreement",
	"derivatives":       "Materials created by the recipient that incorporate or are derived from the original material",
	"modifications":     "Any changes, improvements, or alterations made to the original material",
	"progeny":           "Unmodified descendants of the original material (e.g., cell lines, offspring)",
	"research use only": "Restriction limiting use to non-commercial research purposes",
	"commercial use":    "Use for profit-making activities or product development",
	"publication rights": "Rights and restrictions regarding publishing research results",
	"ip rights":          "Intellectual property rights related to the material and derivatives",
	"confidentiality":    "Obligations to keep certain information confidential",
	"liability":          "Responsibility for damages or issues arising from material use",
	"indemnification":    "Protection from legal claims related to material use",
}

// MTARiskFactors lists common risk factors flagged by the specialist
var MTARiskFactors = []string{
	"Broad IP claims on derivatives",
	"Restrictive publication requirements",
	"Unlimited liability exposure",
	"Vague material description",
	"Unclear termination conditions",
	"Excessive confidentiality obligations",
	"Commercial use restrictions affecting future research",
	"Third-party rights complications",
}

// MTABestPractices lists research collaboration best practices
var MTABestPractices = []string{
	"Clearly define the scope of permitted research",
	"Negotiate reasonable publication timelines",
	"Limit liability to direct damages when possible",
	"Specify ownership of improvements and derivatives",
	"Include termination and return provisions",
	"Address third-party collaborator rights",
	"Consider future commercial applications",
	"Establish clear communication protocols",
}

// MTAMaterialKeywords lists material types scanned for in MTA documents
var MTAMaterialKeywords = []string{
	"cell line", "cells", "tissue", "dna", "rna", "protein", "antibody",
	"plasmid", "vector", "bacteria", "virus", "sample", "specimen",
	"chemical", "compound", "reagent", "mouse", "animal model",
}

// MTAPurposeKeywords lists research purpose markers
var MTAPurposeKeywords = []string{
	"research", "study", "investigation", "analysis", "testing",
	"experiment", "evaluation", "characterization", "screening",
}

// MTAIPKeywords lists intellectual property markers
var MTAIPKeywords = []string{
	"intellectual property", "patent", "copyright", "trademark",
	"derivative", "modification", "improvement", "invention",
}

// MTARestrictionMarkers lists phrases that introduce restrictions
var MTARestrictionMarkers = []string{
	"shall not", "prohibited", "restricted", "limited to",
	"only for", "except", "without permission", "not permitted",
}
