// Package types provides type definitions for structured data used throughout the ATS engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordCategory classifies a JD keyword's nature for weighted scoring.
type KeywordCategory string

// Keyword categories. The string values are part of the external contract
// and must not change.
const (
	CategoryHardSkill KeywordCategory = "hard_skill"
	CategoryTool      KeywordCategory = "tool"
	CategoryConcept   KeywordCategory = "concept"
	CategorySoftSkill KeywordCategory = "soft_skill"
)

// MatchStatus is the outcome of matching a JD keyword against resume content.
type MatchStatus string

// Match statuses.
const (
	StatusMatched MatchStatus = "matched"
	StatusMissing MatchStatus = "missing"
)

// RecommendationSeverity ranks how urgent a recommendation is.
type RecommendationSeverity string

// Recommendation severity levels.
const (
	SeverityInfo     RecommendationSeverity = "info"
	SeverityWarning  RecommendationSeverity = "warning"
	SeverityCritical RecommendationSeverity = "critical"
)

// Keyword represents a single categorized, weighted keyword extracted from a
// job description. Immutable once the JobDescriptionModel is built.
type Keyword struct {
	Keyword   string          `json:"keyword"`   // lowercase canonical form
	Category  KeywordCategory `json:"category"`  // hard_skill, tool, concept, soft_skill
	Weight    float64         `json:"weight"`    // importance weight, >= 0
	Frequency int             `json:"frequency"` // occurrences in the JD, >= 1
	JDSection string          `json:"jdSection"` // which JD section the keyword came from
}

// JobDescriptionModel is a parsed job description. Created once per JD text
// and read-only thereafter.
type JobDescriptionModel struct {
	ID       string            `json:"id"`
	RawText  string            `json:"rawText"`
	Sections map[string]string `json:"sections"`
	// CategorizedKeywords is sorted by weight descending; ties keep
	// discovery order. Keyword strings are unique within the model.
	CategorizedKeywords []Keyword `json:"categorizedKeywords"`
}

// Token is an atomic word or skill fragment extracted from resume text,
// tagged with its section-relative origin. Duplicates are intentionally
// preserved so the matching engine can report every location a keyword
// variant appears.
type Token struct {
	Text       string `json:"text"`       // original casing
	Location   string `json:"location"`   // e.g. "experience:0:bullets:2" or "detected"
	Normalized string `json:"normalized"` // lowercase form of Text
}

// ResumeModel is the canonicalized form of a resume: its labeled sections
// plus the flat ordered token stream produced from them.
type ResumeModel struct {
	Sections map[string]string `json:"sections"`
	Tokens   []Token           `json:"tokens"`
}

// MatchResult records the outcome of reconciling one JD keyword against the
// resume token stream. There is exactly one MatchResult per JD keyword, in
// the same order as JobDescriptionModel.CategorizedKeywords.
type MatchResult struct {
	Keyword  string          `json:"keyword"`
	Category KeywordCategory `json:"category"`
	Status   MatchStatus     `json:"status"`
	// Locations where the keyword (or its variant) appears; empty when missing.
	Locations []string `json:"locations"`
	// ScoreContribution is keyword weight x 5 when matched, 0 when missing.
	// Informational only; it is not summed into the total score.
	ScoreContribution float64 `json:"scoreContribution"`
	// MatchedVariant is set only when the match was inexact, i.e. the
	// resume token text differs from the JD keyword's literal form.
	MatchedVariant string `json:"matchedVariant,omitempty"`
}

// ATSScoreBreakdown is the per-category score breakdown. All fields are
// integers in [0, 100]. Recomputed on every evaluation, never persisted.
type ATSScoreBreakdown struct {
	HardSkillScore int `json:"hardSkillScore"`
	ToolsScore     int `json:"toolsScore"`
	ConceptScore   int `json:"conceptScore"`
	RoleTitleScore int `json:"roleTitleScore"`
	StructureScore int `json:"structureScore"`
	Total          int `json:"total"`
}

// Recommendation is an actionable suggestion derived from missing keywords.
type Recommendation struct {
	ID             string                 `json:"id"`
	Message        string                 `json:"message"`
	Severity       RecommendationSeverity `json:"severity"`
	TargetLocation string                 `json:"targetLocation,omitempty"`
	Category       KeywordCategory        `json:"category,omitempty"`
	Keyword        string                 `json:"keyword,omitempty"`
}

// ATSEvaluationResponse is the complete evaluation document produced by one
// engine call. Its field names and enum spellings are the external contract
// consumed by the UI and the scoring API.
type ATSEvaluationResponse struct {
	JDModel         *JobDescriptionModel `json:"jdModel"`
	MatchResults    []MatchResult        `json:"matchResults"`
	ScoreBreakdown  ATSScoreBreakdown    `json:"scoreBreakdown"`
	Recommendations []Recommendation     `json:"recommendations"`
}

// ContactInfo holds contact details extracted from resume text.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ParsedResume is the structured result of parsing raw resume text: the
// candidate's identity, contact info, and labeled section contents.
type ParsedResume struct {
	Name     string            `json:"name,omitempty"`
	Contact  ContactInfo       `json:"contact"`
	Sections map[string]string `json:"sections"`
}
