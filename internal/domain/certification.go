package domain

// Certification is a static catalog record. The catalog is seeded once at
// startup and never mutated at runtime.
type Certification struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Provider    string   `json:"provider"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	PrepTime    string   `json:"prepTime"`
	ExamFee     string   `json:"examFee"`
	Difficulty  string   `json:"difficulty"`
	Icon        string   `json:"icon"`
	IconColor   string   `json:"iconColor"`
	Tags        []string `json:"tags"`
}

// Recommendation is the raw per-certification output of the recommendation
// engine, joined against the catalog by id before it reaches clients.
type Recommendation struct {
	ID             int64   `json:"id"`
	RelevanceScore float64 `json:"relevanceScore"`
	Reasoning      string  `json:"reasoning"`
}

// RecommendedCertification is a catalog entry enriched with the engine's
// relevance score and rationale.
type RecommendedCertification struct {
	Certification
	RelevanceScore float64 `json:"relevanceScore"`
	Reasoning      string  `json:"reasoning"`
}
