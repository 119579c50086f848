package model

// Transaction categories
const (
	CategoryAcquisition  = "acquisition"
	CategoryMerger       = "merger"
	CategoryJointVenture = "joint-venture"
	CategoryOther        = "other"
)

// Deal size buckets
const (
	DealUnder5M  = "under-5m"
	Deal5To25M   = "5m-25m"
	Deal25To100M = "25m-100m"
	DealOver100M = "over-100m"
)

// Urgency levels
const (
	UrgencyStandard = "standard"
	UrgencyUrgent   = "urgent"
	UrgencyComplex  = "complex"
)

// Complexity tiers, lowest to highest
const (
	ComplexityLowMedium  = "low-medium"
	ComplexityMedium     = "medium"
	ComplexityMediumHigh = "medium-high"
	ComplexityHigh       = "high"
)

// LetterRequest holds the attributes of one engagement letter request.
// Attributes are supplied once and never mutated.
type LetterRequest struct {
	ClientName          string `json:"clientName" binding:"required"`
	TransactionType     string `json:"transactionType" binding:"required"`
	TransactionValue    string `json:"transactionValue"`
	Urgency             string `json:"urgency"`
	SpecialRequirements string `json:"specialRequirements"`
}

// AnalysisResult is the complexity classification derived from a request.
// Risk factors and recommended clauses keep their append order: downstream
// stage messages display a prefix of each list, so the order is part of the
// observable contract.
type AnalysisResult struct {
	Complexity         string   `json:"complexity"`
	RiskFactors        []string `json:"riskFactors"`
	RecommendedClauses []string `json:"recommendedClauses"`
}

// RateCard holds hourly rates and the fee estimate range for a transaction.
type RateCard struct {
	SeniorRate    int    `json:"seniorRate"`
	AssociateRate int    `json:"associateRate"`
	EstimateRange string `json:"estimateRange"`
}

// RenderRequest holds the inputs of one document render request.
type RenderRequest struct {
	Content    string `json:"content" binding:"required"`
	ClientName string `json:"clientName"`
	IsDraft    bool   `json:"isDraft"`
}
