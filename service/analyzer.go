package service

import (
	"strings"

	"github.com/skeptikoss/legalflow-ai-assistant/model"
)

// Analyze classifies a transaction's complexity and derives its risk factors
// and recommended clauses. It is deterministic and the output lists preserve
// a fixed append order: value bucket first, then transaction type, then
// urgency, then special-requirement keywords in scan order. Stage messages
// show only a prefix of each list, so the order is observable.
func Analyze(transactionType, transactionValue, urgency, specialRequirements string) model.AnalysisResult {
	complexity := model.ComplexityMedium
	var riskFactors []string
	var recommendedClauses []string

	// Transaction value impact
	switch transactionValue {
	case model.DealOver100M:
		complexity = model.ComplexityHigh
		riskFactors = append(riskFactors, "Large transaction size increases regulatory scrutiny")
		recommendedClauses = append(recommendedClauses, "Enhanced due diligence provisions", "Regulatory approval conditions")
	case model.Deal25To100M:
		complexity = model.ComplexityMediumHigh
		riskFactors = append(riskFactors, "Mid-market transaction requires tailored approach")
	case model.DealUnder5M:
		complexity = model.ComplexityLowMedium
		riskFactors = append(riskFactors, "Cost-efficiency critical for smaller deals")
	}

	// Transaction type risks
	switch transactionType {
	case model.CategoryAcquisition:
		riskFactors = append(riskFactors, "Asset/liability transfer complexity", "Warranty and indemnity exposure")
		recommendedClauses = append(recommendedClauses, "Comprehensive due diligence scope", "Detailed warranty provisions")
	case model.CategoryMerger:
		riskFactors = append(riskFactors, "Shareholder approval requirements", "Regulatory merger clearance")
		recommendedClauses = append(recommendedClauses, "Competition Commission filing", "Shareholder meeting protocols")
	case model.CategoryJointVenture:
		riskFactors = append(riskFactors, "Ongoing governance structure", "IP and confidentiality issues")
		recommendedClauses = append(recommendedClauses, "JV agreement drafting", "IP licensing provisions")
	}

	// Urgency escalation: urgent forces at least medium, and any non-low
	// tier straight to high.
	if urgency == model.UrgencyUrgent {
		if complexity == model.ComplexityLowMedium {
			complexity = model.ComplexityMedium
		} else {
			complexity = model.ComplexityHigh
		}
		riskFactors = append(riskFactors, "Compressed timeline increases execution risk")
		recommendedClauses = append(recommendedClauses, "Expedited process protocols", "Enhanced project management")
	}

	// Special requirement keywords, matched independently and cumulatively
	if specialRequirements != "" {
		req := strings.ToLower(specialRequirements)
		if strings.Contains(req, "cross-border") {
			riskFactors = append(riskFactors, "Multi-jurisdictional regulatory compliance")
			recommendedClauses = append(recommendedClauses, "Foreign investment clearance", "Multi-jurisdiction legal opinions")
		}
		if strings.Contains(req, "ip") || strings.Contains(req, "intellectual property") {
			riskFactors = append(riskFactors, "IP valuation and transfer complexity")
			recommendedClauses = append(recommendedClauses, "IP due diligence", "Technology licensing terms")
		}
		if strings.Contains(req, "regulatory") {
			riskFactors = append(riskFactors, "Sector-specific regulatory approval required")
			recommendedClauses = append(recommendedClauses, "Regulatory condition precedents", "Compliance warranties")
		}
	}

	return model.AnalysisResult{
		Complexity:         complexity,
		RiskFactors:        riskFactors,
		RecommendedClauses: recommendedClauses,
	}
}
