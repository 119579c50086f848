package service

import (
	"fmt"
	"strings"

	"github.com/skeptikoss/legalflow-ai-assistant/model"
)

// BuildPrompt composes the drafting prompt sent to the completion provider,
// folding the computed analysis and rate card into the instructions.
func BuildPrompt(req *model.LetterRequest, analysis model.AnalysisResult, rates model.RateCard) string {
	var b strings.Builder

	b.WriteString("You are Singapore's most senior M&A partner with 25+ years at Magic Circle firms (Clifford Chance, Allen & Overy level). You have closed over S$50 billion in transactions.\n\n")

	fmt.Fprintf(&b, "Create a sophisticated engagement letter for:\n")
	fmt.Fprintf(&b, "- Client: %s\n", req.ClientName)
	fmt.Fprintf(&b, "- Transaction: %s (%s)\n", req.TransactionType, req.TransactionValue)
	fmt.Fprintf(&b, "- Timeline: %s\n", req.Urgency)
	fmt.Fprintf(&b, "- Special requirements: %s\n\n", req.SpecialRequirements)

	b.WriteString("INTELLIGENCE ANALYSIS:\n")
	fmt.Fprintf(&b, "- Transaction complexity: %s\n", analysis.Complexity)
	fmt.Fprintf(&b, "- Key risk factors: %s\n", strings.Join(analysis.RiskFactors, "; "))
	fmt.Fprintf(&b, "- Recommended clauses: %s\n", strings.Join(analysis.RecommendedClauses, "; "))
	fmt.Fprintf(&b, "- Fee structure: Senior S$%d/hr, Associate S$%d/hr\n", rates.SeniorRate, rates.AssociateRate)
	fmt.Fprintf(&b, "- Estimated cost: S$%sk\n\n", rates.EstimateRange)

	b.WriteString(`DRAFTING REQUIREMENTS:
1. Use sophisticated, partner-level legal language (not generic)
2. Address SPECIFIC risks identified in the analysis above
3. Include Singapore-specific provisions: SIAC arbitration, Singapore law governing, PDPA compliance
4. Tailor scope of services to transaction type and complexity
5. Apply appropriate fee structure based on analysis
6. Include professional liability limitations (capped at fees)
7. Address urgency-specific terms if timeline is urgent
8. Use British English throughout
9. Reference specific Singapore legal requirements
10. Make risk mitigation provisions transaction-specific

STRUCTURE (Professional Law Firm Format):
1. Firm details area (leave space for letterhead)
2. Date: [Date]
3. Client address block
4. Formal salutation
5. Opening paragraph: Relationship establishment
6. Scope of Services: Detailed, transaction-specific
7. Fee Arrangement: Based on calculated structure
8. Key Terms and Conditions: Including risk-specific provisions
9. Professional Liability: Capped limitations
10. Singapore Law and Jurisdiction: SIAC arbitration clause
11. PDPA and Confidentiality provisions
12. Professional closing with partner signature block

IMPORTANT: This must read like a letter from Rajah & Tann or WongPartnership's senior partner - sophisticated, specific, and absolutely professional. Every clause must serve the specific transaction analysed above.`)

	return b.String()
}
