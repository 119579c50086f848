package service

import (
	"fmt"
	"strings"

	"github.com/skeptikoss/legalflow-ai-assistant/model"
)

// FallbackLetter produces the boilerplate engagement letter used when the
// completion provider fails. Generation must never dead-end the demo, so the
// text interpolates the computed analysis and rates but is otherwise fixed.
func FallbackLetter(req *model.LetterRequest, analysis model.AnalysisResult, rates model.RateCard) string {
	transaction := req.TransactionType
	if transaction == "" {
		transaction = "proposed transaction"
	}

	return fmt.Sprintf(`Dear %s,

ENGAGEMENT FOR %s

We are pleased to confirm our engagement to act for %s in connection with the proposed %s (the "Transaction").

1. SCOPE OF SERVICES

We shall provide legal advice and transaction support for the Transaction, including legal due diligence, preparation and negotiation of transaction documentation, and advice on applicable Singapore regulatory requirements. Our initial assessment classifies this engagement as %s complexity.

2. FEE ARRANGEMENT

2.1 Our fees will be charged on a time-cost basis at our standard rates:
Senior Partner: S$%d per hour
Associate: S$%d per hour

2.2 We estimate our total fees for this engagement to be in the range of S$%sk, subject to the complexity of issues arising and the extent of negotiations required.

3. KEY TERMS AND CONDITIONS

3.1 Our engagement is subject to satisfactory completion of our standard client identification and anti-money laundering procedures.

3.2 Our professional liability is limited to twice the amount of fees paid under this engagement.

3.3 This engagement letter is governed by Singapore law, with disputes to be resolved through SIAC arbitration.

4. CONFIDENTIALITY AND DATA PROTECTION

All information received will be held in strict confidence in accordance with our professional obligations and the Personal Data Protection Act 2012.

Please confirm your acceptance by signing and returning the enclosed copy.

Yours faithfully,

LEGALFLOW & ASSOCIATES`,
		req.ClientName,
		strings.ToUpper(transaction),
		req.ClientName,
		transaction,
		analysis.Complexity,
		rates.SeniorRate,
		rates.AssociateRate,
		rates.EstimateRange,
	)
}
