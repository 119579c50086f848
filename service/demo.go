package service

import (
	"strings"

	"github.com/skeptikoss/legalflow-ai-assistant/model"
)

// DemoScenario is a canned request plus its pre-written letter, used to make
// demonstration runs instant and deterministic.
type DemoScenario struct {
	Key     string              `json:"-"`
	Request model.LetterRequest `json:"-"`

	ClientName          string `json:"clientName"`
	TransactionType     string `json:"transactionType"`
	TransactionValue    string `json:"transactionValue"`
	Urgency             string `json:"urgency"`
	SpecialRequirements string `json:"specialRequirements"`
	SampleContent       string `json:"sampleContent"`
}

// DemoCatalog is an injected lookup table of demonstration fixtures. The
// relay consults it uniformly instead of special-casing client names in its
// control flow.
type DemoCatalog struct {
	scenarios []DemoScenario
	byKey     map[string]*DemoScenario
}

// NewDemoCatalog returns the catalog of built-in demo scenarios.
func NewDemoCatalog() *DemoCatalog {
	c := &DemoCatalog{
		scenarios: builtinScenarios(),
		byKey:     make(map[string]*DemoScenario),
	}
	for i := range c.scenarios {
		c.byKey[c.scenarios[i].Key] = &c.scenarios[i]
	}
	return c
}

// Scenario returns the fixture registered under key.
func (c *DemoCatalog) Scenario(key string) (*DemoScenario, bool) {
	s, ok := c.byKey[key]
	return s, ok
}

// MatchClient returns the fixture whose client name appears in clientName.
func (c *DemoCatalog) MatchClient(clientName string) (*DemoScenario, bool) {
	for i := range c.scenarios {
		marker := c.scenarios[i].matchMarker()
		if marker != "" && strings.Contains(clientName, marker) {
			return &c.scenarios[i], true
		}
	}
	return nil, false
}

// matchMarker is the distinctive leading part of the fixture client name.
func (s *DemoScenario) matchMarker() string {
	switch s.Key {
	case "techAcquisition":
		return "TechVentures"
	case "realEstateMerger":
		return "Singapore Properties"
	case "startupFunding":
		return "InnovateSG"
	}
	return ""
}

func builtinScenarios() []DemoScenario {
	scenarios := []DemoScenario{
		{
			Key: "techAcquisition",
			Request: model.LetterRequest{
				ClientName:          "TechVentures Pte Ltd",
				TransactionType:     model.CategoryAcquisition,
				TransactionValue:    model.Deal25To100M,
				Urgency:             model.UrgencyUrgent,
				SpecialRequirements: "Cross-border IP licensing, ACRA and IMDA regulatory approvals, employee retention packages",
			},
			SampleContent: techAcquisitionLetter,
		},
		{
			Key: "realEstateMerger",
			Request: model.LetterRequest{
				ClientName:          "Singapore Properties Group Pte Ltd",
				TransactionType:     model.CategoryMerger,
				TransactionValue:    model.Deal5To25M,
				Urgency:             model.UrgencyStandard,
				SpecialRequirements: "REIT restructuring, minority shareholder protection, Property Tax Board approvals",
			},
			SampleContent: realEstateMergerLetter,
		},
		{
			Key: "startupFunding",
			Request: model.LetterRequest{
				ClientName:          "InnovateSG Pte Ltd",
				TransactionType:     model.CategoryJointVenture,
				TransactionValue:    model.DealUnder5M,
				Urgency:             model.UrgencyComplex,
				SpecialRequirements: "Government co-investment via EDBI, intellectual property protection, founder vesting schedules",
			},
			SampleContent: startupFundingLetter,
		},
	}

	// Mirror the request attributes into the exported JSON fields
	for i := range scenarios {
		r := scenarios[i].Request
		scenarios[i].ClientName = r.ClientName
		scenarios[i].TransactionType = r.TransactionType
		scenarios[i].TransactionValue = r.TransactionValue
		scenarios[i].Urgency = r.Urgency
		scenarios[i].SpecialRequirements = r.SpecialRequirements
	}
	return scenarios
}

const techAcquisitionLetter = `Dear Mr. Lim Wei Ming,

ENGAGEMENT FOR ACQUISITION OF DATATECH SOLUTIONS PTE LTD

We are delighted to confirm our engagement to act for TechVentures Pte Ltd ("Company") in connection with the proposed acquisition of DataTech Solutions Pte Ltd ("Target") for a consideration of approximately S$75 million (the "Transaction").

1. SCOPE OF SERVICES

1.1 Legal Due Diligence
We shall conduct comprehensive legal due diligence on the Target, including:
(a) Corporate structure and shareholding verification
(b) Material contracts and commercial arrangements
(c) Intellectual property portfolio and licensing agreements
(d) Employment matters and key person dependencies
(e) Regulatory compliance and outstanding litigations

1.2 Transaction Documentation
We shall prepare and negotiate all transaction documents including:
(a) Share Purchase Agreement with appropriate warranties and indemnities
(b) Disclosure Letter and Data Room Index
(c) Board Resolutions and shareholder approvals
(d) Completion mechanics and escrow arrangements

1.3 Regulatory Approvals
Given the cross-border technology elements, we shall:
(a) Advise on ACRA merger notification requirements
(b) Coordinate with IMDA for telecommunications licensing issues
(c) Ensure compliance with foreign investment review procedures
(d) Address data protection and cybersecurity regulatory requirements

1.4 IP Licensing and Technology Transfer
We shall review and advise on:
(a) Core technology licensing agreements with overseas partners
(b) Employee intellectual property assignments
(c) Third-party software licensing compliance
(d) Data portability and customer consent mechanisms

2. FEE ARRANGEMENT

2.1 Our fees for this engagement will be charged on a time-cost basis at our standard rates:
Senior Partner (Sarah Chen): S$1,100 per hour
Partner (Michael Tan): S$770 per hour
Senior Associate: S$550 per hour
Associate: S$380 per hour

2.2 We estimate our total fees for this transaction to be in the range of S$65,000 to S$85,000, subject to the complexity of issues arising and extent of negotiations required.

2.3 All disbursements will be charged at cost, including search fees, filing fees, and other third-party expenses.

3. KEY TERMS AND CONDITIONS

3.1 The Company acknowledges that time is of the essence given the urgent timeline.

3.2 Our engagement is subject to satisfactory completion of our standard client identification and anti-money laundering procedures.

3.3 Our professional liability is limited to S$2 million per claim, being twice the amount of fees paid under this engagement.

3.4 This engagement letter is governed by Singapore law and subject to the exclusive jurisdiction of the Singapore courts, with disputes to be resolved through SIAC arbitration.

4. CONFIDENTIALITY AND DATA PROTECTION

All information received will be held in strict confidence in accordance with our professional obligations and the Personal Data Protection Act 2012.

We look forward to working with you on this exciting transaction. Please confirm your acceptance by signing and returning the enclosed copy.

Yours faithfully,

LEGALFLOW & ASSOCIATES`

const realEstateMergerLetter = `Dear Ms. Patricia Wong,

ENGAGEMENT FOR MERGER OF SINGAPORE PROPERTIES GROUP WITH HERITAGE REIT

We are pleased to confirm our engagement to act for Singapore Properties Group Pte Ltd ("SPG") in connection with the proposed merger with Heritage REIT ("Heritage") to form a combined entity with total assets of approximately S$18 billion (the "Merger").

1. SCOPE OF SERVICES

1.1 Transaction Structure and Planning
We shall advise on:
(a) Optimal merger structure considering REIT regulatory requirements
(b) Tax-efficient implementation through scheme of arrangement
(c) Minority shareholder protection mechanisms
(d) Regulatory compliance timeline and requirements

1.2 Due Diligence and Documentation
Our services include:
(a) Legal due diligence on Heritage's property portfolio
(b) Review of existing property management agreements
(c) Preparation of scheme documents and explanatory statement
(d) Court applications and regulatory filings

1.3 Regulatory and Compliance Matters
We shall handle:
(a) Monetary Authority of Singapore notifications and approvals
(b) SGX-ST listing rule compliance and waivers
(c) Competition and Consumer Commission of Singapore consultation
(d) Property Tax Board assessments and restructuring approvals

1.4 Minority Shareholder Protection
Given the significance to minority investors:
(a) Independent financial advisor engagement
(b) Fairness opinion and valuation reviews
(c) Minority shareholder meeting procedures
(d) Potential court-sanctioned scheme implementation

2. FEE ARRANGEMENT

2.1 Our professional fees will be charged on a time-cost basis:
Senior Partner: S$950 per hour
Partner: S$650 per hour
Senior Associate: S$480 per hour
Associate: S$320 per hour

2.2 We estimate total fees of S$45,000 to S$65,000 for this engagement, depending on the complexity of regulatory approvals and court proceedings required.

2.3 Court filing fees, valuation costs, and other disbursements will be charged separately.

3. SPECIAL CONSIDERATIONS

3.1 This engagement recognises the regulated nature of REIT transactions and enhanced disclosure requirements.

3.2 All minority shareholder communications will be reviewed for compliance with SGX-ST Listing Rules and MAS guidelines.

3.3 We shall coordinate closely with your financial advisors and auditors throughout the process.

4. PROFESSIONAL LIABILITY AND GOVERNING LAW

4.1 Our professional liability is capped at S$1.5 million in aggregate.

4.2 This agreement is governed by Singapore law, with disputes subject to SIAC arbitration procedures.

4.3 All advice is given in accordance with Singapore Law Society professional conduct rules and REIT regulatory requirements.

Please indicate your acceptance by countersigning this letter.

Yours sincerely,

LEGALFLOW & ASSOCIATES`

const startupFundingLetter = `Dear Dr. Rachel Tan,

ENGAGEMENT FOR JOINT VENTURE WITH GOVERNMENT CO-INVESTMENT

We are excited to confirm our engagement to act for InnovateSG Pte Ltd ("Company") in establishing a joint venture with TechAccelerator Holdings and the Economic Development Board Investment Pte Ltd ("EDBI") for your breakthrough fintech platform (the "Joint Venture").

1. SCOPE OF SERVICES

1.1 Joint Venture Structure
We shall design and implement:
(a) Optimal corporate structure accommodating government co-investment requirements
(b) Shareholder agreements with appropriate governance provisions
(c) Founder and key employee equity participation mechanisms
(d) Technology licensing and IP contribution frameworks

1.2 Investment Documentation
Our services include preparation of:
(a) Subscription and Shareholders' Agreement with EDBI-compliant terms
(b) Technology Transfer and Licensing Agreements
(c) Founder Service Agreements with vesting schedules
(d) Board composition and decision-making procedures

1.3 Intellectual Property Protection
We shall establish:
(a) Comprehensive IP assignment agreements from founders and employees
(b) Trade secret and confidentiality protection protocols
(c) Patent filing strategy for core algorithms
(d) Open source software compliance framework

1.4 Regulatory and Compliance Framework
Given the fintech nature and government involvement:
(a) MAS fintech regulatory sandbox application
(b) PDPA compliance for financial data processing
(c) Anti-money laundering and know-your-customer procedures
(d) Government procurement and transparency requirements

2. FOUNDER EQUITY AND VESTING

2.1 We shall implement a founder vesting schedule with:
(a) 25% vesting on first anniversary
(b) Monthly vesting thereafter over 36 months
(c) Acceleration provisions for successful exit events
(d) Good leaver/bad leaver protection mechanisms

2.2 Employee share option scheme design with:
(a) Pool allocation of 15% of enlarged share capital
(b) Performance-based vesting criteria
(c) Exercise price mechanisms and tax optimisation

3. FEE ARRANGEMENT

3.1 Recognising the startup nature of this engagement:
Senior Partner: S$800 per hour
Partner: S$600 per hour
Senior Associate: S$420 per hour
Associate: S$280 per hour

3.2 Total estimated fees: S$25,000 to S$35,000 for complete documentation and setup.

3.3 We offer a 20% discount in recognition of the government co-investment and innovation focus.

4. GOVERNMENT CO-INVESTMENT COMPLIANCE

4.1 All documentation will comply with EDBI investment criteria and ESG requirements.

4.2 Regular reporting mechanisms to government stakeholders will be established.

4.3 IP ownership and licensing will meet national technology strategy objectives.

5. PROFESSIONAL TERMS

5.1 Professional liability limited to S$750,000 reflecting the transaction size.

5.2 Singapore law governs with SIAC arbitration for dispute resolution.

5.3 Strict confidentiality given the proprietary technology involved.

We are committed to supporting Singapore's startup ecosystem and look forward to contributing to your success.

Yours faithfully,

LEGALFLOW & ASSOCIATES`
