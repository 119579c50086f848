package service

import (
	"math"

	"github.com/skeptikoss/legalflow-ai-assistant/model"
)

type baseFees struct {
	senior    int
	associate int
	estimate  string
}

// Base hourly rates (S$) and estimated total fee range (S$ thousands) per
// deal size bucket.
var baseFeeRanges = map[string]baseFees{
	model.DealUnder5M:  {senior: 800, associate: 500, estimate: "15-25"},
	model.Deal5To25M:   {senior: 900, associate: 600, estimate: "25-40"},
	model.Deal25To100M: {senior: 1000, associate: 650, estimate: "40-75"},
	model.DealOver100M: {senior: 1200, associate: 700, estimate: "75-150"},
}

var complexityMultipliers = map[string]float64{
	model.ComplexityLowMedium:  1.0,
	model.ComplexityMedium:     1.1,
	model.ComplexityMediumHigh: 1.25,
	model.ComplexityHigh:       1.4,
}

// CalculateFees maps a complexity tier and deal size bucket to a rate card.
// Unknown buckets fall back to the mid-market bucket; unknown complexity
// uses the medium multiplier. The estimate range passes through unscaled.
func CalculateFees(complexity, transactionValue string) model.RateCard {
	base, ok := baseFeeRanges[transactionValue]
	if !ok {
		base = baseFeeRanges[model.Deal5To25M]
	}

	multiplier, ok := complexityMultipliers[complexity]
	if !ok {
		multiplier = complexityMultipliers[model.ComplexityMedium]
	}

	return model.RateCard{
		SeniorRate:    int(math.Round(float64(base.senior) * multiplier)),
		AssociateRate: int(math.Round(float64(base.associate) * multiplier)),
		EstimateRange: base.estimate,
	}
}
