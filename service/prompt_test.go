package service

import (
	"strings"
	"testing"

	"github.com/skeptikoss/legalflow-ai-assistant/model"
)

func TestBuildPromptInterpolatesAnalysis(t *testing.T) {
	req := &model.LetterRequest{
		ClientName:          "Acme Pte Ltd",
		TransactionType:     model.CategoryAcquisition,
		TransactionValue:    model.Deal25To100M,
		Urgency:             model.UrgencyUrgent,
		SpecialRequirements: "cross-border IP",
	}
	analysis := Analyze(req.TransactionType, req.TransactionValue, req.Urgency, req.SpecialRequirements)
	rates := CalculateFees(analysis.Complexity, req.TransactionValue)

	prompt := BuildPrompt(req, analysis, rates)

	for _, want := range []string{
		"Client: Acme Pte Ltd",
		"Transaction: acquisition (25m-100m)",
		"Transaction complexity: high",
		"Senior S$1400/hr",
		"SIAC arbitration",
		"British English",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}

	// Risk factors joined with semicolons, in analysis order
	if !strings.Contains(prompt, "Large transaction size increases regulatory scrutiny; Asset/liability transfer complexity") {
		t.Error("Expected ordered risk factors in prompt")
	}
}

func TestFallbackLetterInterpolatesRates(t *testing.T) {
	req := &model.LetterRequest{ClientName: "Acme Pte Ltd", TransactionType: model.CategoryMerger}
	analysis := Analyze(req.TransactionType, model.Deal5To25M, model.UrgencyStandard, "")
	rates := CalculateFees(analysis.Complexity, model.Deal5To25M)

	letter := FallbackLetter(req, analysis, rates)

	if !strings.Contains(letter, "Dear Acme Pte Ltd,") {
		t.Error("Expected salutation with client name")
	}
	if !strings.Contains(letter, "ENGAGEMENT FOR MERGER") {
		t.Error("Expected uppercased transaction heading")
	}
	if !strings.Contains(letter, "S$990 per hour") {
		t.Error("Expected computed senior rate in fee section")
	}
	if !strings.Contains(letter, "S$25-40k") {
		t.Error("Expected estimate range in fee section")
	}
}
