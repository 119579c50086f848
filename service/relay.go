package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skeptikoss/legalflow-ai-assistant/model"
	"github.com/skeptikoss/legalflow-ai-assistant/pkg/logger"
)

// State identifies a step of the generation relay. A request walks the states
// in declaration order; Errored is reachable from Generating only.
type State string

const (
	StateIdle           State = "idle"
	StateAnalyzing      State = "analyzing"
	StateRiskScan       State = "risk_scan"
	StateFeeCalc        State = "fee_calc"
	StateComplianceNote State = "compliance_note"
	StateClauseSelect   State = "clause_select"
	StateGenerating     State = "generating"
	StateReviewing      State = "reviewing"
	StateValidating     State = "validating"
	StateComplete       State = "complete"
	StateErrored        State = "errored"
)

// Frame is one SSE payload. Type discriminates the shape: "reasoning" frames
// carry stage/detail/progress, "content" carries the letter text, "complete"
// carries the closing summary and "error" the terminal failure message.
type Frame struct {
	Type     string   `json:"type"`
	Seq      int      `json:"seq"`
	Stage    string   `json:"stage,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Progress int      `json:"progress,omitempty"`
	Content  string   `json:"content,omitempty"`
	Message  string   `json:"message,omitempty"`
	Analysis *Summary `json:"analysis,omitempty"`
}

// Summary is the analysis digest attached to the complete frame.
type Summary struct {
	Complexity  string `json:"complexity"`
	RiskFactors int    `json:"riskFactors"`
	TimeSaved   string `json:"timeSaved"`
	CostSaved   string `json:"costSaved"`
}

// EmitFunc delivers one frame to the client. A non-nil error means the
// channel is gone; the relay stops writing immediately.
type EmitFunc func(Frame) error

// PacingPolicy gives the nominal pause after each state's frame. States
// absent from the map pause for zero, so tests inject an empty policy.
type PacingPolicy map[State]time.Duration

// DefaultPacing spreads the reference demo's rhythm around the configured
// base delay: slightly longer while "thinking", shorter near the end.
func DefaultPacing(base time.Duration) PacingPolicy {
	return PacingPolicy{
		StateAnalyzing:      base + base/3,
		StateRiskScan:       base,
		StateFeeCalc:        base,
		StateComplianceNote: base,
		StateClauseSelect:   base + base/3,
		StateGenerating:     base,
		StateReviewing:      base * 2 / 3,
		StateValidating:     base,
	}
}

// Relay drives one generation request through its staged progress sequence:
// analysis, fee calculation, cache-or-provider content production, and the
// closing content and summary frames. All observable ordering guarantees
// live here: frame sequence numbers increase by exactly one, progress never
// decreases and exactly one terminal frame is emitted per request.
type Relay struct {
	letters  *ArtifactCache
	provider CompletionProvider
	demos    *DemoCatalog
	pacing   PacingPolicy
}

func NewRelay(caches *Caches, provider CompletionProvider, demos *DemoCatalog, pacing PacingPolicy) *Relay {
	return &Relay{
		letters:  caches.Letters,
		provider: provider,
		demos:    demos,
		pacing:   pacing,
	}
}

// run-scoped emission state. Not safe for concurrent use; each request gets
// its own.
type relayRun struct {
	relay *Relay
	emit  EmitFunc
	seq   int
}

// Run executes the relay for req, delivering frames through emit. It returns
// nil after a complete frame, ctx.Err() after a cancellation (having
// attempted an error frame if the channel might still be open), and the emit
// error if the client went away mid-stream.
func (r *Relay) Run(ctx context.Context, req *model.LetterRequest, emit EmitFunc) error {
	run := &relayRun{relay: r, emit: emit}

	analysis := Analyze(req.TransactionType, req.TransactionValue, req.Urgency, req.SpecialRequirements)
	rates := CalculateFees(analysis.Complexity, req.TransactionValue)

	if err := run.stage(ctx, StateAnalyzing, "\U0001F50D Analysing Transaction Profile",
		fmt.Sprintf("Evaluating %s for %s (%s value range)", req.TransactionType, req.ClientName, req.TransactionValue),
		10); err != nil {
		return err
	}

	if err := run.stage(ctx, StateRiskScan, "⚠️ Risk Factor Analysis",
		fmt.Sprintf("Transaction complexity: %s | Key risks: %s",
			strings.ToUpper(analysis.Complexity), prefixList(analysis.RiskFactors)),
		25); err != nil {
		return err
	}

	if err := run.stage(ctx, StateFeeCalc, "\U0001F4B0 Fee Structure Optimisation",
		fmt.Sprintf("Senior Partner: S$%d/hr | Associates: S$%d/hr | Est: S$%sk",
			rates.SeniorRate, rates.AssociateRate, rates.EstimateRange),
		35); err != nil {
		return err
	}

	if err := run.stage(ctx, StateComplianceNote, "\U0001F1F8\U0001F1EC Singapore Law Compliance",
		"Applying Law Society requirements, PDPA provisions, and SIAC arbitration clauses",
		45); err != nil {
		return err
	}

	if err := run.stage(ctx, StateClauseSelect, "\U0001F4CB Intelligent Clause Selection",
		fmt.Sprintf("Adding: %s", countedList(analysis.RecommendedClauses)),
		55); err != nil {
		return err
	}

	content, err := run.generate(ctx, req, analysis, rates)
	if err != nil {
		return err
	}

	if err := run.stage(ctx, StateReviewing, "⚖️ Legal Review & Enhancement",
		"Ensuring partner-level sophistication and Singapore compliance",
		80); err != nil {
		return err
	}

	if err := run.stage(ctx, StateValidating, "\U0001F3AF Final Quality Assurance",
		"Validating risk coverage, fee accuracy, and professional standards",
		95); err != nil {
		return err
	}

	if err := run.stage(ctx, StateComplete, "✅ Generation Complete - Partner-Level Quality Achieved",
		"\U0001F389 Professional engagement letter ready! | ⏰ Time saved: 43.5 minutes | \U0001F4B0 Cost saved: S$225 | \U0001F3AF Compliance: 100%",
		100); err != nil {
		return err
	}

	run.seq++
	if err := run.emit(Frame{Type: "content", Seq: run.seq, Content: content}); err != nil {
		return fmt.Errorf("failed to emit content frame: %w", err)
	}

	run.seq++
	if err := run.emit(Frame{
		Type:    "complete",
		Seq:     run.seq,
		Message: "Generation complete!",
		Analysis: &Summary{
			Complexity:  analysis.Complexity,
			RiskFactors: len(analysis.RiskFactors),
			TimeSaved:   "43.5 minutes",
			CostSaved:   "S$225",
		},
	}); err != nil {
		return fmt.Errorf("failed to emit complete frame: %w", err)
	}

	return nil
}

// generate covers the Generating state: demo fixture, then letter cache,
// then a live provider call. Provider errors degrade to the boilerplate
// letter so the demo never dead-ends; only cancellation aborts the relay.
func (run *relayRun) generate(ctx context.Context, req *model.LetterRequest, analysis model.AnalysisResult, rates model.RateCard) (string, error) {
	r := run.relay

	if scenario, ok := r.demos.MatchClient(req.ClientName); ok {
		if err := run.stage(ctx, StateGenerating, "⚡ Demo Mode - Instant Professional Content",
			"Using pre-optimised engagement letter for demonstration", 65); err != nil {
			return "", err
		}
		return scenario.SampleContent, nil
	}

	fingerprint, err := LetterFingerprint(req)
	if err != nil {
		return "", err
	}

	if cached, ok := r.letters.Get(fingerprint); ok {
		if err := run.stage(ctx, StateGenerating, "⚡ Using Optimised Intelligence",
			"Leveraging pre-computed analysis for instant generation", 65); err != nil {
			return "", err
		}
		return string(cached), nil
	}

	if err := run.stage(ctx, StateGenerating, "\U0001F9E0 Applying Legal Intelligence",
		"Generating sophisticated content using transaction-specific analysis", 65); err != nil {
		return "", err
	}

	prompt := BuildPrompt(req, analysis, rates)
	content, err := r.provider.Complete(ctx, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return "", run.fail(ctx.Err())
		}
		logger.Warn(ctx, "letter generation failed, using fallback content", "error", err)
		return FallbackLetter(req, analysis, rates), nil
	}

	r.letters.Put(fingerprint, []byte(content))
	return content, nil
}

// stage emits one reasoning frame for state and then observes the pacing
// pause. A cancellation before the Generating state means the client is
// gone, so the relay aborts without a terminal frame.
func (run *relayRun) stage(ctx context.Context, state State, label, detail string, progress int) error {
	run.seq++
	frame := Frame{
		Type:     "reasoning",
		Seq:      run.seq,
		Stage:    label,
		Detail:   detail,
		Progress: progress,
	}
	if err := run.emit(frame); err != nil {
		return fmt.Errorf("failed to emit stage frame: %w", err)
	}
	return run.pause(ctx, state)
}

func (run *relayRun) pause(ctx context.Context, state State) error {
	delay := run.relay.pacing[state]
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// fail emits the terminal error frame, best effort, and returns cause.
func (run *relayRun) fail(cause error) error {
	run.seq++
	_ = run.emit(Frame{
		Type:    "error",
		Seq:     run.seq,
		Message: "Letter generation was interrupted. Please try again.",
	})
	return cause
}

// prefixList shows the first two items and hints at the rest.
func prefixList(items []string) string {
	if len(items) == 0 {
		return "none identified"
	}
	head := items
	if len(head) > 2 {
		head = head[:2]
	}
	s := strings.Join(head, ", ")
	if len(items) > 2 {
		s += ", and others"
	}
	return s
}

// countedList shows the first two items plus a remainder count.
func countedList(items []string) string {
	if len(items) == 0 {
		return "standard engagement provisions"
	}
	head := items
	if len(head) > 2 {
		head = head[:2]
	}
	s := strings.Join(head, ", ")
	if len(items) > 2 {
		s += fmt.Sprintf(", +%d more", len(items)-2)
	}
	return s
}
