// Package diagnosis turns a study survey into a diagnosis report, either via
// an external completion service or via deterministic fallback rules.
package diagnosis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/minsukim/studydiag/internal/model"
)

// Synthesizer produces diagnosis reports. A nil provider means fallback-only
// operation (no completion credential configured).
type Synthesizer struct {
	provider Provider
}

// NewSynthesizer creates a Synthesizer. provider may be nil.
func NewSynthesizer(provider Provider) *Synthesizer {
	return &Synthesizer{provider: provider}
}

// Produce returns a diagnosis report for the given input. It never fails:
// a missing provider, a failed call, or an unusable reply all resolve to the
// deterministic fallback. The urgency level of the returned report is always
// the deterministic policy value, even when the rest of the report came from
// the completion service.
func (s *Synthesizer) Produce(ctx context.Context, in model.DiagnosisInput) model.DiagnosisReport {
	if s == nil || s.provider == nil {
		return Fallback(in)
	}

	raw, err := s.provider.Complete(ctx, systemPrompt, BuildUserPrompt(in))
	if err != nil {
		slog.Warn("diagnosis completion failed, using fallback", "error", err)
		return Fallback(in)
	}

	var report model.DiagnosisReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		slog.Warn("unparseable diagnosis reply, using fallback", "error", err)
		return Fallback(in)
	}
	if !usable(report) {
		slog.Warn("incomplete diagnosis reply, using fallback")
		return Fallback(in)
	}

	report.UrgencyLevel = urgencyFor(in)
	return report
}

// usable rejects replies that parsed as JSON but miss the report's core
// contract: a non-empty assessment and non-empty strength/weakness lists.
func usable(r model.DiagnosisReport) bool {
	return r.OverallAssessment != "" &&
		len(r.StrengthsAndWeaknesses.Strengths) > 0 &&
		len(r.StrengthsAndWeaknesses.Weaknesses) > 0
}
