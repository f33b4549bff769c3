// Package synthesis turns a job's per-agent outcomes into its result
// artifact: namespaced field merge for ingest and management jobs,
// canonically ordered bullets plus an LLM summary for query jobs, and
// a visualization spec when spatial data is present.
package synthesis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/siftstack/sift/pkg/agent"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/models"
	"github.com/siftstack/sift/pkg/plan"
	"github.com/siftstack/sift/pkg/tool"
)

var (
	// ErrNoViableAgents means every agent in the job failed; the job is
	// failed with this cause.
	ErrNoViableAgents = errors.New("no agent produced output")

	// ErrSynthesisRefused means the partial result set was too thin to
	// stand behind: the synthesizer declines and the job fails.
	ErrSynthesisRefused = errors.New("synthesis refused the partial result set")
)

const summarySystemPrompt = `You summarize analyst findings. Given a set of
bullet-point insights, respond with a plain-text summary of two to three
sentences. Do not repeat the bullets verbatim and do not invent facts
beyond them.`

// Artifact is the synthesized result, ready to persist.
type Artifact struct {
	Fields        map[string]any
	Bullets       []models.Bullet
	Summary       string
	Visualization *models.VisualizationSpec
	AgentStatuses map[string]models.AgentStatus
}

// Synthesizer builds artifacts from outcomes. The completer serves the
// query summary call only; ingest synthesis is pure.
type Synthesizer struct {
	llm tool.Completer
	cfg *config.LLMConfig
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(llm tool.Completer, cfg *config.LLMConfig) *Synthesizer {
	if cfg == nil {
		panic("NewSynthesizer: cfg must not be nil")
	}
	return &Synthesizer{llm: llm, cfg: cfg}
}

// Synthesize validates the outcome set and produces the artifact for
// the job's class. Returns ErrNoViableAgents when nothing succeeded and
// ErrSynthesisRefused when the partial set is unusable.
func (s *Synthesizer) Synthesize(ctx context.Context, class config.AgentClass, eplan *plan.ExecutionPlan, outcomes []agent.Outcome) (*Artifact, error) {
	if err := Validate(outcomes); err != nil {
		return nil, err
	}

	statuses := make(map[string]models.AgentStatus, len(outcomes))
	ok := 0
	for _, o := range outcomes {
		status := models.AgentStatus{Status: string(o.Status)}
		if o.Status != agent.StatusOK {
			status.Error = o.ErrorMessage
		} else {
			ok++
		}
		statuses[o.AgentKey] = status
	}
	if ok == 0 {
		return nil, fmt.Errorf("%w: all %d agents failed", ErrNoViableAgents, len(outcomes))
	}

	artifact := &Artifact{AgentStatuses: statuses}

	switch class {
	case config.AgentClassQuery:
		bullets, hasData := formatBullets(eplan, outcomes)
		if !hasData {
			return nil, fmt.Errorf("%w: every perspective came back empty", ErrSynthesisRefused)
		}
		artifact.Bullets = bullets
		artifact.Summary = s.summarize(ctx, bullets)
		artifact.Visualization = buildVisualization(outcomes)

	default:
		fields := mergeFields(outcomes)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: merged artifact is empty", ErrSynthesisRefused)
		}
		artifact.Fields = fields
	}

	return artifact, nil
}

// Validate runs the cross-agent consistency checks before synthesis.
func Validate(outcomes []agent.Outcome) error {
	if len(outcomes) == 0 {
		return ErrNoViableAgents
	}
	seen := make(map[string]bool, len(outcomes))
	for _, o := range outcomes {
		if o.AgentKey == "" {
			return fmt.Errorf("outcome without agent key")
		}
		if seen[o.AgentKey] {
			return fmt.Errorf("duplicate outcome for agent %q", o.AgentKey)
		}
		seen[o.AgentKey] = true
	}
	return nil
}

// summarize runs the dedicated summary call. A summary failure never
// fails the job; the bullets stand on their own.
func (s *Synthesizer) summarize(ctx context.Context, bullets []models.Bullet) string {
	if s.llm == nil {
		return ""
	}
	lines := make([]string, 0, len(bullets))
	for _, b := range bullets {
		lines = append(lines, "- "+b.Text)
	}
	resp, err := s.llm.Complete(ctx, tool.CompletionRequest{
		System: summarySystemPrompt,
		User:   strings.Join(lines, "\n"),
		Model:  s.cfg.ResolvedSummaryModel(),
	})
	if err != nil {
		slog.Warn("Summary call failed, returning bullets without summary", "error", err)
		return ""
	}
	return strings.TrimSpace(resp)
}
