// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires recognizers, validation, conflict resolution and
// redaction into the detection pipeline.
package core

import (
	"context"
	"time"

	"skyredact/internal/config"
	"skyredact/internal/detector"
	"skyredact/internal/ml"
	"skyredact/internal/observability"
	"skyredact/internal/recognizers/airline"
	"skyredact/internal/recognizers/cjkname"
	"skyredact/internal/recognizers/dates"
	"skyredact/internal/recognizers/email"
	"skyredact/internal/recognizers/govid"
	"skyredact/internal/recognizers/paymentcard"
	"skyredact/internal/recognizers/personname"
	"skyredact/internal/recognizers/phone"
	"skyredact/internal/redact"
	"skyredact/internal/resilience"
	"skyredact/internal/resolve"
	"skyredact/internal/validate"
)

// Finding is one accepted entity, reported in rune offsets.
type Finding struct {
	Kind   detector.EntityKind `json:"kind"`
	Text   string              `json:"text"`
	Start  int                 `json:"start"`
	End    int                 `json:"end"`
	Score  float64             `json:"score"`
	Source detector.DetectorID `json:"source"`
}

// Result carries everything one pipeline run produced.
type Result struct {
	Original string    `json:"-"`
	Redacted string    `json:"redacted"`
	Findings []Finding `json:"findings"`
}

// planner turns resolved spans into redacted text.
type planner interface {
	BuildPlan(spans []detector.Span) redact.Plan
	Apply(text string, plan redact.Plan) (string, error)
}

// Engine runs the full pipeline. It is safe for concurrent use once built.
type Engine struct {
	recognizers  []detector.Recognizer
	models       []*ml.Detector
	breaker      *resilience.Breaker
	validator    *validate.Validator
	redactor     planner
	obs          *observability.StandardObserver
	minScore     float64
	modelTimeout time.Duration
}

// New builds an engine from configuration. Model slots without a configured
// path are skipped entirely.
func New(cfg *config.Config, obs *observability.StandardObserver) *Engine {
	if cfg == nil {
		cfg, _ = config.LoadConfig("")
	}

	e := &Engine{
		recognizers: []detector.Recognizer{
			phone.NewRecognizer(),
			airline.NewRecognizer(),
			personname.NewRecognizer(),
			cjkname.NewRecognizer(),
			email.NewRecognizer(),
			paymentcard.NewRecognizer(),
			govid.NewRecognizer(),
			dates.NewRecognizer(),
		},
		validator: validate.NewValidator(
			validate.WithWindow(cfg.Detection.ContextWindow),
			validate.WithExtraPNRBlacklist(cfg.Detection.ExtraPNRWords),
			validate.WithExtraPNRContext(cfg.Detection.ExtraPNRContext),
		),
		redactor:     redact.NewRedactor(buildTagTable(cfg)),
		obs:          obs,
		minScore:     cfg.Detection.MinScore,
		modelTimeout: time.Duration(cfg.Models.TimeoutMS) * time.Millisecond,
	}

	if cfg.Models.General.ModelPath != "" {
		e.models = append(e.models, ml.New(ml.Config{
			OrtLibraryPath: cfg.Models.OrtLibraryPath,
			ModelPath:      cfg.Models.General.ModelPath,
			TokenizerPath:  cfg.Models.General.TokenizerPath,
			Labels:         cfg.Models.General.Labels,
			MaxSeqLen:      cfg.Models.General.MaxSeqLen,
			Score:          cfg.Models.General.Score,
		}, obs))
	}
	if cfg.Models.Chinese.ModelPath != "" {
		e.models = append(e.models, ml.New(ml.Config{
			OrtLibraryPath: cfg.Models.OrtLibraryPath,
			ModelPath:      cfg.Models.Chinese.ModelPath,
			TokenizerPath:  cfg.Models.Chinese.TokenizerPath,
			Labels:         cfg.Models.Chinese.Labels,
			MaxSeqLen:      cfg.Models.Chinese.MaxSeqLen,
			Score:          cfg.Models.Chinese.Score,
			DropLatin:      true,
		}, obs))
	}
	if len(e.models) > 0 {
		bc := resilience.DefaultBreakerConfig("model")
		bc.OnStateChange = func(name string, from, to resilience.BreakerState) {
			obs.Warn("core", "circuit breaker %s: %s -> %s", name, from, to)
		}
		e.breaker = resilience.NewBreaker(bc)
	}

	return e
}

// buildTagTable merges config tag overrides over the defaults and strips
// kinds the config wants kept verbatim.
func buildTagTable(cfg *config.Config) map[detector.EntityKind]string {
	tags := make(map[detector.EntityKind]string, len(redact.DefaultTags))
	for k, v := range redact.DefaultTags {
		tags[k] = v
	}
	for kind, tag := range cfg.Redaction.Tags {
		tags[detector.EntityKind(kind)] = tag
	}
	for _, kind := range cfg.Redaction.Keep {
		delete(tags, detector.EntityKind(kind))
	}
	return tags
}

// Redact replaces detected entities with tags. It never fails: any internal
// error logs and returns the input unchanged so a pipeline outage cannot
// destroy customer messages.
func (e *Engine) Redact(text string) string {
	out, _, err := e.Run(context.Background(), text)
	if err != nil {
		e.obs.Error("core", "redaction failed, passing text through: %v", err)
		return text
	}
	return out
}

// Process runs detection and redaction, returning findings for reporting.
// Errors fall open the same way Redact does.
func (e *Engine) Process(text string) Result {
	redacted, spans, err := e.Run(context.Background(), text)
	if err != nil {
		e.obs.Error("core", "redaction failed, passing text through: %v", err)
		return Result{Original: text, Redacted: text}
	}

	runes := []rune(text)
	findings := make([]Finding, 0, len(spans))
	for _, s := range spans {
		findings = append(findings, Finding{
			Kind:   s.Kind,
			Text:   string(runes[s.Start:s.End]),
			Start:  s.Start,
			End:    s.End,
			Score:  s.Score,
			Source: s.Source,
		})
	}
	return Result{Original: text, Redacted: redacted, Findings: findings}
}

// Run is the error-returning pipeline core. Callers wanting fail-open
// behavior use Redact or Process instead.
func (e *Engine) Run(ctx context.Context, text string) (string, []detector.Span, error) {
	if text == "" {
		return "", nil, nil
	}
	done := e.obs.StartTiming("core", "redact")

	spans, err := e.analyze(ctx, text)
	if err != nil {
		done(false, nil)
		return "", nil, err
	}

	plan := e.redactor.BuildPlan(spans)
	out, err := e.redactor.Apply(text, plan)
	if err != nil {
		done(false, nil)
		return "", nil, err
	}
	out = redact.Normalize(out)

	done(true, map[string]any{"spans": len(spans), "chars": len(text)})
	return out, spans, nil
}

// analyze produces the final resolved span set in rune offsets.
func (e *Engine) analyze(ctx context.Context, text string) ([]detector.Span, error) {
	var candidates []detector.DetectorResult
	for _, r := range e.recognizers {
		candidates = append(candidates, r.Scan(text)...)
	}
	candidates = append(candidates, e.modelCandidates(ctx, text)...)

	idx := detector.NewRuneIndex(text)
	var spans []detector.Span
	for _, c := range candidates {
		if c.Score < e.minScore {
			continue
		}
		if !e.validator.Accept(c, text) {
			continue
		}
		span, err := idx.ToSpan(c)
		if err != nil {
			e.obs.Warn("core", "dropping candidate from %s: %v", c.Source, err)
			continue
		}
		spans = append(spans, span)
	}

	return resolve.Resolve(spans), nil
}

// modelCandidates queries the statistical detectors behind the circuit
// breaker. Model trouble degrades to pattern-only detection.
func (e *Engine) modelCandidates(ctx context.Context, text string) []detector.DetectorResult {
	if len(e.models) == 0 {
		return nil
	}

	var all []detector.DetectorResult
	for _, m := range e.models {
		if !m.Available() {
			continue
		}
		err := e.breaker.Execute(ctx, func(ctx context.Context) error {
			callCtx := ctx
			if e.modelTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, e.modelTimeout)
				defer cancel()
			}
			results, err := m.Detect(callCtx, text)
			if err != nil {
				return err
			}
			all = append(all, results...)
			return nil
		})
		if err != nil {
			if resilience.IsBreakerOpen(err) {
				// Logged by the state change callback; stay quiet per call.
				continue
			}
			e.obs.Warn("core", "model detection failed: %v", err)
		}
	}
	return all
}

// Close releases model resources.
func (e *Engine) Close() {
	for _, m := range e.models {
		m.Close()
	}
}
