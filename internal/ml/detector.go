// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ml runs an ONNX token-classification model to find entities the
// pattern recognizers cannot express, mainly free-form person names,
// organizations, locations and nationalities.
package ml

import (
	"context"
	"fmt"
	"os"
	"sync"
	"unicode"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"

	"skyredact/internal/detector"
	"skyredact/internal/observability"
)

const (
	defaultMaxSeqLen = 512
	defaultScore     = 0.85
)

// Config describes one model slot.
type Config struct {
	// OrtLibraryPath points at the onnxruntime shared library. Empty means
	// the loader default for the platform.
	OrtLibraryPath string
	// ModelPath is the token-classification ONNX model file.
	ModelPath string
	// TokenizerPath is the HuggingFace tokenizer.json next to the model.
	TokenizerPath string
	// Labels maps output class index to a BIO label such as "B-PER".
	Labels []string
	// MaxSeqLen caps the encoded sequence length. 0 means 512.
	MaxSeqLen int
	// Score assigned to model entities. 0 means 0.85.
	Score float64
	// DropLatin discards entities containing any Latin letter. The
	// Chinese model slot sets this so it never competes with the general
	// model over Latin text it was not trained on.
	DropLatin bool
}

// Detector wraps a tokenizer and an ONNX session behind the Recognizer
// surface. Initialization is lazy and a missing model makes the detector
// permanently unavailable instead of failing the pipeline.
type Detector struct {
	cfg Config
	obs *observability.StandardObserver

	initOnce sync.Once
	warnOnce sync.Once

	mu      sync.Mutex // serializes session.Run
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	ready   bool
}

var (
	ortEnvOnce sync.Once
	ortEnvErr  error
)

// initRuntime brings up the shared onnxruntime environment once per process.
func initRuntime(libPath string) error {
	ortEnvOnce.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		if !ort.IsInitialized() {
			ortEnvErr = ort.InitializeEnvironment()
		}
	})
	return ortEnvErr
}

// New builds a detector for one model slot. The model is not loaded until
// the first Detect call.
func New(cfg Config, obs *observability.StandardObserver) *Detector {
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = defaultMaxSeqLen
	}
	if cfg.Score <= 0 {
		cfg.Score = defaultScore
	}
	return &Detector{cfg: cfg, obs: obs}
}

// Name identifies results from this detector.
func (d *Detector) Name() detector.DetectorID {
	return detector.SourceModel
}

func (d *Detector) init() {
	d.initOnce.Do(func() {
		if d.cfg.ModelPath == "" || d.cfg.TokenizerPath == "" {
			return
		}
		if _, err := os.Stat(d.cfg.ModelPath); err != nil {
			d.warn("model %s not found, continuing without it", d.cfg.ModelPath)
			return
		}
		if err := initRuntime(d.cfg.OrtLibraryPath); err != nil {
			d.warn("onnxruntime unavailable: %v", err)
			return
		}
		tk, err := pretrained.FromFile(d.cfg.TokenizerPath)
		if err != nil {
			d.warn("load tokenizer %s: %v", d.cfg.TokenizerPath, err)
			return
		}
		session, err := ort.NewDynamicAdvancedSession(d.cfg.ModelPath,
			[]string{"input_ids", "attention_mask"}, []string{"logits"}, nil)
		if err != nil {
			d.warn("load model %s: %v", d.cfg.ModelPath, err)
			return
		}
		d.tk = tk
		d.session = session
		d.ready = true
	})
}

func (d *Detector) warn(format string, args ...any) {
	d.warnOnce.Do(func() {
		if d.obs != nil {
			d.obs.Warn("ml", format, args...)
		}
	})
}

// Available reports whether the model loaded. It triggers lazy init.
func (d *Detector) Available() bool {
	d.init()
	return d.ready
}

// Close releases the ONNX session.
func (d *Detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session != nil {
		d.session.Destroy()
		d.session = nil
		d.ready = false
	}
}

// Detect classifies text and returns entity results with byte offsets.
// An unavailable model yields no results and no error.
func (d *Detector) Detect(ctx context.Context, text string) ([]detector.DetectorResult, error) {
	if !d.Available() || text == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	en, err := d.tk.EncodeSingle(text, true)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	n := len(en.Ids)
	if n == 0 {
		return nil, nil
	}
	if n > d.cfg.MaxSeqLen {
		n = d.cfg.MaxSeqLen
	}

	ids := make([]int64, n)
	mask := make([]int64, n)
	for i := 0; i < n; i++ {
		ids[i] = int64(en.Ids[i])
		mask[i] = 1
	}

	labels, err := d.classify(ids, mask)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := make([]tokenLabel, 0, n)
	for i, raw := range labels {
		if i < len(en.SpecialTokenMask) && en.SpecialTokenMask[i] == 1 {
			continue
		}
		if i >= len(en.Offsets) || len(en.Offsets[i]) < 2 {
			continue
		}
		tokens = append(tokens, tokenLabel{
			raw:   raw,
			start: en.Offsets[i][0],
			end:   en.Offsets[i][1],
			score: d.cfg.Score,
		})
	}

	return d.toResults(text, mergeBIO(tokens)), nil
}

// classify runs the session and argmaxes the logits per token.
func (d *Detector) classify(ids, mask []int64) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	shape := ort.NewShape(1, int64(len(ids)))
	idTensor, err := ort.NewTensor(shape, ids)
	if err != nil {
		return nil, fmt.Errorf("input tensor: %w", err)
	}
	defer idTensor.Destroy()
	maskTensor, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, fmt.Errorf("mask tensor: %w", err)
	}
	defer maskTensor.Destroy()

	outputs := []ort.Value{nil}
	if err := d.session.Run([]ort.Value{idTensor, maskTensor}, outputs); err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}
	logitsTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected output type %T", outputs[0])
	}
	defer logitsTensor.Destroy()

	dims := logitsTensor.GetShape()
	if len(dims) != 3 || dims[0] != 1 {
		return nil, fmt.Errorf("unexpected logits shape %v", dims)
	}
	seqLen := int(dims[1])
	numLabels := int(dims[2])
	if numLabels != len(d.cfg.Labels) {
		return nil, fmt.Errorf("model emits %d classes, config names %d", numLabels, len(d.cfg.Labels))
	}

	logits := logitsTensor.GetData()
	if seqLen > len(ids) {
		seqLen = len(ids)
	}
	labels := make([]string, seqLen)
	for i := 0; i < seqLen; i++ {
		row := logits[i*numLabels : (i+1)*numLabels]
		best := 0
		for j := 1; j < numLabels; j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		labels[i] = d.cfg.Labels[best]
	}
	return labels, nil
}

// toResults converts merged rune-offset spans into byte-offset results,
// applying the Latin filter when configured.
func (d *Detector) toResults(text string, spans []entitySpan) []detector.DetectorResult {
	runes := []rune(text)
	runeToByte := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		runeToByte[i] = b
		b += len(string(r))
	}
	runeToByte[len(runes)] = len(text)

	var results []detector.DetectorResult
	for _, sp := range spans {
		if sp.start < 0 || sp.end > len(runes) || sp.start >= sp.end {
			continue
		}
		value := string(runes[sp.start:sp.end])
		if d.cfg.DropLatin && containsLatin(value) {
			continue
		}
		results = append(results, detector.DetectorResult{
			Text:        value,
			Start:       runeToByte[sp.start],
			End:         runeToByte[sp.end],
			Kind:        sp.kind,
			Score:       sp.score,
			Specificity: 1,
			Source:      detector.SourceModel,
		})
	}
	return results
}

// containsLatin reports whether s contains any Latin-script letter. A
// CJK-tuned model emitting Latin text is noise, and that includes
// mixed-script spans like a surname glued to a romanized given name.
func containsLatin(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}
