package service

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mathflow/backend/internal/answer"
	"mathflow/backend/internal/classifier"
	apperrors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/llm"
	"mathflow/backend/internal/model"
	"mathflow/backend/internal/prompt"
	"mathflow/backend/internal/repository"
)

// Sampling parameters for the two prompt modes.
const (
	conversationTemperature = 0.7
	conversationMaxTokens   = 512

	mathTemperature = 0.8
	mathMaxTokens   = 2048
	mathTopP        = 0.95
)

// SettingsReader supplies the current runtime settings.
type SettingsReader interface {
	Get(ctx context.Context) (*Settings, error)
}

// TutorOptions holds the static knobs of the orchestrator.
type TutorOptions struct {
	// SampleTimeout bounds each reasoning call. A timeout counts as a failed sample.
	SampleTimeout time.Duration
	// Defaults apply when settings cannot be read.
	Defaults Settings
}

// TutorService runs OCR, classification, prompting, sampling and
// normalization for one problem.
type TutorService struct {
	reasoner   llm.Reasoner
	recognizer llm.Recognizer
	classifier *classifier.Classifier
	settings   SettingsReader
	journal    repository.JournalRepository
	opts       TutorOptions
}

// NewTutorService wires the collaborators. journal may be nil.
func NewTutorService(
	reasoner llm.Reasoner,
	recognizer llm.Recognizer,
	cls *classifier.Classifier,
	settings SettingsReader,
	journal repository.JournalRepository,
	opts TutorOptions,
) *TutorService {
	if opts.SampleTimeout <= 0 {
		opts.SampleTimeout = 60 * time.Second
	}
	if opts.Defaults.SampleCount <= 0 {
		opts.Defaults.SampleCount = 3
	}
	if opts.Defaults.SelectionStrategy == "" {
		opts.Defaults.SelectionStrategy = answer.StrategyFirst
	}
	return &TutorService{
		reasoner:   reasoner,
		recognizer: recognizer,
		classifier: cls,
		settings:   settings,
		journal:    journal,
		opts:       opts,
	}
}

// Process answers one problem. It fails with ErrOCREmpty when an image yields
// no text, and with a wrapped provider error when OCR or the single
// conversational call fails. Failed math samples are skipped; when all of
// them fail the apology answer is returned.
func (s *TutorService) Process(ctx context.Context, req *model.ProblemRequest) (result *model.StructuredAnswer, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic while processing problem", "panic", r, "stack", string(debug.Stack()))
			result = nil
			err = fmt.Errorf("processing problem panicked: %v: %w", r, apperrors.ErrInternal)
		}
	}()
	return s.process(ctx, req)
}

func (s *TutorService) process(ctx context.Context, req *model.ProblemRequest) (*model.StructuredAnswer, error) {
	start := time.Now()
	entry := &model.JournalEntry{Source: model.SourceText}

	problem := req.Input
	if req.IsImage && req.ImageData != nil {
		entry.Source = model.SourceImage
		text, err := s.recognizer.ExtractLatex(ctx, *req.ImageData)
		if err != nil {
			return nil, fmt.Errorf("could not read problem image: %w", err)
		}
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("image produced no text: %w", apperrors.ErrOCREmpty)
		}
		problem = text
	}
	entry.Problem = problem

	settings := s.currentSettings(ctx)
	rule, isMath := s.classifier.Match(problem)
	entry.MatchedRule = rule

	var result model.StructuredAnswer
	if !isMath {
		entry.Mode = model.ModeConversation
		entry.SamplesRequested = 1
		raw, err := s.complete(ctx, &llm.CompletionRequest{
			Model:       settings.ReasoningModel,
			Messages:    prompt.Build(prompt.ModeConversation, req.History, problem),
			Temperature: conversationTemperature,
			MaxTokens:   conversationMaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("conversation reply failed: %w", err)
		}
		entry.SamplesSucceeded = 1
		result = model.EmptyAnswer()
		result.Explanation = raw
	} else {
		entry.Mode = model.ModeMath
		entry.SamplesRequested = settings.SampleCount
		candidates := s.sample(ctx, settings, prompt.Build(prompt.ModeMath, req.History, problem))
		entry.SamplesSucceeded = len(candidates)

		idx, ok := answer.Select(settings.SelectionStrategy, candidates)
		if ok {
			result = candidates[idx]
		} else {
			slog.Warn("All samples failed, returning apology", "samples", settings.SampleCount)
			entry.Fallback = true
			result = answer.ApologyAnswer()
		}
	}

	entry.DurationMs = time.Since(start).Milliseconds()
	s.record(ctx, entry)
	return &result, nil
}

// ExtractLatex returns the LaTeX read from an image, possibly empty.
func (s *TutorService) ExtractLatex(ctx context.Context, image model.ImagePayload) (string, error) {
	text, err := s.recognizer.ExtractLatex(ctx, image)
	if err != nil {
		return "", fmt.Errorf("latex extraction failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// sample issues the math calls concurrently and returns the successful
// answers in call order.
func (s *TutorService) sample(ctx context.Context, settings *Settings, msgs []llm.Message) []model.StructuredAnswer {
	results := make([]*model.StructuredAnswer, settings.SampleCount)

	var eg errgroup.Group
	for i := range results {
		eg.Go(func() error {
			raw, err := s.completeSafe(ctx, &llm.CompletionRequest{
				Model:       settings.ReasoningModel,
				Messages:    msgs,
				Temperature: mathTemperature,
				MaxTokens:   mathMaxTokens,
				TopP:        mathTopP,
			})
			if err != nil {
				slog.Warn("Sample generation failed", "sample", i, "error", err)
				return nil
			}
			a, parsed := answer.FromRaw(raw)
			if !parsed {
				slog.Info("Sample was not JSON, using raw text", "sample", i)
			}
			results[i] = &a
			return nil
		})
	}
	_ = eg.Wait()

	out := make([]model.StructuredAnswer, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// completeSafe turns a panic in the reasoner into an error so one bad
// sample cannot take down the process.
func (s *TutorService) completeSafe(ctx context.Context, req *llm.CompletionRequest) (raw string, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic in reasoning call", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("reasoning call panicked: %v: %w", r, apperrors.ErrInternal)
		}
	}()
	return s.complete(ctx, req)
}

func (s *TutorService) complete(ctx context.Context, req *llm.CompletionRequest) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, s.opts.SampleTimeout)
	defer cancel()
	return s.reasoner.Complete(cctx, req)
}

func (s *TutorService) currentSettings(ctx context.Context) *Settings {
	defaults := s.opts.Defaults
	if s.settings == nil {
		return &defaults
	}
	current, err := s.settings.Get(ctx)
	if err != nil {
		slog.Warn("Could not load settings, using defaults", "error", err)
		return &defaults
	}
	if current.SampleCount <= 0 {
		current.SampleCount = defaults.SampleCount
	}
	if current.ReasoningModel == "" {
		current.ReasoningModel = defaults.ReasoningModel
	}
	return current
}

// record writes the journal entry without letting failures reach the caller.
func (s *TutorService) record(ctx context.Context, entry *model.JournalEntry) {
	if s.journal == nil {
		return
	}
	if err := s.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		slog.Error("Failed to record journal entry", "error", err, "mode", entry.Mode)
	}
}
