package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mathflow/backend/internal/answer"
	"mathflow/backend/internal/classifier"
	apperrors "mathflow/backend/internal/errors"
	"mathflow/backend/internal/llm"
	"mathflow/backend/internal/llm/mocks"
	"mathflow/backend/internal/model"
	"mathflow/backend/internal/prompt"
	"mathflow/backend/internal/repository"
	"mathflow/backend/internal/service"
)

const mathReply = "Voici :\n```json\n" + `{"latex":"x^2-4=0","solution":["(x-2)(x+2)=0","x=2 ou x=-2"],"explanation":"Identité remarquable.","exercises":[{"difficulty":"facile","problem":"x^2=9"},{"difficulty":"moyen","problem":"x^2-5x+6=0"},{"difficulty":"difficile","problem":"x^4-16=0"}],"followUp":"Et x^2=1 ?"}` + "\n```"

type staticSettings struct {
	settings *service.Settings
	err      error
}

func (s staticSettings) Get(context.Context) (*service.Settings, error) {
	if s.err != nil {
		return nil, s.err
	}
	cp := *s.settings
	return &cp, nil
}

type reasonerFunc func(ctx context.Context, req *llm.CompletionRequest) (string, error)

func (f reasonerFunc) Complete(ctx context.Context, req *llm.CompletionRequest) (string, error) {
	return f(ctx, req)
}

type memJournal struct {
	mu      sync.Mutex
	entries []*model.JournalEntry
	err     error
}

func (j *memJournal) Record(_ context.Context, e *model.JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, e)
	return nil
}

func (j *memJournal) ListRecent(context.Context, int) ([]*model.JournalEntry, error) {
	return j.entries, nil
}

func (j *memJournal) Get(context.Context, string) (*model.JournalEntry, error) {
	return nil, nil
}

func defaultSettings() *service.Settings {
	return &service.Settings{ReasoningModel: "openai/gpt-oss-20b", SampleCount: 3, SelectionStrategy: "first"}
}

func newTutor(reasoner llm.Reasoner, recognizer llm.Recognizer, settings service.SettingsReader, journal *memJournal) *service.TutorService {
	var repo repository.JournalRepository
	if journal != nil {
		repo = journal
	}
	return service.NewTutorService(
		reasoner,
		recognizer,
		classifier.New(classifier.DefaultPolicy()),
		settings,
		repo,
		service.TutorOptions{SampleTimeout: time.Second, Defaults: *defaultSettings()},
	)
}

func isMathCall(req *llm.CompletionRequest) bool {
	return req.Temperature == 0.8 && req.MaxTokens == 2048 && req.TopP == 0.95 &&
		req.Model == "openai/gpt-oss-20b" &&
		len(req.Messages) > 0 && req.Messages[0].Content == prompt.SystemPromptMath
}

func TestTutorService_Process_Math(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Three samples with the math prompt", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		journal := &memJournal{}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, journal)

		reasoner.On("Complete", mock.Anything, mock.MatchedBy(isMathCall)).Return(mathReply, nil).Times(3)

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "Résoudre x^2 - 4 = 0", History: []model.ConversationTurn{}})

		require.NoError(t, err)
		assert.Equal(t, "x^2-4=0", got.Latex)
		assert.NotEmpty(t, got.Solution)
		assert.Len(t, got.Exercises, 3)
		require.Len(t, journal.entries, 1)
		assert.Equal(t, model.ModeMath, journal.entries[0].Mode)
		assert.Equal(t, classifier.RuleOperands, journal.entries[0].MatchedRule)
		assert.Equal(t, 3, journal.entries[0].SamplesSucceeded)
		assert.False(t, journal.entries[0].Fallback)
	})

	t.Run("All samples fail - Apology, not an error", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		journal := &memJournal{}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, journal)

		reasoner.On("Complete", mock.Anything, mock.Anything).Return("", apperrors.ErrProviderTransport).Times(3)

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "2+2"})

		require.NoError(t, err)
		assert.Equal(t, answer.ApologyAnswer(), *got)
		require.Len(t, journal.entries, 1)
		assert.True(t, journal.entries[0].Fallback)
		assert.Equal(t, 0, journal.entries[0].SamplesSucceeded)
	})

	t.Run("Failed samples are skipped", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		journal := &memJournal{}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, journal)

		reasoner.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
		reasoner.On("Complete", mock.Anything, mock.Anything).Return(mathReply, nil).Twice()

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "2+2"})

		require.NoError(t, err)
		assert.Equal(t, "x^2-4=0", got.Latex)
		assert.Equal(t, 2, journal.entries[0].SamplesSucceeded)
	})

	t.Run("Non-JSON sample becomes the explanation", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: &service.Settings{ReasoningModel: "openai/gpt-oss-20b", SampleCount: 1, SelectionStrategy: "first"}}, nil)

		reasoner.On("Complete", mock.Anything, mock.Anything).Return("La réponse est 4.", nil).Once()

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "calculer 2+2"})

		require.NoError(t, err)
		assert.Equal(t, answer.Fallback("La réponse est 4."), *got)
	})

	t.Run("Vote picks the majority answer", func(t *testing.T) {
		var calls atomic.Int32
		reasoner := reasonerFunc(func(context.Context, *llm.CompletionRequest) (string, error) {
			if calls.Add(1) == 2 {
				return `{"latex":"x=3","solution":["autre"]}`, nil
			}
			return `{"latex":"x=2","solution":["s"]}`, nil
		})
		settings := &service.Settings{ReasoningModel: "m", SampleCount: 3, SelectionStrategy: "vote"}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: settings}, nil)

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "x+1=3"})

		require.NoError(t, err)
		assert.Equal(t, "x=2", got.Latex)
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("Sample timeout counts as a failed sample", func(t *testing.T) {
		reasoner := reasonerFunc(func(ctx context.Context, _ *llm.CompletionRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})
		tutor := service.NewTutorService(reasoner, mocks.NewMockRecognizer(t), classifier.New(classifier.DefaultPolicy()),
			staticSettings{settings: defaultSettings()}, nil,
			service.TutorOptions{SampleTimeout: 20 * time.Millisecond, Defaults: *defaultSettings()})

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "5*3"})

		require.NoError(t, err)
		assert.Equal(t, answer.Apology, got.Explanation)
	})

	t.Run("Unreadable settings fall back to defaults", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{err: errors.New("db locked")}, nil)

		reasoner.On("Complete", mock.Anything, mock.MatchedBy(isMathCall)).Return(mathReply, nil).Times(3)

		_, err := tutor.Process(ctx, &model.ProblemRequest{Input: "2*x = 4"})
		require.NoError(t, err)
	})

	t.Run("Journal failure does not affect the answer", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		journal := &memJournal{err: errors.New("disk full")}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, journal)

		reasoner.On("Complete", mock.Anything, mock.Anything).Return(mathReply, nil).Times(3)

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "2+2"})
		require.NoError(t, err)
		assert.Equal(t, "x^2-4=0", got.Latex)
	})
}

func TestTutorService_Process_Conversation(t *testing.T) {
	ctx := context.Background()
	history := []model.ConversationTurn{{Role: "user", Content: "Salut"}, {Role: "assistant", Content: "Bonjour !"}}

	t.Run("Success - Single call, explanation only", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		journal := &memJournal{}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, journal)

		reasoner.On("Complete", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			return req.Temperature == 0.7 && req.MaxTokens == 512 && req.TopP == 0 &&
				len(req.Messages) == 4 &&
				req.Messages[0].Content == prompt.SystemPromptSimple &&
				req.Messages[3].Content == "bonjour, comment vas-tu?"
		})).Return("Bonjour ! Pose-moi ta question.", nil).Once()

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "bonjour, comment vas-tu?", History: history})

		require.NoError(t, err)
		assert.Equal(t, "Bonjour ! Pose-moi ta question.", got.Explanation)
		assert.Equal(t, "", got.Latex)
		assert.Equal(t, []string{}, got.Solution)
		assert.Equal(t, []model.Exercise{}, got.Exercises)
		assert.Equal(t, "", got.FollowUp)
		require.Len(t, journal.entries, 1)
		assert.Equal(t, model.ModeConversation, journal.entries[0].Mode)
		assert.Equal(t, "", journal.entries[0].MatchedRule)
	})

	t.Run("Failure - Provider error is returned", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, nil)

		reasoner.On("Complete", mock.Anything, mock.Anything).Return("", apperrors.ErrProviderTransport).Once()

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "Merci beaucoup"})
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrProviderTransport)
	})
}

func TestTutorService_Process_Image(t *testing.T) {
	ctx := context.Background()
	image := &model.ImagePayload{Data: "aGVsbG8=", MimeType: "image/png"}

	t.Run("Empty OCR fails before any reasoning call", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		recognizer := mocks.NewMockRecognizer(t)
		journal := &memJournal{}
		tutor := newTutor(reasoner, recognizer, staticSettings{settings: defaultSettings()}, journal)

		recognizer.On("ExtractLatex", mock.Anything, *image).Return("  ", nil).Once()

		got, err := tutor.Process(ctx, &model.ProblemRequest{IsImage: true, ImageData: image})

		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrOCREmpty)
		reasoner.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
		assert.Empty(t, journal.entries)
	})

	t.Run("OCR provider error is not an OCR-empty error", func(t *testing.T) {
		recognizer := mocks.NewMockRecognizer(t)
		tutor := newTutor(mocks.NewMockReasoner(t), recognizer, staticSettings{settings: defaultSettings()}, nil)

		recognizer.On("ExtractLatex", mock.Anything, *image).Return("", apperrors.ErrProviderTransport).Once()

		_, err := tutor.Process(ctx, &model.ProblemRequest{IsImage: true, ImageData: image})
		assert.ErrorIs(t, err, apperrors.ErrProviderTransport)
		assert.NotErrorIs(t, err, apperrors.ErrOCREmpty)
	})

	t.Run("OCR text replaces the input", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		recognizer := mocks.NewMockRecognizer(t)
		journal := &memJournal{}
		tutor := newTutor(reasoner, recognizer, staticSettings{settings: defaultSettings()}, journal)

		recognizer.On("ExtractLatex", mock.Anything, *image).Return("\\int_0^1 x\\,dx", nil).Once()
		reasoner.On("Complete", mock.Anything, mock.MatchedBy(func(req *llm.CompletionRequest) bool {
			return req.Messages[len(req.Messages)-1].Content == "\\int_0^1 x\\,dx"
		})).Return(mathReply, nil).Times(3)

		_, err := tutor.Process(ctx, &model.ProblemRequest{Input: "ignored", IsImage: true, ImageData: image})

		require.NoError(t, err)
		assert.Equal(t, model.SourceImage, journal.entries[0].Source)
		assert.Equal(t, "\\int_0^1 x\\,dx", journal.entries[0].Problem)
	})

	t.Run("isImage without payload uses the text input", func(t *testing.T) {
		reasoner := mocks.NewMockReasoner(t)
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, nil)

		reasoner.On("Complete", mock.Anything, mock.Anything).Return("Salut !", nil).Once()

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "Salut", IsImage: true})
		require.NoError(t, err)
		assert.Equal(t, "Salut !", got.Explanation)
	})
}

func TestTutorService_ExtractLatex(t *testing.T) {
	ctx := context.Background()
	image := model.ImagePayload{Data: "aGVsbG8=", MimeType: "image/png"}

	t.Run("Success", func(t *testing.T) {
		recognizer := mocks.NewMockRecognizer(t)
		tutor := newTutor(mocks.NewMockReasoner(t), recognizer, nil, nil)
		recognizer.On("ExtractLatex", ctx, image).Return(" \\frac{a}{b} ", nil).Once()

		latex, err := tutor.ExtractLatex(ctx, image)
		require.NoError(t, err)
		assert.Equal(t, "\\frac{a}{b}", latex)
	})

	t.Run("Failure", func(t *testing.T) {
		recognizer := mocks.NewMockRecognizer(t)
		tutor := newTutor(mocks.NewMockReasoner(t), recognizer, nil, nil)
		recognizer.On("ExtractLatex", ctx, image).Return("", errors.New("bad image")).Once()

		_, err := tutor.ExtractLatex(ctx, image)
		assert.Error(t, err)
	})
}

func TestTutorService_Process_Panics(t *testing.T) {
	ctx := context.Background()

	t.Run("A panicking sample counts as a failed sample", func(t *testing.T) {
		var calls atomic.Int32
		reasoner := reasonerFunc(func(ctx context.Context, req *llm.CompletionRequest) (string, error) {
			if calls.Add(1) == 1 {
				var m map[string]int
				m["boom"] = 1
			}
			return mathReply, nil
		})
		journal := &memJournal{}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, journal)

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "2+2"})

		require.NoError(t, err)
		assert.Equal(t, "x^2-4=0", got.Latex)
		require.Len(t, journal.entries, 1)
		assert.Equal(t, 2, journal.entries[0].SamplesSucceeded)
	})

	t.Run("Every sample panics - Apology", func(t *testing.T) {
		reasoner := reasonerFunc(func(context.Context, *llm.CompletionRequest) (string, error) {
			panic("provider exploded")
		})
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, nil)

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "2+2"})

		require.NoError(t, err)
		assert.Equal(t, answer.ApologyAnswer(), *got)
	})

	t.Run("Panic on the conversation path is an internal error", func(t *testing.T) {
		reasoner := reasonerFunc(func(context.Context, *llm.CompletionRequest) (string, error) {
			panic("provider exploded")
		})
		journal := &memJournal{}
		tutor := newTutor(reasoner, mocks.NewMockRecognizer(t), staticSettings{settings: defaultSettings()}, journal)

		got, err := tutor.Process(ctx, &model.ProblemRequest{Input: "Bonjour"})

		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, apperrors.ErrInternal))
		assert.Empty(t, journal.entries)
	})

	t.Run("Panic during OCR is an internal error", func(t *testing.T) {
		recognizer := mocks.NewMockRecognizer(t)
		recognizer.On("ExtractLatex", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			panic("decoder exploded")
		}).Return("", nil).Once()
		tutor := newTutor(mocks.NewMockReasoner(t), recognizer, staticSettings{settings: defaultSettings()}, nil)

		_, err := tutor.Process(ctx, &model.ProblemRequest{
			IsImage:   true,
			ImageData: &model.ImagePayload{Data: "aGVsbG8=", MimeType: "image/png"},
		})

		assert.True(t, errors.Is(err, apperrors.ErrInternal))
	})
}
