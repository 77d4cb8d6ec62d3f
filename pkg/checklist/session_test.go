package checklist

import (
	"testing"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AnswersMatchQuestions(t *testing.T) {
	questions := []models.Question{
		{SourceRow: 18, Text: "Uno."},
		{SourceRow: 19, Text: "Dos."},
		{SourceRow: 25, Text: "Tres."},
	}
	s := NewSession(questions)
	require.NotEmpty(t, s.ID)

	require.NoError(t, s.Set(1, models.Answer{Result: models.ResultFail, Comment: "sucio"}))

	answers := s.Answers()
	require.Len(t, answers, len(questions))
	assert.Equal(t, models.ResultUnset, answers[0].Result)
	assert.Equal(t, models.ResultFail, answers[1].Result)
	assert.Equal(t, "sucio", answers[1].Comment)
	assert.Equal(t, 1, answers[1].QuestionIndex)
	assert.Equal(t, 2, answers[2].QuestionIndex)
}

func TestSession_SetOutOfRange(t *testing.T) {
	s := NewSession([]models.Question{{Text: "Uno."}})
	assert.ErrorIs(t, s.Set(1, models.Answer{}), ErrQuestionIndex)
	assert.ErrorIs(t, s.Set(-1, models.Answer{}), ErrQuestionIndex)
}

func TestSession_ReindexesQuestions(t *testing.T) {
	s := NewSession([]models.Question{{Index: 7, Text: "a"}, {Index: 9, Text: "b"}})
	assert.Equal(t, 0, s.Questions[0].Index)
	assert.Equal(t, 1, s.Questions[1].Index)
}
