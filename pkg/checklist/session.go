package checklist

import (
	"fmt"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/google/uuid"
)

// Session holds the answers of one form fill, keyed by question index.
type Session struct {
	ID        string
	Questions []models.Question

	answers map[int]models.Answer
}

// NewSession starts a session over questions. Every question begins Unset.
func NewSession(questions []models.Question) *Session {
	qs := make([]models.Question, len(questions))
	copy(qs, questions)
	for i := range qs {
		qs[i].Index = i
	}
	return &Session{
		ID:        uuid.NewString(),
		Questions: qs,
		answers:   make(map[int]models.Answer, len(qs)),
	}
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.Questions)
}

// Set records the answer for the question at index.
func (s *Session) Set(index int, answer models.Answer) error {
	if index < 0 || index >= len(s.Questions) {
		return fmt.Errorf("%w: %d (session has %d)", ErrQuestionIndex, index, len(s.Questions))
	}
	answer.QuestionIndex = index
	s.answers[index] = answer
	return nil
}

// Answer returns the answer for index, Unset when nothing was recorded.
func (s *Session) Answer(index int) models.Answer {
	if a, ok := s.answers[index]; ok {
		return a
	}
	return models.Answer{QuestionIndex: index}
}

// Answers returns one answer per question in question order.
func (s *Session) Answers() []models.Answer {
	out := make([]models.Answer, len(s.Questions))
	for i := range s.Questions {
		out[i] = s.Answer(i)
	}
	return out
}
