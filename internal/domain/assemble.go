package domain

import "math/rand"

// Assembler turns raw source questions into client-facing questions.
type Assembler struct {
	shuffle func(n int, swap func(i, j int))
}

// NewAssembler returns an Assembler. With shuffleAnswers the answer order is
// randomized per question; otherwise the correct answer comes first.
func NewAssembler(shuffleAnswers bool) *Assembler {
	a := &Assembler{}
	if shuffleAnswers {
		a.shuffle = rand.Shuffle
	}
	return a
}

// Assemble never fails; an empty input yields an empty, non-nil slice.
func (a *Assembler) Assemble(raw []RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, rq := range raw {
		answers := make([]Answer, 0, len(rq.IncorrectAnswers)+1)
		answers = append(answers, Answer{Text: rq.CorrectAnswer, IsCorrect: true})
		for _, incorrect := range rq.IncorrectAnswers {
			answers = append(answers, Answer{Text: incorrect, IsCorrect: false})
		}
		if a.shuffle != nil {
			a.shuffle(len(answers), func(i, j int) {
				answers[i], answers[j] = answers[j], answers[i]
			})
		}

		questions = append(questions, Question{
			Text:    rq.Question,
			Type:    rq.Type,
			Answers: answers,
		})
	}
	return questions
}
