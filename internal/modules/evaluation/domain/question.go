package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	TypeTrueFalse = "verdadero_falso"
	OptionTrue    = "Verdadero"
	OptionFalse   = "Falso"
)

type Option struct {
	ID   string
	Text string
}

type Question struct {
	ID      string
	Text    string
	Type    string
	Options []Option
}

// Answer carries either the option text or, for true/false questions, a bool.
type Answer struct {
	QuestionID     string
	SelectedOption any
}

// NormalizeQuestion fills in the fixed options of a true/false question.
func NormalizeQuestion(q Question) Question {
	if q.Type == TypeTrueFalse {
		q.Options = []Option{{ID: "true", Text: OptionTrue}, {ID: "false", Text: OptionFalse}}
	}
	return q
}

// BuildAnswers resolves one choice per question. A choice is either an
// option text (case-insensitive) or its 1-based position.
func BuildAnswers(questions []Question, choices map[string]string) ([]Answer, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions to answer")
	}
	answers := make([]Answer, 0, len(questions))
	for _, q := range questions {
		raw, ok := choices[q.ID]
		if !ok || strings.TrimSpace(raw) == "" {
			return nil, fmt.Errorf("all questions must be answered: %s is missing", q.ID)
		}
		opt, ok := resolveOption(q, raw)
		if !ok {
			return nil, fmt.Errorf("question %s has no option %q", q.ID, raw)
		}
		var selected any = opt.Text
		if q.Type == TypeTrueFalse {
			selected = opt.Text == OptionTrue
		}
		answers = append(answers, Answer{QuestionID: q.ID, SelectedOption: selected})
	}
	for id := range choices {
		if !hasQuestion(questions, id) {
			return nil, fmt.Errorf("unknown question %s", id)
		}
	}
	return answers, nil
}

func resolveOption(q Question, raw string) (Option, bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1], true
	}
	for _, opt := range q.Options {
		if strings.EqualFold(opt.Text, raw) || (opt.ID != "" && opt.ID == raw) {
			return opt, true
		}
	}
	return Option{}, false
}

func hasQuestion(questions []Question, id string) bool {
	for _, q := range questions {
		if q.ID == id {
			return true
		}
	}
	return false
}
