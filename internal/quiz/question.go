package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidScore     = errors.New("invalid score")
	ErrInvalidSelected  = errors.New("invalid selected flag")
)

// QuestionFields holds every column of a question except its id.
type QuestionFields struct {
	Content                string `yaml:"content"`
	Score                  int    `yaml:"score"`
	Type                   string `yaml:"type"`
	Point                  string `yaml:"point"`
	Course                 string `yaml:"course"`
	Difficulty             string `yaml:"difficulty"`
	Answer                 string `yaml:"answer"`
	SelectedLastThreeYears bool   `yaml:"selected_last_three_years"`
}

type Question struct {
	ID             int64 `yaml:"id"`
	QuestionFields `yaml:",inline"`
}

// Form is the raw text entered for a question, before coercion.
type Form struct {
	Content    string
	Score      string
	Type       string
	Point      string
	Course     string
	Difficulty string
	Answer     string
	Selected   string
}

// Fields coerces the form into typed question fields. Score must be an
// integer and Selected an integer where non-zero means true.
func (f Form) Fields() (QuestionFields, error) {
	score, err := ParseScore(f.Score)
	if err != nil {
		return QuestionFields{}, err
	}

	selected, err := ParseSelected(f.Selected)
	if err != nil {
		return QuestionFields{}, err
	}

	return QuestionFields{
		Content:                f.Content,
		Score:                  score,
		Type:                   f.Type,
		Point:                  f.Point,
		Course:                 f.Course,
		Difficulty:             f.Difficulty,
		Answer:                 f.Answer,
		SelectedLastThreeYears: selected,
	}, nil
}

// FormFromQuestion renders stored fields back into form text, the way the
// edit form is pre-populated from a selected row.
func FormFromQuestion(fields QuestionFields) Form {
	return Form{
		Content:    fields.Content,
		Score:      strconv.Itoa(fields.Score),
		Type:       fields.Type,
		Point:      fields.Point,
		Course:     fields.Course,
		Difficulty: fields.Difficulty,
		Answer:     fields.Answer,
		Selected:   FormatSelected(fields.SelectedLastThreeYears),
	}
}

func ParseScore(value string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidScore, value)
	}
	return score, nil
}

func ParseSelected(value string) (bool, error) {
	flag, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not an integer (1 = yes, 0 = no)", ErrInvalidSelected, value)
	}
	return flag != 0, nil
}

func FormatSelected(selected bool) string {
	if selected {
		return "1"
	}
	return "0"
}
