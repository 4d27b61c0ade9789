package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"quiz-bank/internal/quiz"
)

const maxCellRunes = 32

var tableHeaders = []string{"ID", "Content", "Score", "Type", "Point", "Course", "Difficulty", "Answer", "Selected"}

func printTable(out io.Writer, questions []quiz.Question) error {
	if len(questions) == 0 {
		_, err := fmt.Fprintln(out, "No questions.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(tableHeaders, "\t"))
	for _, question := range questions {
		cells := []string{
			strconv.FormatInt(question.ID, 10),
			cell(question.Content),
			strconv.Itoa(question.Score),
			cell(question.Type),
			cell(question.Point),
			cell(question.Course),
			cell(question.Difficulty),
			cell(question.Answer),
			quiz.FormatSelected(question.SelectedLastThreeYears),
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func printQuestion(out io.Writer, question quiz.Question) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(question); err != nil {
		return err
	}
	return encoder.Close()
}

func printQuestions(out io.Writer, questions []quiz.Question) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(questions); err != nil {
		return err
	}
	return encoder.Close()
}

// cell flattens newlines and tabs and truncates long text for one table cell.
func cell(value string) string {
	value = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(value)
	if utf8.RuneCountInString(value) <= maxCellRunes {
		return value
	}
	runes := []rune(value)
	return string(runes[:maxCellRunes-1]) + "…"
}
