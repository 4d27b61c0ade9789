package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quiz-bank/internal/quiz"
)

type formField struct {
	label     string
	multiline bool
	value     func(f *quiz.Form) *string
}

var formFields = []formField{
	{label: "Content", multiline: true, value: func(f *quiz.Form) *string { return &f.Content }},
	{label: "Score", value: func(f *quiz.Form) *string { return &f.Score }},
	{label: "Type", value: func(f *quiz.Form) *string { return &f.Type }},
	{label: "Knowledge point", value: func(f *quiz.Form) *string { return &f.Point }},
	{label: "Course", value: func(f *quiz.Form) *string { return &f.Course }},
	{label: "Difficulty", value: func(f *quiz.Form) *string { return &f.Difficulty }},
	{label: "Answer", multiline: true, value: func(f *quiz.Form) *string { return &f.Answer }},
	{label: "Selected in last three years (1 = yes, 0 = no)", value: func(f *quiz.Form) *string { return &f.Selected }},
}

type shell struct {
	service  *quiz.Service
	reader   *bufio.Reader
	out      io.Writer
	selected *quiz.Question
}

// RunShell drives the question bank interactively until exit or end of
// input. Errors from an action are printed and the loop continues.
func RunShell(ctx context.Context, service *quiz.Service, in io.Reader, out io.Writer) error {
	sh := &shell{
		service: service,
		reader:  bufio.NewReader(in),
		out:     out,
	}

	fmt.Fprintln(out, "quiz-bank")
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := readLine(sh.reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch strings.ToLower(args[0]) {
		case "help":
			printHelp(out)
			continue
		case "exit", "quit":
			return nil
		case "list":
			err = sh.list(ctx)
		case "add":
			err = sh.add(ctx)
		case "select":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: select <id>")
				continue
			}
			err = sh.selectQuestion(ctx, args[1])
		case "edit":
			err = sh.edit(ctx)
		case "delete":
			err = sh.delete(ctx)
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
			continue
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case errors.Is(err, errNoSelection):
		default:
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (sh *shell) list(ctx context.Context) error {
	questions, err := sh.service.ListQuestions(ctx)
	if err != nil {
		return err
	}
	return printTable(sh.out, questions)
}

func (sh *shell) add(ctx context.Context) error {
	form, err := sh.promptForm(nil)
	if err != nil {
		return err
	}

	id, err := sh.service.AddQuestion(ctx, form)
	if err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "Question added (id=%d).\n", id)
	return sh.list(ctx)
}

func (sh *shell) selectQuestion(ctx context.Context, rawID string) error {
	id, err := parseQuestionID(rawID)
	if err != nil {
		return err
	}

	question, err := sh.service.GetQuestion(ctx, id)
	if err != nil {
		return err
	}

	sh.selected = &question
	return printQuestion(sh.out, question)
}

func (sh *shell) edit(ctx context.Context) error {
	if sh.selected == nil {
		warnNoSelection(sh.out, "update")
		return errNoSelection
	}

	current := quiz.FormFromQuestion(sh.selected.QuestionFields)
	form, err := sh.promptForm(&current)
	if err != nil {
		return err
	}

	id := sh.selected.ID
	if err := sh.service.UpdateQuestion(ctx, id, form); err != nil {
		return err
	}

	fmt.Fprintf(sh.out, "Question %d updated.\n", id)
	if refreshed, err := sh.service.GetQuestion(ctx, id); err == nil {
		sh.selected = &refreshed
	} else if errors.Is(err, quiz.ErrQuestionNotFound) {
		sh.selected = nil
	}
	return sh.list(ctx)
}

func (sh *shell) delete(ctx context.Context) error {
	if sh.selected == nil {
		warnNoSelection(sh.out, "delete")
		return errNoSelection
	}

	id := sh.selected.ID
	confirmed, err := promptYesNo(sh.reader, sh.out, fmt.Sprintf("Delete question %d? (yes/no): ", id))
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := sh.service.DeleteQuestion(ctx, id); err != nil {
		return err
	}

	sh.selected = nil
	fmt.Fprintf(sh.out, "Question %d deleted.\n", id)
	return sh.list(ctx)
}

// promptForm asks for every field. With current set, each prompt shows the
// existing value and a blank answer keeps it.
func (sh *shell) promptForm(current *quiz.Form) (quiz.Form, error) {
	var form quiz.Form
	if current != nil {
		form = *current
	}

	for _, field := range formFields {
		target := field.value(&form)
		if current != nil {
			fmt.Fprintf(sh.out, "%s [%s]: ", field.label, cell(*target))
		} else {
			fmt.Fprintf(sh.out, "%s: ", field.label)
		}

		var (
			value string
			err   error
		)
		if field.multiline {
			value, err = readText(sh.reader)
		} else {
			value, err = readLine(sh.reader)
		}
		if err != nil {
			return quiz.Form{}, err
		}

		if current != nil && value == "" {
			continue
		}
		*target = value
	}
	return form, nil
}
