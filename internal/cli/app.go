package cli

import (
	"context"
	"fmt"
	"io"

	urfave "github.com/urfave/cli/v2"

	"quiz-bank/internal/config"
	"quiz-bank/internal/logging"
	"quiz-bank/internal/quiz"
	"quiz-bank/internal/quiz/sqlite"
)

func formFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{Name: "content", Usage: "question body"},
		&urfave.StringFlag{Name: "score", Usage: "point value (integer)"},
		&urfave.StringFlag{Name: "type", Usage: "question category"},
		&urfave.StringFlag{Name: "point", Usage: "knowledge point"},
		&urfave.StringFlag{Name: "course", Usage: "course name"},
		&urfave.StringFlag{Name: "difficulty", Usage: "difficulty label"},
		&urfave.StringFlag{Name: "answer", Usage: "answer body"},
		&urfave.StringFlag{Name: "selected", Usage: "selected in the last three years (1 = yes, 0 = no)"},
	}
}

// Run executes the command line in args (args[0] is the program name).
func Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	return NewApp(in, out, errOut).RunContext(ctx, args)
}

func NewApp(in io.Reader, out, errOut io.Writer) *urfave.App {
	return &urfave.App{
		Name:      "quiz-cli",
		Usage:     "manage a local bank of quiz questions",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "db", Usage: "path to the SQLite database file (env " + config.EnvDBPath + ")"},
			&urfave.StringFlag{Name: "config", Usage: "YAML configuration file (env " + config.EnvConfigFile + ")"},
			&urfave.StringFlag{Name: "log-level", Usage: "panic, fatal, error, warn, info, debug or trace (env " + config.EnvLogLevel + ")"},
			&urfave.StringFlag{Name: "log-format", Usage: "text or json (env " + config.EnvLogFormat + ")"},
		},
		Commands: []*urfave.Command{
			commandAdd(),
			commandList(),
			commandShow(),
			commandEdit(),
			commandDelete(),
			commandShell(),
		},
	}
}

func commandAdd() *urfave.Command {
	return &urfave.Command{
		Name:  "add",
		Usage: "add a question",
		Flags: formFlags(),
		Action: func(c *urfave.Context) error {
			return withService(c, func(service *quiz.Service) error {
				id, err := service.AddQuestion(c.Context, formFromFlags(c, quiz.Form{}))
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "question added (id=%d)\n", id)
				return nil
			})
		},
	}
}

func commandList() *urfave.Command {
	return &urfave.Command{
		Name:  "list",
		Usage: "list every question",
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: "format", Value: "table", Usage: "table or yaml"},
		},
		Action: func(c *urfave.Context) error {
			format := c.String("format")
			if format != "table" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want table or yaml)", format)
			}
			return withService(c, func(service *quiz.Service) error {
				questions, err := service.ListQuestions(c.Context)
				if err != nil {
					return err
				}
				if format == "yaml" {
					return printQuestions(c.App.Writer, questions)
				}
				return printTable(c.App.Writer, questions)
			})
		},
	}
}

func commandShow() *urfave.Command {
	return &urfave.Command{
		Name:      "show",
		Usage:     "show one question",
		ArgsUsage: "ID",
		Action: func(c *urfave.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: %s show ID", c.App.Name)
			}
			id, err := parseQuestionID(c.Args().First())
			if err != nil {
				return err
			}
			return withService(c, func(service *quiz.Service) error {
				question, err := service.GetQuestion(c.Context, id)
				if err != nil {
					return err
				}
				return printQuestion(c.App.Writer, question)
			})
		},
	}
}

func commandEdit() *urfave.Command {
	return &urfave.Command{
		Name:      "edit",
		Usage:     "replace the fields of a question; unset flags keep their stored value",
		ArgsUsage: "ID",
		Flags:     formFlags(),
		Action: func(c *urfave.Context) error {
			if c.NArg() == 0 {
				warnNoSelection(c.App.ErrWriter, "update")
				return nil
			}
			id, err := parseQuestionID(c.Args().First())
			if err != nil {
				return err
			}
			return withService(c, func(service *quiz.Service) error {
				current, err := service.GetQuestion(c.Context, id)
				if err != nil {
					return err
				}
				form := formFromFlags(c, quiz.FormFromQuestion(current.QuestionFields))
				if err := service.UpdateQuestion(c.Context, id, form); err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "question %d updated\n", id)
				return nil
			})
		},
	}
}

func commandDelete() *urfave.Command {
	return &urfave.Command{
		Name:      "delete",
		Usage:     "delete a question",
		ArgsUsage: "ID",
		Action: func(c *urfave.Context) error {
			if c.NArg() == 0 {
				warnNoSelection(c.App.ErrWriter, "delete")
				return nil
			}
			id, err := parseQuestionID(c.Args().First())
			if err != nil {
				return err
			}
			return withService(c, func(service *quiz.Service) error {
				if err := service.DeleteQuestion(c.Context, id); err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "question %d deleted\n", id)
				return nil
			})
		},
	}
}

func commandShell() *urfave.Command {
	return &urfave.Command{
		Name:  "shell",
		Usage: "interactive add/list/select/edit/delete session",
		Action: func(c *urfave.Context) error {
			return withService(c, func(service *quiz.Service) error {
				return RunShell(c.Context, service, c.App.Reader, c.App.Writer)
			})
		},
	}
}

// withService resolves configuration, opens the store for the duration of fn
// and closes it afterwards.
func withService(c *urfave.Context, fn func(service *quiz.Service) error) error {
	cfg, err := config.Load(config.Overrides{
		ConfigFile: c.String("config"),
		DBPath:     c.String("db"),
		LogLevel:   c.String("log-level"),
		LogFormat:  c.String("log-format"),
	})
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, c.App.ErrWriter)
	if err != nil {
		return err
	}
	log := logger.WithField("db", cfg.Database.Path)

	store, err := sqlite.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		log.WithError(err).Error("open question store failed")
		return fmt.Errorf("open %s: %w", cfg.Database.Path, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("close question store failed")
		}
	}()

	log.Debug("question store opened")
	return fn(quiz.NewService(store, log))
}

func formFromFlags(c *urfave.Context, form quiz.Form) quiz.Form {
	set := func(name string, target *string) {
		if c.IsSet(name) {
			*target = c.String(name)
		}
	}
	set("content", &form.Content)
	set("score", &form.Score)
	set("type", &form.Type)
	set("point", &form.Point)
	set("course", &form.Course)
	set("difficulty", &form.Difficulty)
	set("answer", &form.Answer)
	set("selected", &form.Selected)
	return form
}
