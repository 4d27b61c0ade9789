package quiz

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

type Service struct {
	questions Repository
	log       logrus.FieldLogger
}

func NewService(questions Repository, log logrus.FieldLogger) *Service {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Service{
		questions: questions,
		log:       log,
	}
}

func (s *Service) AddQuestion(ctx context.Context, form Form) (int64, error) {
	fields, err := form.Fields()
	if err != nil {
		s.log.WithError(err).Warn("rejected new question")
		return 0, err
	}

	id, err := s.questions.InsertQuestion(ctx, fields)
	if err != nil {
		s.log.WithError(err).Error("insert question failed")
		return 0, err
	}

	s.log.WithField("question_id", id).Info("question added")
	return id, nil
}

func (s *Service) ListQuestions(ctx context.Context) ([]Question, error) {
	questions, err := s.questions.ListQuestions(ctx)
	if err != nil {
		s.log.WithError(err).Error("list questions failed")
		return nil, err
	}

	s.log.WithField("count", len(questions)).Debug("questions listed")
	return questions, nil
}

func (s *Service) GetQuestion(ctx context.Context, id int64) (Question, error) {
	log := s.log.WithField("question_id", id)

	question, err := s.questions.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			log.Warn("question not found")
		} else {
			log.WithError(err).Error("load question failed")
		}
		return Question{}, err
	}
	return question, nil
}

func (s *Service) UpdateQuestion(ctx context.Context, id int64, form Form) error {
	log := s.log.WithField("question_id", id)

	fields, err := form.Fields()
	if err != nil {
		log.WithError(err).Warn("rejected question update")
		return err
	}

	if err := s.questions.UpdateQuestion(ctx, id, fields); err != nil {
		log.WithError(err).Error("update question failed")
		return err
	}

	log.Info("question updated")
	return nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	log := s.log.WithField("question_id", id)

	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		log.WithError(err).Error("delete question failed")
		return err
	}

	log.Info("question deleted")
	return nil
}
