package quiz

import "context"

// Repository is the question table. Update and delete of an unknown id are
// silent no-ops.
type Repository interface {
	InsertQuestion(ctx context.Context, fields QuestionFields) (int64, error)
	UpdateQuestion(ctx context.Context, id int64, fields QuestionFields) error
	DeleteQuestion(ctx context.Context, id int64) error
	ListQuestions(ctx context.Context) ([]Question, error)
	GetQuestion(ctx context.Context, id int64) (Question, error)
}
