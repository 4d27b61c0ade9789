package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"quiz-bank/internal/quiz"
)

const questionColumns = `id, content, score, type, point, course, difficulty, answer, selected_last_three_years`

func (s *SQLiteStore) InsertQuestion(ctx context.Context, fields quiz.QuestionFields) (int64, error) {
	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO questions (content, score, type, point, course, difficulty, answer, selected_last_three_years)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		fields.Content,
		fields.Score,
		fields.Type,
		fields.Point,
		fields.Course,
		fields.Difficulty,
		fields.Answer,
		fields.SelectedLastThreeYears,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateQuestion replaces every non-id column of the row. An unknown id
// matches nothing and is not an error.
func (s *SQLiteStore) UpdateQuestion(ctx context.Context, id int64, fields quiz.QuestionFields) error {
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE questions
		 SET content = ?, score = ?, type = ?, point = ?, course = ?, difficulty = ?, answer = ?, selected_last_three_years = ?
		 WHERE id = ?`,
		fields.Content,
		fields.Score,
		fields.Type,
		fields.Point,
		fields.Course,
		fields.Difficulty,
		fields.Answer,
		fields.SelectedLastThreeYears,
		id,
	)
	return err
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+questionColumns+` FROM questions ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id int64) (quiz.Question, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+questionColumns+` FROM questions WHERE id = ?`,
		id,
	)

	question, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Question{}, quiz.ErrQuestionNotFound
		}
		return quiz.Question{}, err
	}
	return question, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (quiz.Question, error) {
	var question quiz.Question
	err := row.Scan(
		&question.ID,
		&question.Content,
		&question.Score,
		&question.Type,
		&question.Point,
		&question.Course,
		&question.Difficulty,
		&question.Answer,
		&question.SelectedLastThreeYears,
	)
	return question, err
}
