package repository

import (
	"context"

	"github.com/roomatch/api/internal/database"
	"github.com/roomatch/api/internal/model"
)

// QuestionnaireRepository handles questionnaire data access
type QuestionnaireRepository struct {
	db database.Database
}

// NewQuestionnaireRepository creates a new questionnaire repository
func NewQuestionnaireRepository(db database.Database) *QuestionnaireRepository {
	return &QuestionnaireRepository{db: db}
}

// GetQuestions retrieves all question metadata keyed by question id
func (r *QuestionnaireRepository) GetQuestions(ctx context.Context) (map[int]*model.Question, error) {
	query := `SELECT * FROM question ORDER BY sort_order`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows, ok := extractQueryResults(result)
	if !ok {
		return map[int]*model.Question{}, nil
	}

	questions := make(map[int]*model.Question, len(rows))
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		q := parseQuestion(data)
		questions[q.ID] = q
	}
	return questions, nil
}

// GetUserAnswers retrieves all of a user's answers keyed by question id
func (r *QuestionnaireRepository) GetUserAnswers(ctx context.Context, userID string) (map[int]*model.Answer, error) {
	query := `SELECT * FROM answer WHERE user_id = $user_id`
	vars := map[string]interface{}{"user_id": userID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows, ok := extractQueryResults(result)
	if !ok {
		return map[int]*model.Answer{}, nil
	}

	answers := make(map[int]*model.Answer, len(rows))
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		a := parseAnswer(data)
		answers[a.QuestionID] = a
	}
	return answers, nil
}

// GetAnswersForUsers batch-fetches answer maps for many users in one query,
// keyed by user id then question id. Users without answers are absent from
// the returned map.
func (r *QuestionnaireRepository) GetAnswersForUsers(ctx context.Context, userIDs []string) (map[string]map[int]*model.Answer, error) {
	if len(userIDs) == 0 {
		return map[string]map[int]*model.Answer{}, nil
	}

	query := `SELECT * FROM answer WHERE user_id INSIDE $user_ids`
	vars := map[string]interface{}{"user_ids": userIDs}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows, ok := extractQueryResults(result)
	if !ok {
		return map[string]map[int]*model.Answer{}, nil
	}

	byUser := make(map[string]map[int]*model.Answer)
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		a := parseAnswer(data)
		if a.UserID == "" {
			continue
		}
		if byUser[a.UserID] == nil {
			byUser[a.UserID] = make(map[int]*model.Answer)
		}
		byUser[a.UserID][a.QuestionID] = a
	}
	return byUser, nil
}

func parseQuestion(data map[string]interface{}) *model.Question {
	q := &model.Question{
		ID:        getInt(data, "question_id"),
		Type:      model.QuestionType(getString(data, "type")),
		Title:     getString(data, "title"),
		Weight:    getFloatDefault(data, "weight", model.DefaultQuestionWeight),
		SortOrder: getInt(data, "sort_order"),
	}
	if t := getTime(data, "created_on"); t != nil {
		q.CreatedOn = *t
	}
	return q
}

func parseAnswer(data map[string]interface{}) *model.Answer {
	a := &model.Answer{
		ID:         extractRecordID(data["id"]),
		UserID:     getString(data, "user_id"),
		QuestionID: getInt(data, "question_id"),
		Text:       getStringPtr(data, "text"),
		Value:      getIntPtr(data, "value"),
	}
	if t := getTime(data, "created_on"); t != nil {
		a.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		a.UpdatedOn = *t
	}
	return a
}
