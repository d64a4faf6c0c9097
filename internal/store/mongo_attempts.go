package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tutorly/quizengine/internal/domain/attempt"
	"github.com/tutorly/quizengine/internal/domain/question"
)

type attemptDoc struct {
	ID             string     `bson:"_id"`
	UserID         string     `bson:"user_id"`
	LessonID       string     `bson:"lesson_id"`
	TotalQuestions int        `bson:"total_questions"`
	CorrectAnswers int        `bson:"correct_answers"`
	Score          float64    `bson:"score"`
	TimeSpent      int        `bson:"time_spent"`
	CreatedAt      time.Time  `bson:"created_at"`
	CompletedAt    *time.Time `bson:"completed_at,omitempty"`
	Metadata       scopeDoc   `bson:"metadata"`
}

type scopeDoc struct {
	Type            attempt.Kind        `bson:"type"`
	UnitID          string              `bson:"unit_id,omitempty"`
	SubjectID       string              `bson:"subject_id,omitempty"`
	LessonsIncluded []string            `bson:"lessons_included"`
	Questions       []question.Question `bson:"questions"`
}

type answerDoc struct {
	AttemptID  string    `bson:"attempt_id"`
	UserID     string    `bson:"user_id"`
	QuestionID string    `bson:"question_id"`
	UserAnswer string    `bson:"user_answer"`
	IsCorrect  bool      `bson:"is_correct"`
	TimeSpent  int       `bson:"time_spent"`
	CreatedAt  time.Time `bson:"created_at"`
}

func toAttemptDoc(a *attempt.QuizAttempt) attemptDoc {
	return attemptDoc{
		ID:             a.ID,
		UserID:         a.UserID,
		LessonID:       a.LessonID,
		TotalQuestions: a.TotalQuestions,
		CorrectAnswers: a.CorrectAnswers,
		Score:          a.Score,
		TimeSpent:      a.TimeSpent,
		CreatedAt:      a.CreatedAt.UTC(),
		CompletedAt:    a.CompletedAt,
		Metadata: scopeDoc{
			Type:            a.Scope.Kind,
			UnitID:          a.Scope.UnitID,
			SubjectID:       a.Scope.SubjectID,
			LessonsIncluded: a.Scope.LessonIDs,
			Questions:       a.Scope.Questions,
		},
	}
}

func (d attemptDoc) toAttempt() (*attempt.QuizAttempt, error) {
	scope := attempt.Scope{
		Kind:      d.Metadata.Type,
		UnitID:    d.Metadata.UnitID,
		SubjectID: d.Metadata.SubjectID,
		LessonIDs: d.Metadata.LessonsIncluded,
		Questions: d.Metadata.Questions,
	}
	if scope.Kind == "" {
		scope.Kind = attempt.KindLesson
	}
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	return &attempt.QuizAttempt{
		ID:             d.ID,
		UserID:         d.UserID,
		LessonID:       d.LessonID,
		TotalQuestions: d.TotalQuestions,
		CorrectAnswers: d.CorrectAnswers,
		Score:          d.Score,
		TimeSpent:      d.TimeSpent,
		CreatedAt:      d.CreatedAt,
		CompletedAt:    d.CompletedAt,
		Scope:          scope,
	}, nil
}

// ============================================================================
// Attempts
// ============================================================================

func (s *MongoStore) SaveAttempt(ctx context.Context, a *attempt.QuizAttempt) error {
	_, err := s.attempts.InsertOne(ctx, toAttemptDoc(a))
	return mongoErr(err)
}

func (s *MongoStore) GetAttempt(ctx context.Context, id string) (*attempt.QuizAttempt, error) {
	var d attemptDoc
	if err := s.attempts.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, mongoErr(err)
	}
	return d.toAttempt()
}

func (s *MongoStore) CompleteAttempt(ctx context.Context, a *attempt.QuizAttempt) error {
	res, err := s.attempts.UpdateOne(ctx,
		bson.M{"_id": a.ID},
		bson.M{"$set": bson.M{
			"correct_answers": a.CorrectAnswers,
			"score":           a.Score,
			"time_spent":      a.TimeSpent,
			"completed_at":    a.CompletedAt,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListAttempts(ctx context.Context, f AttemptFilter) ([]*attempt.QuizAttempt, error) {
	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.LessonID != "" {
		filter["lesson_id"] = f.LessonID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := s.attempts.Find(ctx, filter, opts)
	docs, err := decodeAll[attemptDoc](ctx, cur, err)
	if err != nil {
		return nil, err
	}

	attempts := make([]*attempt.QuizAttempt, 0, len(docs))
	for _, d := range docs {
		a, err := d.toAttempt()
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// ============================================================================
// Answers
// ============================================================================

// SaveAnswer copies the attempt's user onto the answer so recency lookups
// need no join.
func (s *MongoStore) SaveAnswer(ctx context.Context, a attempt.Answer) error {
	var owner struct {
		UserID string `bson:"user_id"`
	}
	err := s.attempts.FindOne(ctx, bson.M{"_id": a.AttemptID},
		options.FindOne().SetProjection(bson.M{"user_id": 1}),
	).Decode(&owner)
	if err != nil {
		return mongoErr(err)
	}

	_, err = s.answers.InsertOne(ctx, answerDoc{
		AttemptID:  a.AttemptID,
		UserID:     owner.UserID,
		QuestionID: a.QuestionID,
		UserAnswer: a.UserAnswer,
		IsCorrect:  a.IsCorrect,
		TimeSpent:  a.TimeSpent,
		CreatedAt:  a.CreatedAt.UTC(),
	})
	return mongoErr(err)
}

func (s *MongoStore) ListAnswers(ctx context.Context, attemptID string) ([]attempt.Answer, error) {
	cur, err := s.answers.Find(ctx, bson.M{"attempt_id": attemptID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	docs, err := decodeAll[answerDoc](ctx, cur, err)
	if err != nil {
		return nil, err
	}

	answers := make([]attempt.Answer, len(docs))
	for i, d := range docs {
		answers[i] = attempt.Answer{
			AttemptID:  d.AttemptID,
			QuestionID: d.QuestionID,
			UserAnswer: d.UserAnswer,
			IsCorrect:  d.IsCorrect,
			TimeSpent:  d.TimeSpent,
			CreatedAt:  d.CreatedAt,
		}
	}
	return answers, nil
}

func (s *MongoStore) RecentAnsweredQuestionIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	cur, err := s.answers.Find(ctx, bson.M{"user_id": userID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(int64(limit)).
			SetProjection(bson.M{"question_id": 1}),
	)
	docs, err := decodeAll[answerDoc](ctx, cur, err)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.QuestionID
	}
	return ids, nil
}
