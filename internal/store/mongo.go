package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tutorly/quizengine/internal/domain/curriculum"
	"github.com/tutorly/quizengine/internal/domain/question"
)

// MongoStore keeps the catalogue and attempts in MongoDB. Frozen question
// sets are stored as nested documents on the attempt.
type MongoStore struct {
	client *mongo.Client

	subjects  *mongo.Collection
	units     *mongo.Collection
	lessons   *mongo.Collection
	progress  *mongo.Collection
	questions *mongo.Collection
	attempts  *mongo.Collection
	answers   *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

func NewMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	db := client.Database(database)
	s := &MongoStore{
		client:    client,
		subjects:  db.Collection("subjects"),
		units:     db.Collection("units"),
		lessons:   db.Collection("lessons"),
		progress:  db.Collection("lesson_progress"),
		questions: db.Collection("questions"),
		attempts:  db.Collection("quiz_attempts"),
		answers:   db.Collection("quiz_attempt_answers"),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	indexes := []struct {
		col   *mongo.Collection
		model mongo.IndexModel
	}{
		{s.questions, mongo.IndexModel{Keys: bson.D{{Key: "lesson_id", Value: 1}, {Key: "times_used", Value: 1}}}},
		{s.progress, mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "lesson_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{s.attempts, mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}}},
		{s.answers, mongo.IndexModel{
			Keys:    bson.D{{Key: "attempt_id", Value: 1}, {Key: "question_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{s.answers, mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}}},
	}

	for _, idx := range indexes {
		if _, err := idx.col.Indexes().CreateOne(ctx, idx.model); err != nil {
			return err
		}
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func mongoErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []T
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, cur.Err()
}

func toPointers[T any](vs []T) []*T {
	out := make([]*T, len(vs))
	for i := range vs {
		out[i] = &vs[i]
	}
	return out
}

// ============================================================================
// Curriculum
// ============================================================================

func (s *MongoStore) SaveSubject(ctx context.Context, subj *curriculum.Subject) error {
	_, err := s.subjects.InsertOne(ctx, subj)
	return mongoErr(err)
}

func (s *MongoStore) GetSubject(ctx context.Context, id string) (*curriculum.Subject, error) {
	var subj curriculum.Subject
	if err := s.subjects.FindOne(ctx, bson.M{"_id": id}).Decode(&subj); err != nil {
		return nil, mongoErr(err)
	}
	return &subj, nil
}

func (s *MongoStore) ListSubjects(ctx context.Context) ([]*curriculum.Subject, error) {
	cur, err := s.subjects.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	subjects, err := decodeAll[curriculum.Subject](ctx, cur, err)
	return toPointers(subjects), err
}

func (s *MongoStore) SaveUnit(ctx context.Context, u *curriculum.Unit) error {
	_, err := s.units.InsertOne(ctx, u)
	return mongoErr(err)
}

func (s *MongoStore) GetUnit(ctx context.Context, id string) (*curriculum.Unit, error) {
	var u curriculum.Unit
	if err := s.units.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, mongoErr(err)
	}
	return &u, nil
}

func (s *MongoStore) ListUnits(ctx context.Context, subjectID string) ([]*curriculum.Unit, error) {
	cur, err := s.units.Find(ctx, bson.M{"subject_id": subjectID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	units, err := decodeAll[curriculum.Unit](ctx, cur, err)
	return toPointers(units), err
}

func (s *MongoStore) SaveLesson(ctx context.Context, l *curriculum.Lesson) error {
	_, err := s.lessons.InsertOne(ctx, l)
	return mongoErr(err)
}

func (s *MongoStore) GetLesson(ctx context.Context, id string) (*curriculum.Lesson, error) {
	var l curriculum.Lesson
	if err := s.lessons.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		return nil, mongoErr(err)
	}
	return &l, nil
}

func (s *MongoStore) ListLessonsByUnit(ctx context.Context, unitID string) ([]*curriculum.Lesson, error) {
	cur, err := s.lessons.Find(ctx, bson.M{"unit_id": unitID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	lessons, err := decodeAll[curriculum.Lesson](ctx, cur, err)
	return toPointers(lessons), err
}

func (s *MongoStore) ListLessonsBySubject(ctx context.Context, subjectID string) ([]*curriculum.Lesson, error) {
	units, err := s.ListUnits(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	var lessons []*curriculum.Lesson
	for _, u := range units {
		ls, err := s.ListLessonsByUnit(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, ls...)
	}
	return lessons, nil
}

func (s *MongoStore) MarkLessonCompleted(ctx context.Context, p curriculum.Progress) error {
	_, err := s.progress.UpdateOne(ctx,
		bson.M{"user_id": p.UserID, "lesson_id": p.LessonID},
		bson.M{"$set": bson.M{"completed_at": p.CompletedAt.UTC()}},
		options.Update().SetUpsert(true),
	)
	return mongoErr(err)
}

func (s *MongoStore) RecentCompletedLessons(ctx context.Context, userID, subjectID string, limit int) ([]*curriculum.Lesson, error) {
	filter := bson.M{"user_id": userID}

	if subjectID != "" {
		inSubject, err := s.ListLessonsBySubject(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(inSubject))
		for i, l := range inSubject {
			ids[i] = l.ID
		}
		filter["lesson_id"] = bson.M{"$in": ids}
	}

	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.progress.Find(ctx, filter, opts)
	progress, err := decodeAll[curriculum.Progress](ctx, cur, err)
	if err != nil {
		return nil, err
	}

	lessons := make([]*curriculum.Lesson, 0, len(progress))
	for _, p := range progress {
		l, err := s.GetLesson(ctx, p.LessonID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

// ============================================================================
// Questions
// ============================================================================

func (s *MongoStore) SaveQuestion(ctx context.Context, q *question.Question) error {
	_, err := s.questions.InsertOne(ctx, q)
	return mongoErr(err)
}

func (s *MongoStore) GetQuestion(ctx context.Context, id string) (*question.Question, error) {
	var q question.Question
	if err := s.questions.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		return nil, mongoErr(err)
	}
	return &q, nil
}

func (s *MongoStore) ListQuestionsByLesson(ctx context.Context, lessonID string) ([]question.Question, error) {
	cur, err := s.questions.Find(ctx, bson.M{"lesson_id": lessonID})
	return decodeAll[question.Question](ctx, cur, err)
}

func (s *MongoStore) FindQuestions(ctx context.Context, f QuestionFilter) ([]question.Question, error) {
	filter := bson.M{"is_active": true, "is_dynamic": false}

	if len(f.LessonIDs) > 0 {
		filter["lesson_id"] = bson.M{"$in": f.LessonIDs}
	}
	if f.Difficulty.IsFilter() {
		filter["difficulty"] = f.Difficulty
	}
	if len(f.Types) > 0 {
		filter["type"] = bson.M{"$in": f.Types}
	}
	if len(f.ExcludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": f.ExcludeIDs}
	}

	opts := options.Find().SetSort(bson.D{{Key: "times_used", Value: 1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := s.questions.Find(ctx, filter, opts)
	return decodeAll[question.Question](ctx, cur, err)
}

// MarkQuestionUsed uses $inc so concurrent selections never lose a count.
func (s *MongoStore) MarkQuestionUsed(ctx context.Context, id string, at time.Time) error {
	res, err := s.questions.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"times_used": 1},
			"$set": bson.M{"last_used_at": at.UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) UpdateSuccessRate(ctx context.Context, id string, rate float64) error {
	res, err := s.questions.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"success_rate": rate}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
