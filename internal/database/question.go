package repository

import (
	"SkyCherry/entity"
	"SkyCherry/internal/lib/api/apierr"
	"SkyCherry/internal/lib/validate"
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const questionNotFound = "No such question exists!"

// questionAggregate is the raw shape produced by the GetQuestion pipeline.
// Lookups always yield arrays, including the single author.
type questionAggregate struct {
	ID                    primitive.ObjectID `bson:"_id"`
	entity.QuestionFields `bson:",inline"`
	CreatedBy             []entity.User   `bson:"createdBy"`
	Answers               []entity.Answer `bson:"answers"`
	AnswerUsers           []entity.User   `bson:"answerUser"`
}

// detail attaches answer authors by user id. The order of answerUser is
// unrelated to the order of answers.
func (a *questionAggregate) detail() *entity.QuestionDetail {
	authors := make(map[primitive.ObjectID]*entity.User, len(a.AnswerUsers))
	for i := range a.AnswerUsers {
		authors[a.AnswerUsers[i].ID] = &a.AnswerUsers[i]
	}

	answers := make([]entity.AnswerView, 0, len(a.Answers))
	for i := range a.Answers {
		answers = append(answers, a.Answers[i].View(authors[a.Answers[i].CreatedBy]))
	}

	var author *entity.User
	if len(a.CreatedBy) > 0 {
		author = &a.CreatedBy[0]
	}

	return &entity.QuestionDetail{
		ID:             a.ID,
		QuestionFields: a.QuestionFields,
		CreatedBy:      author,
		Answers:        answers,
	}
}

func lookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{"$lookup", bson.D{
		{"from", from},
		{"localField", localField},
		{"foreignField", foreignField},
		{"as", as},
	}}}
}

func questionFilter(f entity.QuestionFilter) (bson.D, error) {
	filter := bson.D{}
	add := func(key, value string) {
		if value != "" {
			filter = append(filter, bson.E{Key: key, Value: value})
		}
	}
	add("mainField", f.MainField)
	add("subField", f.SubField)
	add("occupation", f.Occupation)
	add("familyType", f.FamilyType)
	add("interest", f.Interest)
	add("montlyIncome", f.MonthlyIncome)
	add("assets", f.Assets)
	add("incomeManagement", f.IncomeManagement)

	if f.CreatedBy != "" {
		author, err := primitive.ObjectIDFromHex(f.CreatedBy)
		if err != nil {
			return nil, apierr.BadRequest("invalid createdBy filter")
		}
		filter = append(filter, bson.E{Key: "createdBy", Value: author})
	}
	if len(f.Tags) > 0 {
		filter = append(filter, bson.E{Key: "tags", Value: bson.D{{"$all", f.Tags}}})
	}

	return filter, nil
}

func listPipeline(filter bson.D, opts entity.ListOptions) mongo.Pipeline {
	return mongo.Pipeline{
		{{"$match", filter}},
		{{"$sort", bson.D{{"createdAt", -1}, {"_id", -1}}}},
		{{"$skip", opts.Skip}},
		{{"$limit", opts.Limit}},
		lookupStage(usersCollection, "createdBy", "_id", "createdBy"),
		{{"$unwind", bson.D{{"path", "$createdBy"}, {"preserveNullAndEmptyArrays", true}}}},
	}
}

func getPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{"$match", bson.D{{"_id", id}}}},
		lookupStage(usersCollection, "createdBy", "_id", "createdBy"),
		lookupStage(answersCollection, "_id", "question", "answers"),
		lookupStage(usersCollection, "answers.createdBy", "_id", "answerUser"),
	}
}

// ListQuestions returns one page of questions, newest first, with authors resolved.
func (m *MongoDB) ListQuestions(ctx context.Context, opts entity.ListOptions) ([]entity.QuestionView, error) {
	opts = opts.Normalize()

	filter, err := questionFilter(opts.Filter)
	if err != nil {
		return nil, err
	}

	cursor, err := m.collection(questionsCollection).Aggregate(ctx, listPipeline(filter, opts))
	if err != nil {
		return nil, fmt.Errorf("mongodb list questions: %w", err)
	}
	defer cursor.Close(ctx)

	questions := make([]entity.QuestionView, 0, opts.Limit)
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("mongodb decode questions: %w", err)
	}

	return questions, nil
}

// GetQuestion returns the question with its author, answers and answer authors.
// Anything other than exactly one match is reported as not found.
func (m *MongoDB) GetQuestion(ctx context.Context, id string) (*entity.QuestionDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apierr.NotFound(questionNotFound)
	}

	cursor, err := m.collection(questionsCollection).Aggregate(ctx, getPipeline(oid))
	if err != nil {
		return nil, fmt.Errorf("mongodb get question: %w", err)
	}
	defer cursor.Close(ctx)

	var results []questionAggregate
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("mongodb decode question: %w", err)
	}

	if len(results) != 1 {
		return nil, apierr.NotFound(questionNotFound)
	}

	return results[0].detail(), nil
}

// CreateQuestion validates and stores a new question.
func (m *MongoDB) CreateQuestion(ctx context.Context, question *entity.Question) (*entity.Question, error) {
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	if err := validate.Struct(question); err != nil {
		return nil, apierr.BadRequest(fmt.Sprintf("invalid question: %v", err))
	}

	result, err := m.collection(questionsCollection).InsertOne(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("mongodb insert question: %w", err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		question.ID = id
	}

	m.log.With(
		slog.String("id", question.ID.Hex()),
		slog.String("created_by", question.CreatedBy.Hex()),
	).Debug("question created")

	return question, nil
}
