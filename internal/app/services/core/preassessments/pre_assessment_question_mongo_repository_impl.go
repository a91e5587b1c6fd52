package preassessments

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type preAssessmentQuestionMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	preAssessmentQuestionMongoRepositoryInstance contracts.PreAssessmentQuestionRepository
	oncePreAssessmentQuestionMongoRepository     sync.Once
)

func NewPreAssessmentQuestionMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.PreAssessmentQuestionRepository {
	oncePreAssessmentQuestionMongoRepository.Do(func() {
		preAssessmentQuestionMongoRepositoryInstance = &preAssessmentQuestionMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPreAssessmentQuestions),
			Log:        logger,
		}
	})
	return preAssessmentQuestionMongoRepositoryInstance
}

func (repo *preAssessmentQuestionMongoRepository) FindAll(ctx context.Context) ([]models.PreAssessmentQuestion, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		repo.Log.Error("preAssessmentQuestionMongoRepository.FindAll error finding questions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionPreAssessmentQuestions)
	}

	questions := make([]models.PreAssessmentQuestion, 0)
	err = cursor.All(ctx, &questions)
	if err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoCollectionPreAssessmentQuestions)
	}
	return questions, nil
}

// CreateMany inserts the questions. Rows rejected by the unique order index
// mean another writer seeded first and are not an error.
func (repo *preAssessmentQuestionMongoRepository) CreateMany(ctx context.Context, questions []models.PreAssessmentQuestion) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	documents := make([]interface{}, 0, len(questions))
	for _, question := range questions {
		documents = append(documents, question)
	}

	_, err := repo.Collection.InsertMany(ctx, documents, options.InsertMany().SetOrdered(false))
	if mongo.IsDuplicateKeyError(err) {
		repo.Log.Info("preAssessmentQuestionMongoRepository.CreateMany questions already stored",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}
	if err != nil {
		repo.Log.Error("preAssessmentQuestionMongoRepository.CreateMany error inserting questions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(questions)),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err, constvars.MongoCollectionPreAssessmentQuestions)
	}
	return nil
}
