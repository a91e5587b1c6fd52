package assessments

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type assessmentMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	assessmentMongoRepositoryInstance contracts.AssessmentRepository
	onceAssessmentMongoRepository     sync.Once
)

func NewAssessmentMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.AssessmentRepository {
	onceAssessmentMongoRepository.Do(func() {
		assessmentMongoRepositoryInstance = &assessmentMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionAssessments),
			Log:        logger,
		}
	})
	return assessmentMongoRepositoryInstance
}

func buildAssessmentFilter(filter models.AssessmentFilter) bson.M {
	query := bson.M{}
	if filter.UserID != "" {
		query["userId"] = filter.UserID
	}
	if filter.AssessmentType != "" {
		query["assessmentType"] = filter.AssessmentType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return query
}

func (repo *assessmentMongoRepository) FindAll(ctx context.Context, filter models.AssessmentFilter) ([]models.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("assessmentMongoRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, filter.UserID),
		zap.String(constvars.LoggingAssessmentTypeKey, filter.AssessmentType),
	)

	// Missing completedAt sorts lowest, so unfinished records trail the
	// completed ones and are ordered among themselves by startedAt.
	findOptions := options.Find().SetSort(bson.D{
		{Key: "completedAt", Value: -1},
		{Key: "startedAt", Value: -1},
	})
	if filter.Limit > 0 {
		findOptions.SetLimit(filter.Limit)
	}

	cursor, err := repo.Collection.Find(ctx, buildAssessmentFilter(filter), findOptions)
	if err != nil {
		repo.Log.Error("assessmentMongoRepository.FindAll error finding assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionAssessments)
	}

	assessments := make([]models.Assessment, 0)
	err = cursor.All(ctx, &assessments)
	if err != nil {
		repo.Log.Error("assessmentMongoRepository.FindAll error decoding assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoCollectionAssessments)
	}

	repo.Log.Info("assessmentMongoRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(assessments)),
	)
	return assessments, nil
}

func (repo *assessmentMongoRepository) FindByID(ctx context.Context, assessmentID string) (*models.Assessment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	assessment := new(models.Assessment)
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(assessment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("assessmentMongoRepository.FindByID error finding assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionAssessments)
	}
	return assessment, nil
}

// CountByUserIDs counts every assessment of each user in one aggregation.
// Users with no assessments are absent from the map.
func (repo *assessmentMongoRepository) CountByUserIDs(ctx context.Context, userIDs []string) (map[string]int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	counts := make(map[string]int64, len(userIDs))
	if len(userIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": bson.M{"$in": userIDs}}}},
		{{Key: "$group", Value: bson.M{"_id": "$userId", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		repo.Log.Error("assessmentMongoRepository.CountByUserIDs error aggregating assessments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(userIDs)),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBCountDocument(err, constvars.MongoCollectionAssessments)
	}

	var rows []struct {
		UserID string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	err = cursor.All(ctx, &rows)
	if err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoCollectionAssessments)
	}
	for _, row := range rows {
		counts[row.UserID] = row.Count
	}
	return counts, nil
}

func (repo *assessmentMongoRepository) CreateAssessment(ctx context.Context, assessment *models.Assessment) (assessmentID string, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	result, err := repo.Collection.InsertOne(ctx, assessment)
	if err != nil {
		repo.Log.Error("assessmentMongoRepository.CreateAssessment error inserting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err, constvars.MongoCollectionAssessments)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UpdateAssessment replaces the stored record. Completed records are
// immutable, so the filter refuses to match them.
func (repo *assessmentMongoRepository) UpdateAssessment(ctx context.Context, assessment *models.Assessment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectID, err := primitive.ObjectIDFromHex(assessment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	fields := *assessment
	fields.ID = ""

	filter := bson.M{
		"_id":    objectID,
		"status": bson.M{"$ne": constvars.AssessmentStatusCompleted},
	}
	result, err := repo.Collection.ReplaceOne(ctx, filter, fields)
	if err != nil {
		repo.Log.Error("assessmentMongoRepository.UpdateAssessment error updating assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoCollectionAssessments)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAssessmentAlreadyCompleted(nil)
	}
	return nil
}

func (repo *assessmentMongoRepository) DeleteByID(ctx context.Context, assessmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectID, err := primitive.ObjectIDFromHex(assessmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		repo.Log.Error("assessmentMongoRepository.DeleteByID error deleting assessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBDeleteDocument(err, constvars.MongoCollectionAssessments)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAssessmentNotExist(nil)
	}
	return nil
}
