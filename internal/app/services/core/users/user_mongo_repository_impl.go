package users

import (
	"context"
	"mindcheck-service/internal/app/contracts"
	"mindcheck-service/internal/app/models"
	"mindcheck-service/internal/pkg/constvars"
	"mindcheck-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type userMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	userMongoRepositoryInstance contracts.UserRepository
	onceUserMongoRepository     sync.Once
)

func NewUserMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.UserRepository {
	onceUserMongoRepository.Do(func() {
		userMongoRepositoryInstance = &userMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
			Log:        logger,
		}
	})
	return userMongoRepositoryInstance
}

// FindAll returns every user, or only those with role when it is not empty.
func (repo *userMongoRepository) FindAll(ctx context.Context, role string) ([]models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := bson.M{"deletedAt": bson.M{"$exists": false}}
	if role != "" {
		filter["role"] = role
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		repo.Log.Error("userMongoRepository.FindAll error finding users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionUsers)
	}

	var users []models.User
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoCollectionUsers)
	}
	return users, nil
}

func (repo *userMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.findOne(ctx, bson.M{"_id": objectID, "deletedAt": bson.M{"$exists": false}})
}

func (repo *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return repo.findOne(ctx, bson.M{"email": email, "deletedAt": bson.M{"$exists": false}})
}

func (repo *userMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user := new(models.User)
	err := repo.Collection.FindOne(ctx, filter).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("userMongoRepository.findOne error finding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionUsers)
	}
	return user, nil
}

func (repo *userMongoRepository) CreateUser(ctx context.Context, userModel *models.User) (userID string, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	result, err := repo.Collection.InsertOne(ctx, userModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		repo.Log.Error("userMongoRepository.CreateUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err, constvars.MongoCollectionUsers)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *userMongoRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	objectID, err := primitive.ObjectIDFromHex(userModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	fields := *userModel
	fields.ID = ""
	return repo.updateOne(ctx, objectID, bson.M{"$set": fields})
}

func (repo *userMongoRepository) UpdateLastLogin(ctx context.Context, userID string, loginAt time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.updateOne(ctx, objectID, bson.M{"$set": bson.M{"lastLoginAt": loginAt.UTC()}})
}

func (repo *userMongoRepository) updateOne(ctx context.Context, objectID primitive.ObjectID, update bson.M) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrEmailAlreadyExist(err)
		}
		repo.Log.Error("userMongoRepository.updateOne error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoCollectionUsers)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrUserNotExist(nil)
	}
	return nil
}

func (repo *userMongoRepository) DeleteByID(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		repo.Log.Error("userMongoRepository.DeleteByID error deleting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBDeleteDocument(err, constvars.MongoCollectionUsers)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrUserNotExist(nil)
	}
	return nil
}
