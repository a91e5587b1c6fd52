package notifications

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

type notificationMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	notificationMongoRepositoryInstance contracts.NotificationRepository
	onceNotificationMongoRepository     sync.Once
)

func NewNotificationMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.NotificationRepository {
	onceNotificationMongoRepository.Do(func() {
		notificationMongoRepositoryInstance = &notificationMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
			Log:        logger,
		}
	})
	return notificationMongoRepositoryInstance
}

func (repo *notificationMongoRepository) FindAll(ctx context.Context) ([]models.Notification, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *notificationMongoRepository) FindByUserID(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	filter := bson.M{"userId": userID}
	if unreadOnly {
		filter["read"] = false
	}
	return repo.find(ctx, filter)
}

func (repo *notificationMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		repo.Log.Error("notificationMongoRepository.find error finding notifications",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionNotifications)
	}

	notifications := make([]models.Notification, 0)
	err = cursor.All(ctx, &notifications)
	if err != nil {
		return nil, exceptions.ErrMongoDBDecodeDocument(err, constvars.MongoCollectionNotifications)
	}
	return notifications, nil
}

func (repo *notificationMongoRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	notification := new(models.Notification)
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("notificationMongoRepository.FindByID error finding notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notificationID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err, constvars.MongoCollectionNotifications)
	}
	return notification, nil
}

func (repo *notificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	result, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		repo.Log.Error("notificationMongoRepository.CreateNotification error inserting notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMongoDBInsertDocument(err, constvars.MongoCollectionNotifications)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *notificationMongoRepository) UpdateNotification(ctx context.Context, notification *models.Notification) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	objectID, err := primitive.ObjectIDFromHex(notification.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"message":   notification.Message,
		"read":      notification.Read,
		"updatedAt": notification.UpdatedAt,
	}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		repo.Log.Error("notificationMongoRepository.UpdateNotification error updating notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationIDKey, notification.ID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBUpdateDocument(err, constvars.MongoCollectionNotifications)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrNotificationNotExist(nil)
	}
	return nil
}

func (repo *notificationMongoRepository) DeleteByID(ctx context.Context, notificationID string) error {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err, constvars.MongoCollectionNotifications)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrNotificationNotExist(nil)
	}
	return nil
}
