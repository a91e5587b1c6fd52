package database

import (
	"context"
	"fmt"
	"log"
	"mindcheck-service/internal/app/config"
	"mindcheck-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func mongoConnectionString(driverConfig *config.DriverConfig) string {
	if driverConfig.MongoDB.URL != "" {
		return driverConfig.MongoDB.URL
	}
	if driverConfig.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
}

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(mongoConnectionString(driverConfig))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")

	err = ensureIndexes(ctx, client.Database(driverConfig.MongoDB.DbName))
	if err != nil {
		log.Fatalf("Failed to create mongo indexes: %s", err.Error())
	}
	return client
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(constvars.MongoCollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionAssessments).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "assessmentType", Value: 1}, {Key: "completedAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "assessmentType", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionPreAssessmentQuestions).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(constvars.MongoCollectionNotifications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "read", Value: 1}},
	})
	return err
}
