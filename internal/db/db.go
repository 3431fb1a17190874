package db

import (
	"context"
	"time"

	"homework-bot/internal/config"
	"homework-bot/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type DB struct {
	Client        *mongo.Client
	Database      *mongo.Database
	Notifications *mongo.Collection
}

func Connect(cfg *config.Config) (*DB, error) {
	clientOpts := options.Client().ApplyURI(cfg.MongoDBURI)
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, err
	}

	database := client.Database(cfg.DatabaseName)

	d := &DB{
		Client:        client,
		Database:      database,
		Notifications: database.Collection("notifications"),
	}

	if err := d.createIndexes(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *DB) createIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := d.Notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "sent_at", Value: -1}},
	})

	return err
}

// InsertNotification appends one delivered notification to the history.
func (d *DB) InsertNotification(ctx context.Context, n models.Notification) error {
	_, err := d.Notifications.InsertOne(ctx, n)
	return err
}

// RecentNotifications returns the newest delivered notifications first.
func (d *DB) RecentNotifications(ctx context.Context, limit int64) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "sent_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := d.Notifications.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var out []models.Notification
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
