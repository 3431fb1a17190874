package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Notification kinds stored in history.
const (
	KindStatus = "status"
	KindError  = "error"
)

// Notification is one message delivered to the chat.
type Notification struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"-"`
	HomeworkName string        `bson:"homework_name,omitempty" json:"homework_name,omitempty"`
	Status       string        `bson:"status,omitempty" json:"status,omitempty"`
	Kind         string        `bson:"kind" json:"kind"`
	Text         string        `bson:"text" json:"text"`
	SentAt       time.Time     `bson:"sent_at" json:"sent_at"`
}
