package services

import (
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	userCollection    *mongo.Collection
	studentCollection *mongo.Collection
	leaveCollection   *mongo.Collection
)

// Init wires the process-wide database handle into the service layer. Must
// be called once at startup before any handler runs.
func Init(database *mongo.Database) {
	userCollection = database.Collection("users")
	studentCollection = database.Collection("students")
	leaveCollection = database.Collection("leaverequests")
}
