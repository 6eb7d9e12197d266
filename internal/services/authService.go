package services

import (
	"context"
	"errors"
	"time"

	"github.com/anirudhms/campus-counsel/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown identity and wrong password so
// login responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RegisterUser hashes the password and inserts a new staff user. Duplicate
// emails surface as the store's unique-index error.
func RegisterUser(ctx context.Context, name, email, role, password string) (models.User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// LoginUser verifies credentials and returns the matching user. No token or
// session is issued; this is per-request verification only.
func LoginUser(ctx context.Context, email, password string) (models.User, error) {
	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !VerifyPassword(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// ListUsers returns users, optionally filtered by role.
func ListUsers(ctx context.Context, role string) ([]models.User, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	cursor, err := userCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
