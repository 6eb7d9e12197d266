package services

import (
	"context"
	"errors"
	"time"

	"github.com/anirudhms/campus-counsel/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrInvalidCounselor = errors.New("counselor not found or not a counselor")
)

// StudentInput carries the registration fields.
type StudentInput struct {
	Name               string
	RollNumber         string
	RegistrationNumber string
	Year               int
	Password           string
}

// RegisterStudent hashes the password and inserts a new student. Duplicate
// roll or registration numbers surface as the store's unique-index error.
func RegisterStudent(ctx context.Context, in StudentInput) (models.Student, error) {
	hashed, err := HashPassword(in.Password)
	if err != nil {
		return models.Student{}, err
	}

	now := time.Now()
	student := models.Student{
		ID:                 primitive.NewObjectID(),
		Name:               in.Name,
		RollNumber:         in.RollNumber,
		RegistrationNumber: in.RegistrationNumber,
		Year:               in.Year,
		Password:           hashed,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if _, err := studentCollection.InsertOne(ctx, student); err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// GetStudentByRoll finds one student by roll number with the counselor
// reference expanded.
func GetStudentByRoll(ctx context.Context, rollNumber string) (models.StudentWithCounselor, error) {
	var student models.Student
	err := studentCollection.FindOne(ctx, bson.M{"roll_number": rollNumber}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.StudentWithCounselor{}, ErrStudentNotFound
	}
	if err != nil {
		return models.StudentWithCounselor{}, err
	}
	return expandCounselor(ctx, student), nil
}

// AssignCounselor sets the student's counselor after checking the target
// user exists with the counselor role. The update and the read-back are one
// atomic find-and-update.
func AssignCounselor(ctx context.Context, rollNumber, counselorID string) (models.StudentWithCounselor, error) {
	objID, err := primitive.ObjectIDFromHex(counselorID)
	if err != nil {
		return models.StudentWithCounselor{}, ErrInvalidCounselor
	}

	var counselor models.User
	err = userCollection.FindOne(ctx, bson.M{"_id": objID, "role": models.RoleCounselor}).Decode(&counselor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.StudentWithCounselor{}, ErrInvalidCounselor
	}
	if err != nil {
		return models.StudentWithCounselor{}, err
	}

	var student models.Student
	err = studentCollection.FindOneAndUpdate(ctx,
		bson.M{"roll_number": rollNumber},
		bson.M{"$set": bson.M{"counselor_id": objID, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.StudentWithCounselor{}, ErrStudentNotFound
	}
	if err != nil {
		return models.StudentWithCounselor{}, err
	}

	return models.StudentWithCounselor{Student: student, Counselor: &counselor}, nil
}

// LoginStudent verifies a student's credentials. Unknown roll number and
// wrong password produce the same error.
func LoginStudent(ctx context.Context, rollNumber, password string) error {
	var student models.Student
	if err := studentCollection.FindOne(ctx, bson.M{"roll_number": rollNumber}).Decode(&student); err != nil {
		return ErrInvalidCredentials
	}
	if !VerifyPassword(password, student.Password) {
		return ErrInvalidCredentials
	}
	return nil
}

// StudentFilter builds the listing filter. Year and counselor are optional
// and combine as an intersection.
func StudentFilter(year *int, counselorID *primitive.ObjectID) bson.M {
	filter := bson.M{}
	if year != nil {
		filter["year"] = *year
	}
	if counselorID != nil {
		filter["counselor_id"] = *counselorID
	}
	return filter
}

// ListStudents returns students matching the optional filters with counselor
// references expanded.
func ListStudents(ctx context.Context, year *int, counselorID *primitive.ObjectID) ([]models.StudentWithCounselor, error) {
	cursor, err := studentCollection.Find(ctx, StudentFilter(year, counselorID))
	if err != nil {
		return nil, err
	}

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}

	out := make([]models.StudentWithCounselor, 0, len(students))
	for _, s := range students {
		out = append(out, expandCounselor(ctx, s))
	}
	return out, nil
}

func expandCounselor(ctx context.Context, student models.Student) models.StudentWithCounselor {
	out := models.StudentWithCounselor{Student: student}
	if student.CounselorID == nil {
		return out
	}
	var counselor models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": *student.CounselorID}).Decode(&counselor); err == nil {
		out.Counselor = &counselor
	}
	return out
}
