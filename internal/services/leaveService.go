package services

import (
	"context"
	"errors"

	"github.com/anirudhms/campus-counsel/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrCounselorNotFound = errors.New("counselor not found")

// ListLeaveRequestsByCounselor returns the leave requests filed by students
// assigned to the given counselor, with the student reference expanded. The
// counselor must exist and carry the counselor role.
func ListLeaveRequestsByCounselor(ctx context.Context, counselorID string) ([]models.LeaveRequestWithStudent, error) {
	objID, err := primitive.ObjectIDFromHex(counselorID)
	if err != nil {
		return nil, ErrCounselorNotFound
	}

	err = userCollection.FindOne(ctx, bson.M{"_id": objID, "role": models.RoleCounselor}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCounselorNotFound
	}
	if err != nil {
		return nil, err
	}

	cursor, err := studentCollection.Find(ctx, bson.M{"counselor_id": objID})
	if err != nil {
		return nil, err
	}
	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}

	requests := []models.LeaveRequestWithStudent{}
	if len(students) == 0 {
		return requests, nil
	}

	byID := make(map[primitive.ObjectID]*models.Student, len(students))
	ids := make([]primitive.ObjectID, 0, len(students))
	for i := range students {
		byID[students[i].ID] = &students[i]
		ids = append(ids, students[i].ID)
	}

	cursor, err = leaveCollection.Find(ctx, bson.M{"student_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var leaves []models.LeaveRequest
	if err := cursor.All(ctx, &leaves); err != nil {
		return nil, err
	}

	for _, lr := range leaves {
		requests = append(requests, models.LeaveRequestWithStudent{
			LeaveRequest: lr,
			Student:      byID[lr.StudentID],
		})
	}
	return requests, nil
}
