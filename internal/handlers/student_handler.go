package handlers

import (
	"errors"
	"strconv"

	"github.com/anirudhms/campus-counsel/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func RegisterStudentHandler(c *fiber.Ctx) error {
	var request struct {
		Name               string `json:"name"`
		RollNumber         string `json:"rollNumber"`
		RegistrationNumber string `json:"registrationNumber"`
		Year               int    `json:"year"`
		Password           string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	student, err := services.RegisterStudent(c.Context(), services.StudentInput{
		Name:               request.Name,
		RollNumber:         request.RollNumber,
		RegistrationNumber: request.RegistrationNumber,
		Year:               request.Year,
		Password:           request.Password,
	})
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student registered successfully",
		"student": student,
	})
}

func GetStudentHandler(c *fiber.Ctx) error {
	student, err := services.GetStudentByRoll(c.Context(), c.Params("rollNumber"))
	if errors.Is(err, services.ErrStudentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
	}
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(student)
}

func AssignCounselorHandler(c *fiber.Ctx) error {
	var request struct {
		CounselorID string `json:"counselorId"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	student, err := services.AssignCounselor(c.Context(), c.Params("rollNumber"), request.CounselorID)
	if errors.Is(err, services.ErrInvalidCounselor) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid counselor"})
	}
	if errors.Is(err, services.ErrStudentNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Student not found"})
	}
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Counselor assigned successfully",
		"student": student,
	})
}

func StudentLoginHandler(c *fiber.Ctx) error {
	var request struct {
		RollNumber string `json:"rollNumber"`
		Password   string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := services.LoginStudent(c.Context(), request.RollNumber, request.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"rollNumber": request.RollNumber,
	})
}

func ListStudentsHandler(c *fiber.Ctx) error {
	var year *int
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year"})
		}
		year = &parsed
	}

	var counselorID *primitive.ObjectID
	if raw := c.Query("counselorId"); raw != "" {
		objID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid counselor ID format"})
		}
		counselorID = &objID
	}

	students, err := services.ListStudents(c.Context(), year, counselorID)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(students)
}
