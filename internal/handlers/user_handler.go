package handlers

import (
	"errors"

	"github.com/anirudhms/campus-counsel/internal/services"
	"github.com/gofiber/fiber/v2"
)

func RegisterUserHandler(c *fiber.Ctx) error {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := services.RegisterUser(c.Context(), request.Name, request.Email, request.Role, request.Password)
	if err != nil {
		return storeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

func UserLoginHandler(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := services.LoginUser(c.Context(), request.Email, request.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"userId":  user.ID.Hex(),
		"role":    user.Role,
	})
}

func ListUsersHandler(c *fiber.Ctx) error {
	users, err := services.ListUsers(c.Context(), c.Query("role"))
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(users)
}
