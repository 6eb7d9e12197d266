package handlers

import (
	"log"

	"github.com/anirudhms/campus-counsel/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Init wires the shared database handle into the service layer.
func Init(database *mongo.Database) {
	services.Init(database)
}

// SetupRoutes registers every route. Each path is bound exactly once.
func SetupRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Post("/register", RegisterStudentHandler)
	students.Post("/login", StudentLoginHandler)
	students.Get("/", ListStudentsHandler)
	students.Get("/:rollNumber", GetStudentHandler)
	students.Put("/:rollNumber/assign-counselor", AssignCounselorHandler)

	users := app.Group("/users")
	users.Post("/register", RegisterUserHandler)
	users.Post("/login", UserLoginHandler)
	users.Get("/", ListUsersHandler)

	app.Get("/leave-requests", ListLeaveRequestsHandler)
}

// storeError logs the underlying failure server-side and answers with a
// client-safe 500. Driver error strings never reach the client.
func storeError(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
