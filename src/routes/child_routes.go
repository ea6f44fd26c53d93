package routes

import (
	"Backend-KidCheckin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// childRoutes กำหนดเส้นทางสำหรับ Child Directory API
func childRoutes(router fiber.Router) {
	childGroup := router.Group("/children")
	childGroup.Post("/", controllers.CreateChild)
	childGroup.Get("/", controllers.SearchChildren)
	childGroup.Get("/:id", controllers.GetChild)
	childGroup.Put("/:id", controllers.UpdateChild)
	childGroup.Post("/:id/siblings/:siblingId", controllers.AddSibling)
	childGroup.Delete("/:id/siblings/:siblingId", controllers.RemoveSibling)
}
