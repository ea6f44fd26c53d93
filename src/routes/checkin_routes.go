package routes

import (
	"Backend-KidCheckin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// checkinRoutes กำหนดเส้นทางสำหรับ Check-In API
func checkinRoutes(router fiber.Router) {
	checkinGroup := router.Group("/checkins")
	checkinGroup.Post("/", controllers.CheckInChild)
	checkinGroup.Get("/date/:date", controllers.GetAttendanceByDate)
	checkinGroup.Get("/child/:childId", controllers.GetAttendanceByChild)

	tagGroup := router.Group("/tags")
	tagGroup.Get("/preview", controllers.PreviewTag)

	sessionGroup := router.Group("/session")
	sessionGroup.Get("/date", controllers.GetSessionDate)
	sessionGroup.Put("/date", controllers.SetSessionDate)
}
