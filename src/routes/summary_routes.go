package routes

import (
	"Backend-KidCheckin/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// summaryRoutes กำหนดเส้นทางสำหรับ Summary API
func summaryRoutes(router fiber.Router) {
	summaryGroup := router.Group("/summaries")
	summaryGroup.Get("/today/totals", controllers.GetTodayTotals)
	summaryGroup.Get("/:date", controllers.GetSummaryByDate)
}
