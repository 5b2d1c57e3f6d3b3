package routes

import (
	"net/http"
	"time"

	"nutrify/handlers"
	"nutrify/middleware"
	"nutrify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the wired handlers for route registration.
type HandlerBundle struct {
	Questionnaire *handlers.QuestionnaireHandler
	Booking       *handlers.BookingHandler
	Admin         *handlers.AdminHandler
	Webhook       *handlers.WebhookHandler
	Payment       *handlers.PaymentHandler
	AdminFailure  middleware.AdminAuthFailure
}

// RegisterQuestionnaireRoutes registers the intake endpoints: one-shot
// submission, record lookup and the step-by-step wizard.
func RegisterQuestionnaireRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/questionnaire")
	{
		api.POST("", hb.Questionnaire.SubmitHandler)
		api.GET("/:sessionId", hb.Questionnaire.GetRecordHandler)

		api.POST("/session", hb.Questionnaire.StartDraftHandler)
		api.GET("/session/:draftId", hb.Questionnaire.GetDraftHandler)
		api.PUT("/session/:draftId/field", hb.Questionnaire.SetFieldHandler)
		api.POST("/session/:draftId/next", hb.Questionnaire.NextHandler)
		api.POST("/session/:draftId/prev", hb.Questionnaire.PrevHandler)
	}
}

// RegisterBookingRoutes registers the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/slots", hb.Booking.ListSlotsHandler)
		api.POST("", hb.Booking.CreateReservationHandler)
	}
}

// RegisterAdminRoutes registers slot and reservation management behind the
// static admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuthMiddleware(hb.AdminFailure))
		api.GET("/slots", hb.Admin.ListSlotsHandler)
		api.POST("/slots", hb.Admin.CreateSlotHandler)
		api.DELETE("/slots/:id", hb.Admin.DeleteSlotHandler)
		api.GET("/reservations", hb.Admin.ListReservationsHandler)
		api.PATCH("/reservations/:id", hb.Admin.UpdateReservationStatusHandler)
	}
}

// RegisterWebhookRoutes registers the calendar confirmation webhook.
func RegisterWebhookRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/webhook/booking-confirmed", hb.Webhook.BookingConfirmedHandler)
}

// RegisterPaymentRoutes registers payment initiation.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.POST("/api/payment/create", hb.Payment.CreatePaymentHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuestionnaireRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
