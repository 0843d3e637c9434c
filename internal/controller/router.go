package controller

import (
	"github.com/Freeeeeet/skipro_backend/internal/controller/handlers"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP routes. Registration and login are public,
// everything else requires a Bearer token.
func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.POST("/clients/register", h.Register)
	r.POST("/clients/login", h.Login)

	auth := r.Group("/", h.Auth())

	auth.GET("/clients/me", h.Me)

	auth.GET("/lessons/available", h.AvailableLessons)
	auth.GET("/lessons/enrolled", h.EnrolledLessons)
	auth.GET("/lessons/finished", h.FinishedLessons)
	auth.POST("/lessons", h.CreateLesson)
	auth.GET("/lessons/:id", h.GetLesson)
	auth.GET("/lessons/:id/clients", h.LessonClients)
	auth.POST("/lessons/:id/enroll", h.Enroll)
	auth.POST("/lessons/:id/unenroll", h.Unenroll)
	auth.POST("/lessons/:id/start", h.StartLesson)
	auth.POST("/lessons/:id/finish", h.FinishLesson)
	auth.POST("/lessons/:id/cancel", h.CancelLesson)
	auth.PUT("/lessons/:id/capacity", h.SetCapacity)
	auth.POST("/lessons/:id/rating", h.RateLesson)

	auth.POST("/instructors", h.CreateInstructor)
	auth.GET("/instructors", h.ListInstructors)
	auth.GET("/instructors/:id", h.GetInstructor)

	auth.POST("/equipment", h.AddEquipment)
	auth.GET("/equipment", h.ListEquipment)
	auth.POST("/rentals", h.Rent)
	auth.POST("/rentals/:id/return", h.ReturnRental)
	auth.GET("/rentals/active", h.ActiveRentals)

	auth.POST("/employees", h.RegisterEmployee)
	auth.GET("/employees", h.ListStaff)
	auth.GET("/employees/clerks", h.ListClerks)

	return r
}
