package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/devansh21640/Kanoonwise-sub002/internal/audit"
	"github.com/devansh21640/Kanoonwise-sub002/internal/config"
	domainAppointment "github.com/devansh21640/Kanoonwise-sub002/internal/domain/appointment"
	"github.com/devansh21640/Kanoonwise-sub002/internal/handlers"
	infraRepo "github.com/devansh21640/Kanoonwise-sub002/internal/infra/repository"
	"github.com/devansh21640/Kanoonwise-sub002/internal/middleware"
	"github.com/devansh21640/Kanoonwise-sub002/internal/notify"
	"github.com/devansh21640/Kanoonwise-sub002/internal/otp"
	"github.com/devansh21640/Kanoonwise-sub002/internal/storage"
	"github.com/devansh21640/Kanoonwise-sub002/internal/timezone"
	ucAppointment "github.com/devansh21640/Kanoonwise-sub002/internal/usecase/appointment"
	ucLawyer "github.com/devansh21640/Kanoonwise-sub002/internal/usecase/lawyer"
	ucReview "github.com/devansh21640/Kanoonwise-sub002/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ------------------------------
	// Infra singletons
	// ------------------------------
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	notifyDispatcher := notify.NewDispatcher(notify.NewMailer(cfg), log)

	otpStore := otp.NewStore(rdb, cfg.OTPTTL, cfg.OTPMaxAttempts)
	fileStore := storage.New(cfg, log)

	loc := timezone.Location(cfg.Timezone)
	window := domainAppointment.Window{
		StartHour:   cfg.SlotStartHour,
		EndHour:     cfg.SlotEndHour,
		HorizonDays: cfg.SlotHorizonDays,
	}

	// ------------------------------
	// Use cases
	// ------------------------------
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, notifyDispatcher, auditDispatcher, nil)
	respondUC := ucAppointment.NewRespondToAppointment(appointmentRepo, notifyDispatcher, auditDispatcher, nil)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	slotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo, window, loc, nil)
	searchUC := ucLawyer.NewSearchLawyers(db)
	reviewUC := ucReview.NewCreateReview(reviewRepo, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg, otpStore, notifyDispatcher)
	clientHandler := handlers.NewClientHandler(
		db, bookUC, cancelUC, listUC, slotsUC, searchUC, reviewUC, reviewRepo, fileStore,
	)
	lawyerHandler := handlers.NewLawyerHandler(db, respondUC, listUC, fileStore, loc)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher, notifyDispatcher, fileStore)

	// ------------------------------
	// Routes
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST(
			"/auth/otp/request",
			middleware.RateLimit(rdb, "otp", cfg.OTPRateLimit, cfg.OTPRateWindow, middleware.KeyByEmailIP),
			authHandler.RequestOTP,
		)
		api.POST("/auth/otp/verify", authHandler.VerifyOTP)
		api.POST("/auth/logout", authHandler.Logout)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg), middleware.CSRFMiddleware())
		{
			secured.GET("/me", authHandler.Me)

			client := secured.Group("/client")
			client.Use(middleware.RequireRole("client"))
			{
				client.GET("/profile", clientHandler.GetProfile)
				client.PUT("/profile", clientHandler.UpdateProfile)

				client.GET("/lawyers", clientHandler.ListLawyers)
				client.GET("/lawyers/:id", clientHandler.GetLawyer)

				client.POST("/book", clientHandler.Book)
				client.GET("/appointments", clientHandler.ListAppointments)
				client.DELETE("/appointments/:id", clientHandler.CancelAppointment)

				client.POST("/reviews", clientHandler.CreateReview)
			}

			lawyer := secured.Group("/lawyer")
			lawyer.Use(middleware.RequireRole("lawyer"))
			{
				lawyer.GET("/profile", lawyerHandler.GetProfile)
				lawyer.PUT(
					"/profile",
					middleware.WithTimeout(cfg.UploadTimeout),
					lawyerHandler.UpdateProfile,
				)

				lawyer.GET("/appointments", lawyerHandler.ListAppointments)
				lawyer.PATCH("/appointments/respond", lawyerHandler.Respond)
			}

			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/lawyers", adminHandler.ListLawyers)
				admin.GET("/lawyers/:id", adminHandler.GetLawyer)
				admin.PATCH("/lawyers/:id/approve", adminHandler.Approve)
				admin.PATCH("/lawyers/:id/reject", adminHandler.Reject)

				admin.GET("/audit-logs", adminHandler.ListAuditLogs)
			}
		}
	}
}
