package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MediBookLabs/clinic-scheduler/internal/audit"
	"github.com/MediBookLabs/clinic-scheduler/internal/cache"
	"github.com/MediBookLabs/clinic-scheduler/internal/config"
	"github.com/MediBookLabs/clinic-scheduler/internal/handlers"
	infraRepo "github.com/MediBookLabs/clinic-scheduler/internal/infra/repository"
	"github.com/MediBookLabs/clinic-scheduler/internal/middleware"
	"github.com/MediBookLabs/clinic-scheduler/internal/payments"
	"github.com/MediBookLabs/clinic-scheduler/internal/storage"
	ucScheduling "github.com/MediBookLabs/clinic-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ------------------------------
	// INFRA (SINGLETONS)
	// ------------------------------
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)
	userRoles := infraRepo.NewUserRolesGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	catalog := cache.NewServiceCatalog(cfg.RedisURL, log)

	var intents payments.IntentCreator = payments.Disabled{}
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPagoClient(cfg.MercadoPagoToken)
		if err != nil {
			log.Warn("payment provider init failed, intents disabled", zap.Error(err))
		} else {
			intents = mp
		}
	} else {
		log.Warn("MP_ACCESS_TOKEN not set, payment intents disabled")
	}

	uploader := storage.NewUploader(
		cfg.S3Region,
		cfg.S3Bucket,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
	)

	// ------------------------------
	// USE CASES
	// ------------------------------
	createBookingUC := ucScheduling.NewCreateBooking(schedulingRepo, auditDispatcher)
	getAvailabilityUC := ucScheduling.NewGetAvailability(schedulingRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	serviceHandler := handlers.NewServiceHandler(schedulingRepo, catalog)
	userHandler := handlers.NewUserHandler(db, cfg, userRoles, auditDispatcher)
	bookingHandler := handlers.NewBookingHandler(
		schedulingRepo,
		createBookingUC,
		getAvailabilityUC,
		auditDispatcher,
	)
	doctorHandler := handlers.NewDoctorHandler(db, uploader, auditDispatcher)
	paymentHandler := handlers.NewPaymentHandler(intents, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------
	// GUARDS
	// ------------------------------
	requireAuth := middleware.RequireAuth(cfg)
	requireAdmin := middleware.RequireAdmin(userRoles)

	// ------------------------------
	// PUBLIC
	// ------------------------------
	r.GET("/service", serviceHandler.List)
	r.GET("/available", bookingHandler.Available)
	r.GET("/admin/:email", userHandler.IsAdmin)
	r.POST("/booking", bookingHandler.Create)

	// PUT /user/admin/:email and PUT /user/:email share a prefix the
	// router tree cannot split; the handler dispatches and applies the
	// auth guards for the admin branch itself.
	r.PUT("/user/*rest", userHandler.UpsertOrPromote)

	// ------------------------------
	// BEARER
	// ------------------------------
	secured := r.Group("/")
	secured.Use(requireAuth)
	{
		secured.GET("/user", userHandler.List)

		secured.GET("/booking", bookingHandler.ListByPatient)
		secured.GET("/booking/:id", bookingHandler.GetByID)
		secured.PATCH("/booking/:id", bookingHandler.MarkPaid)

		secured.POST("/create-payment-intent", paymentHandler.CreateIntent)

		// ------------------------------
		// BEARER + ADMIN
		// ------------------------------
		admin := secured.Group("/")
		admin.Use(requireAdmin)
		{
			admin.GET("/doctor", doctorHandler.List)
			admin.POST("/doctor", doctorHandler.Create)
			admin.DELETE("/doctor/:email", doctorHandler.Delete)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
