package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turfbook/config"
	"turfbook/cron"
	"turfbook/database"
	bookingRepoPkg "turfbook/database/repository/booking"
	recordsRepoPkg "turfbook/database/repository/records"
	wishlistRepoPkg "turfbook/database/repository/wishlist"
	"turfbook/handlers"
	"turfbook/middleware"
	"turfbook/routes"
	bookingSvc "turfbook/services/booking"
	"turfbook/services/notification"
	"turfbook/services/records"
	"turfbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if _, err := config.LoadSiteConfig(); err != nil {
		logger.Sugar().Fatalf("main: failed to load site configuration: %v", err)
	}

	utils.InitStoreClient()
	utils.InitNotifClient()
	database.InitMongo()

	// Repositories. The live store is Firestore unless STORE_BACKEND points
	// at redis (single-host deployments).
	var bookingRepo bookingRepoPkg.BookingRepository
	var wishlistRepo wishlistRepoPkg.WishlistRepository
	if config.AppConfig.StoreBackend == "redis" {
		bookingRepo = bookingRepoPkg.NewRedisBookingRepo(utils.GetStoreClient())
		wishlistRepo = wishlistRepoPkg.NewRedisWishlistRepo(utils.GetStoreClient())
	} else {
		database.InitFirestore()
		bookingRepo = bookingRepoPkg.NewFirestoreBookingRepo()
		wishlistRepo = wishlistRepoPkg.NewFirestoreWishlistRepo()
	}
	recordsRepo := recordsRepoPkg.NewMongoRecordRepo()

	// Services.
	notificationService := notification.NewNotificationService(utils.GetNotifClient())
	var remote bookingSvc.RemoteConverter
	if url := config.AppConfig.ConvertFnURL; url != "" {
		remote = bookingSvc.NewCallableConverter(url)
	}
	bookingService := bookingSvc.NewBookingService(bookingRepo, wishlistRepo, remote, notificationService)
	recordService := records.NewRecordService(bookingRepo, recordsRepo)

	stopWorker := cron.StartWorker(recordService)
	defer stopWorker()

	// HTTP surface.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := handlers.NewHandlerBundle(bookingService, recordService, notificationService)
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	logger.Info("server stopped gracefully")
}
