package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/cryptocreeper94-sudo/paintpros-sub000/configs"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/api/handlers"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/api/middleware"
	job "github.com/cryptocreeper94-sudo/paintpros-sub000/internal/jobs"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/queue"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/repository"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/service"
	"github.com/cryptocreeper94-sudo/paintpros-sub000/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	st := store.NewPostgresStore(db)
	if err := st.Migrate(context.Background()); err != nil {
		log.Fatalf("Failed to prepare collections table: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	imageRepo := repository.NewImageRepository(st)
	messageRepo := repository.NewMessageRepository(st)
	bundleRepo := repository.NewBundleRepository(st)
	postRepo := repository.NewPostRepository(st)
	noteRepo := repository.NewNoteRepository(st)

	r2Service := service.NewR2Service(*cfg)
	ingestService := service.NewIngestService(*cfg, r2Service)
	imageService := service.NewImageService(imageRepo, ingestService)
	messageService := service.NewMessageService(messageRepo)
	bundleService := service.NewBundleService(bundleRepo, imageRepo, messageRepo, ingestService)
	postService := service.NewPostService(postRepo)
	calendarService := service.NewCalendarService(postRepo, bundleRepo)
	noteService := service.NewNoteService(noteRepo)

	brandMiddleware := middleware.NewBrandMiddleware(*cfg)

	api := app.Group("/api")
	api.Use(brandMiddleware.BrandMiddleware())

	vocabulary := handlers.NewVocabularyHandler()
	api.Get("/vocabulary", vocabulary.GetVocabulary)

	image := handlers.NewImageHandler(imageService, client)
	api.Get("/images", image.ListImages)
	api.Post("/images/create", image.CreateImage)
	api.Post("/images/update", image.UpdateImage)
	api.Post("/images/remove", image.RemoveImage)
	api.Post("/images/ingest/refresh", image.RefreshIngest)

	message := handlers.NewMessageHandler(messageService)
	api.Get("/messages", message.ListMessages)
	api.Post("/messages/create", message.CreateMessage)
	api.Post("/messages/update", message.UpdateMessage)
	api.Post("/messages/remove", message.RemoveMessage)

	bundle := handlers.NewBundleHandler(bundleService)
	api.Get("/bundles", bundle.ListBundles)
	api.Post("/bundles/generate", bundle.GenerateBundles)
	api.Post("/bundles/create", bundle.CreateBundle)
	api.Post("/bundles/status", bundle.UpdateBundleStatus)
	api.Post("/bundles/schedule", bundle.ScheduleBundle)
	api.Post("/bundles/posted", bundle.MarkBundlePosted)
	api.Post("/bundles/ad_type", bundle.ToggleAdType)
	api.Post("/bundles/metrics", bundle.AttachMetrics)
	api.Post("/bundles/remove", bundle.RemoveBundle)

	post := handlers.NewPostHandler(postService)
	api.Get("/posts", post.ListPosts)
	api.Post("/posts/create", post.CreatePost)
	api.Post("/posts/update", post.UpdatePost)
	api.Post("/posts/schedule", post.SchedulePost)
	api.Post("/posts/posted", post.MarkPostPosted)
	api.Post("/posts/claim", post.ClaimPost)
	api.Post("/posts/remove", post.RemovePost)

	calendarH := handlers.NewCalendarHandler(calendarService)
	api.Get("/calendar", calendarH.GetWeek)

	note := handlers.NewNoteHandler(noteService)
	api.Get("/notes", note.ListNotes)
	api.Post("/notes/add", note.AddNote)
	api.Post("/notes/remove", note.RemoveNote)

	// cron jobs
	ingestJob := job.NewIngestSyncJob(ingestService)

	//queue
	queueW := queue.NewQueue(ingestService)

	c := cron.New()
	c.AddFunc("@every 00h15m00s", ingestJob.SyncFeeds)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeIngestSync, queueW.HandleIngestSyncTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.ListenAddr)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
