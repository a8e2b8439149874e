package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthtrack/config"
	"healthtrack/repository"
	"healthtrack/routes"
	"healthtrack/services"
	"healthtrack/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Log.Errorf("config: %v", err)
		os.Exit(1)
	}

	db, err := config.OpenDatabase(cfg.DatabaseURL)
	if err != nil {
		utils.Log.Errorf("database: %v", err)
		os.Exit(1)
	}
	if err := config.Migrate(db); err != nil {
		utils.Log.Errorf("migrate: %v", err)
		os.Exit(1)
	}

	users := repository.NewUserRepo(db)
	foods := repository.NewFoodRepo(db)
	exercises := repository.NewExerciseRepo(db)
	devices := repository.NewDeviceRepo(db)

	var (
		mailer     services.Mailer
		avatars    services.AvatarUploader
		recognizer services.Recognizer
		push       *services.PushService
	)
	if cfg.S3Bucket != "" || cfg.SESEmail != "" || cfg.SNSFCMArn != "" || cfg.RekognitionEnabled {
		awsCfg, err := services.LoadAWSConfig(context.Background(), cfg.AWSRegion)
		if err != nil {
			utils.Log.Errorf("aws config: %v", err)
			os.Exit(1)
		}
		mailer, avatars, recognizer, push = buildAWS(cfg, awsCfg, devices)
	}

	var pusher services.Pusher
	if push != nil {
		pusher = push
	}

	hub := services.NewRealtimeHub()
	alerts := services.NewAlertService(repository.NewAlertRepo(db), hub, pusher)
	dashboard := services.NewDashboardService(foods, exercises, cfg.Location)
	streaks := services.NewStreakService(users, cfg.Location)

	r := routes.SetupRouter(routes.Deps{
		Auth:      services.NewAuthService(users, streaks, mailer, cfg.JWTSecret),
		Users:     services.NewUserService(users, avatars),
		Foods:     services.NewFoodService(foods, dashboard, alerts, hub, cfg.Location),
		Exercises: services.NewExerciseService(exercises, hub, cfg.Location),
		Dashboard: dashboard,
		AI:        services.NewAIService(newGenerator(cfg), recognizer),
		Alerts:    alerts,
		Push:      push,
		Hub:       hub,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Log.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Errorf("listen: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Log.Errorf("shutdown: %v", err)
	}
	utils.Log.Info("Server stopped")
}

func newGenerator(cfg *config.Config) services.Generator {
	if cfg.AIProvider == "huggingface" {
		if cfg.HuggingFaceToken == "" {
			utils.Log.Info("HUGGINGFACE_TOKEN not set, AI endpoints will fail")
		}
		return services.NewHuggingFaceGenerator(cfg.HuggingFaceToken, cfg.HuggingFaceModel)
	}
	if cfg.GeminiAPIKey == "" {
		utils.Log.Info("GEMINI_API_KEY not set, AI endpoints will fail")
	}
	return services.NewGeminiGenerator(cfg.GeminiAPIKey, cfg.GeminiModel)
}

// buildAWS wires every AWS-backed feature whose settings are present.
func buildAWS(cfg *config.Config, awsCfg aws.Config, devices repository.DeviceRepository) (
	mailer services.Mailer,
	avatars services.AvatarUploader,
	recognizer services.Recognizer,
	push *services.PushService,
) {
	if cfg.SESEmail != "" {
		mailer = services.NewSESMailerFromConfig(awsCfg, cfg.SESEmail)
	}
	if cfg.S3Bucket != "" {
		s3Cfg := awsCfg.Copy()
		if cfg.S3Region != "" {
			s3Cfg.Region = cfg.S3Region
		}
		publicURL := cfg.CloudFrontURL
		if publicURL == "" {
			publicURL = "https://" + cfg.S3Bucket + ".s3." + s3Cfg.Region + ".amazonaws.com"
		}
		avatars = services.NewS3AvatarStorageFromConfig(s3Cfg, cfg.S3Bucket, publicURL)
	}
	if cfg.RekognitionEnabled {
		recognizer = services.NewRekognitionRecognizerFromConfig(awsCfg)
	}
	if cfg.SNSFCMArn != "" {
		push = services.NewSNSPushService(awsCfg, devices, cfg.SNSFCMArn)
	}
	return mailer, avatars, recognizer, push
}
