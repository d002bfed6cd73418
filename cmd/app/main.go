package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/HeangSokmeng/camtour-api-sub000/cmd/fx/catalog_fx"
	"github.com/HeangSokmeng/camtour-api-sub000/cmd/fx/controllers_fx"
	"github.com/HeangSokmeng/camtour-api-sub000/cmd/fx/db_fx"
	"github.com/HeangSokmeng/camtour-api-sub000/cmd/fx/question_fx"
	"github.com/HeangSokmeng/camtour-api-sub000/cmd/fx/recommendation_fx"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/api/controllers"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/config"
	"github.com/HeangSokmeng/camtour-api-sub000/internal/infra"
	"github.com/HeangSokmeng/camtour-api-sub000/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		catalog_fx.Module,
		question_fx.Module,
		recommendation_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(infra.PrepareDatabase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	questionController *controllers.QuestionController,
	tripController *controllers.TripController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, questionController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	questionController *controllers.QuestionController,
	tripController *controllers.TripController) {

	trip := r.Group("/api/trip")
	trip.POST("/start", tripController.StartSession)
	trip.GET("/questions", questionController.GetQuestions)
	trip.GET("/questions/:dimension", questionController.GetQuestionByDimension)
	trip.POST("/answer", tripController.SubmitAnswer)
	trip.GET("/recommendation/:sessionId", tripController.GetRecommendation)
}
