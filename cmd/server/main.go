package main

import (
	"net/http"

	"github.com/circlehub/circlehub/server/handler"
	"github.com/circlehub/circlehub/server/middlewares"
	"github.com/circlehub/circlehub/utils"
	"github.com/circlehub/circlehub/utils/dotenv"
	. "github.com/circlehub/circlehub/utils/flag"
	. "github.com/circlehub/circlehub/utils/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	gintrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/gin-gonic/gin"
)

func cleanup() {
	utils.CloseProfiler()
	utils.CloseTracer()
	Log.Info("api server shutdown")
}

func main() {
	defer cleanup()

	ParseFlags()
	InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	if !IsDevelopment {
		utils.InitTracer()
		utils.InitProfiler()
	}
	if !ByPassAuth {
		middlewares.Setup()
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to DB: ", err)
	}
	if err := utils.DatabaseSetupAndMigration(db); err != nil {
		Log.Fatal("cannot migrate DB: ", err)
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middlewares.RequestId())
	router.Use(gintrace.Middleware(ServiceName))

	authMW := middlewares.JWT()
	if ByPassAuth {
		authMW = func(c *gin.Context) { c.Next() }
	}
	handler.RegisterRoutes(router, db, authMW)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
