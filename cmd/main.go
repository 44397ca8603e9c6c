package main

import (
	"os"

	"github.com/Chase-42/recipe-vault-sub002/config"
	"github.com/Chase-42/recipe-vault-sub002/routes"
	"github.com/Chase-42/recipe-vault-sub002/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	counters := config.NewRedisCounterStore()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(counters)
	r.Run(":" + port)
}
