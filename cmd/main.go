package main

import (
	"nutriplan/config"
	"nutriplan/routes"
	"nutriplan/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
