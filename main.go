package main

import (
	"github.com/pathfinder/app/cmd"
)

// @title Pathfinder API
// @version 1.0
// @description Mentorship and storytelling backend: mentor matching, email verification, stories, journals and media generation.

// @host  localhost:8000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cmd.StartApp()
}
