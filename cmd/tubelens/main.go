package main

import (
	"tubelens/cmd/handlers"
	"tubelens/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
