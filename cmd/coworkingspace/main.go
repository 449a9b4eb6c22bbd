package main

import (
	"log"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/app"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
