package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"huffpack/internal/config"
	"huffpack/internal/handler"
	"huffpack/internal/logger"
	"huffpack/internal/router"
	"huffpack/internal/service"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	codecSvc := service.NewCodecService(logg)
	codecH := handler.NewCodecHandler(codecSvc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	log.Printf("starting huffpackd at %s\n", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
