package api

import (
	"github.com/gin-gonic/gin"

	"github.com/just-one-coder/flux-prism/env"
	"github.com/just-one-coder/flux-prism/internal/services/api/controllers"
)

type API interface {
	Start() error
}

const (
	PathRegister = "/api/v1/artworks"
	PathVerify   = "/api/v1/verify"
	PathGallery  = "/api/v1/gallery"
)

type api struct {
	restHost       string
	restController *controllers.RestController
	restServer     *gin.Engine
}

func New(restController *controllers.RestController) (API, error) {
	restHost, err := env.Get(env.RestHost)
	if err != nil {
		return nil, err
	}

	a := api{
		restHost:       restHost,
		restController: restController,
		restServer:     gin.Default(),
	}

	a.initRest()

	return &a, nil
}

func (a *api) initRest() {
	a.restServer.POST(PathRegister, a.restController.RegisterArtwork)
	a.restServer.POST(PathVerify, a.restController.VerifyArtwork)
	a.restServer.GET(PathGallery, a.restController.ListGallery)
}

func (a *api) Start() error {
	return a.restServer.Run(a.restHost)
}
