package controller

import "github.com/sbilalh/Binary-Compression/internal/application"

type Controller struct {
	app   *application.Application
	Codec CodecController
	Other OtherController
}

func NewController(
	app *application.Application,
	codec CodecController,
	other OtherController,
) *Controller {
	return &Controller{
		app:   app,
		Codec: codec,
		Other: other,
	}
}

// register routes of codec module
func (c *Controller) RegisterRoutes() {
	// define routes
	c.app.Router.GET("/metrics", c.Other.HandleMetrics)
	c.app.Router.GET("/k8s/healthz", c.Other.HandleK8sHealthz)

	c.app.Router.POST("/encode", c.Codec.HandleEncode)
	c.app.Router.POST("/{apikey}/encode", c.Codec.HandleEncode)
	c.app.Router.POST("/decode", c.Codec.HandleDecode)
	c.app.Router.POST("/{apikey}/decode", c.Codec.HandleDecode)

	c.app.Router.GET("/artifacts/{id}", c.Codec.HandleArtifact)
}
