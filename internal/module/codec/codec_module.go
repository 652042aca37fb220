package codec

import (
	"github.com/sbilalh/Binary-Compression/internal/module/codec/controller"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/repository"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/service"
	"go.uber.org/fx"
)

// register bulky of codec module
var NewCodecModule = fx.Options(
	// register repository of codec module
	fx.Provide(repository.NewTenantRepository),
	fx.Provide(repository.NewArtifactRepository),

	// register service of codec module
	fx.Provide(service.NewCodecService),
	fx.Provide(service.NewTenantService),

	// register controller of codec module
	fx.Provide(controller.NewCodecController),
	fx.Provide(controller.NewOtherController),

	fx.Provide(controller.NewController),
)
