package core

import (
	"github.com/sbilalh/Binary-Compression/internal/module/core/api"
	"github.com/sbilalh/Binary-Compression/internal/module/core/source"
	"github.com/sbilalh/Binary-Compression/utils/config"
	"go.uber.org/fx"
)

// register bulky of core module
var NewCoreModule = fx.Options(
	fx.Provide(NewAPISchema),

	fx.Provide(source.NewResolver),
)

func NewAPISchema(config *config.Conf) *api.Schema {
	if config.Bool("api.enable_validation", false) {
		b := config.Get("api.schema")
		if v, ok := b.([]byte); ok {
			return api.NewSchema(v)
		}
	}

	return api.NewSchema([]byte{})
}
