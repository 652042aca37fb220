package bootstrap

import (
	"context"
	"time"

	"github.com/sbilalh/Binary-Compression/internal/application"
	"github.com/sbilalh/Binary-Compression/internal/database"
	"github.com/sbilalh/Binary-Compression/internal/module/codec"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/controller"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/service"
	"github.com/sbilalh/Binary-Compression/internal/module/core"
	"github.com/sbilalh/Binary-Compression/internal/module/shared"
	"github.com/sbilalh/Binary-Compression/utils"
	"github.com/sbilalh/Binary-Compression/utils/config"
	"github.com/rs/zerolog"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.uber.org/fx"
	"gopkg.in/yaml.v2"

	fxzerolog "github.com/efectn/fx-zerolog"
	"github.com/prometheus/client_golang/prometheus"
)

func StartCluster() {
	// register metrics
	prometheus.MustRegister(utils.TotalJobs)
	prometheus.MustRegister(utils.JobDurations)
	prometheus.MustRegister(utils.TotalSources)
	prometheus.MustRegister(utils.SourceDurations)
	prometheus.MustRegister(utils.TotalCaches)
	prometheus.MustRegister(utils.TotalAmqpMessages)
	prometheus.MustRegister(utils.CompressionRatioSummary)

	fx.New(
		// provide modules
		shared.NewSharedModule,
		core.NewCoreModule,
		codec.NewCodecModule,

		// application
		fx.Provide(application.NewApplication),

		// define options
		fx.WithLogger(fxzerolog.Init()),
		fx.StartTimeout(5*time.Minute),
		fx.StopTimeout(5*time.Minute),

		// launch
		fx.Invoke(InitCluster),
	).Run()
}

// function to start webserver
func InitCluster(
	lifecycle fx.Lifecycle,
	conf *config.Conf,
	logger zerolog.Logger,
	database *database.Database,
	amqp *shared.Amqp,
	etcd *clientv3.Client,
	redis *shared.RedisClient,
	watcher *shared.WatcherClient,
	controller *controller.Controller,
	app *application.Application,
	codecService service.CodecService,
) {
	lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				var i = 1
				logger = logger.With().Str("name", "cluster").Logger()

				if err := database.Connect(ctx); err != nil {
					logger.Error().Err(err).Msgf("%d- An unknown error interrupted when to connect the Database!", i)
				} else {
					logger.Info().Msgf("%d- Connected the Database succesfully!", i)
				}
				i++

				if err := redis.Connect(ctx); err != nil {
					logger.Error().Err(err).Msgf("%d- An unknown error interrupted when to connect the Redis!", i)
				} else {
					logger.Info().Msgf("%d- Connected the Redis succesfully!", i)
				}
				i++

				if err := amqp.Connect(ctx); err != nil {
					logger.Error().Err(err).Msgf("%d- An unknown error occurred when to connect the Amqp!", i)
				} else {
					logger.Info().Msgf("%d- Connected the Amqp succesfully!", i)
				}
				i++

				// watch the codec tuning document
				if conf.Exists(shared.KoanfEtcdCodecConfigToken) {
					watcher.OnChanged(conf.String(shared.KoanfEtcdCodecConfigToken), func(path string, value []byte) {
						var (
							val = map[string]any{}
							err = yaml.Unmarshal(value, &val)
						)
						if err != nil {
							logger.Fatal().Msgf("Error loading watch config: %v", err)
						} else {
							conf.Set(shared.KoanfCodecToken, val)
							codecService.Purge()
							logger.Printf(conf.Sprint())
							logger.Printf("Reload %s config.", path)
						}
					})
					logger.Info().Msgf("%d- Watching codec config file...", i)
				} else {
					logger.Warn().Msgf("%d- Watch codec config file is disabled!", i)
				}

				go func() {
					controller.RegisterRoutes()

					logger.Info().Msg("🚀 " + app.AppName + " is running! listen on http://" + app.Hostname + ":" + app.Port)
					if err := app.Run(); err != nil {
						logger.Error().Err(err).Msg("An unknown error occurred when to run server!")
					}
				}()

				return nil
			},
			OnStop: func(ctx context.Context) error {
				logger.Info().Msg("Running cleanup tasks...")

				var i = 1

				if err := app.Shutdown(ctx); err != nil {
					logger.Error().Err(err).Msgf("%d- An unknown error occurred when to shutdown the Server!", i)
				} else {
					logger.Info().Msgf("%d- Shutdown the Server succesfully!", i)
				}
				i++

				if err := etcd.Close(); err != nil {
					logger.Error().Err(err).Msgf("%d- An unknown error occurred when to closed the etcd!", i)
				} else {
					logger.Info().Msgf("%d- Closed the ETCD succesfully!", i)
				}
				i++

				if err := redis.Close(); err != nil {
					logger.Error().Err(err).Msgf("%d- An unknown error occurred when to closed the redis!", i)
				} else {
					logger.Info().Msgf("%d- Closed the Redis succesfully!", i)
				}
				i++

				if err := amqp.Close(); err != nil {
					logger.Error().Err(err).Msgf("%d- An unknown error occurred when to closed the amqp!", i)
				} else {
					logger.Info().Msgf("%d- Closed the Amqp succesfully!", i)
				}
				i++

				if err := database.Close(); err != nil {
					logger.Error().Err(err).Msg("An unknown error occurred when to shutdown the database!")
				} else {
					logger.Info().Msgf("%d- Closed the Database succesfully!", i)
				}
				i++

				logger.Info().Msgf("%s was successful shutdown.", app.AppName)
				logger.Info().Msg("\u001b[96msee you again👋\u001b[0m")

				return nil
			},
		},
	)
}
