package controller

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilalh/Binary-Compression/internal/common"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/service"
	"github.com/sbilalh/Binary-Compression/internal/module/core/api"
	"github.com/sbilalh/Binary-Compression/internal/module/core/source"
	"github.com/sbilalh/Binary-Compression/internal/module/shared"
	"github.com/sbilalh/Binary-Compression/utils"
	"github.com/sbilalh/Binary-Compression/utils/config"
	"github.com/sbilalh/Binary-Compression/utils/helpers"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"github.com/valyala/fasthttp"
)

type codecControllerConfig struct {
	AppName             string
	AmqpExchange        string
	Timeout             time.Duration
	EnableTenantFeature bool
	PersistDefault      bool
}

type codecController struct {
	logger        zerolog.Logger
	conf          *config.Conf
	amqp          *shared.Amqp
	schema        *api.Schema
	resolver      *source.Resolver
	codecService  service.CodecService
	tenantService service.TenantService
	config        codecControllerConfig
}

type CodecController interface {
	HandleEncode(ctx *fasthttp.RequestCtx)
	HandleDecode(ctx *fasthttp.RequestCtx)
	HandleArtifact(ctx *fasthttp.RequestCtx)
}

type encodeRequest struct {
	Input   source.Spec `json:"input"`
	Options struct {
		RenderTree bool `json:"render_tree"`
		Persist    bool `json:"persist"`
	} `json:"options"`
}

type decodeRequest struct {
	Packed     string `json:"packed"`
	FreqTable  string `json:"freq_table"`
	ArtifactID string `json:"artifact_id"`
}

type decodeResponse struct {
	Output []byte `json:"output"`
	Size   int    `json:"size"`
}

func NewCodecController(
	logger zerolog.Logger,
	conf *config.Conf,
	amqp *shared.Amqp,
	schema *api.Schema,
	resolver *source.Resolver,
	codecService service.CodecService,
	tenantService service.TenantService,
) CodecController {
	controller := &codecController{
		conf:          conf,
		amqp:          amqp,
		schema:        schema,
		resolver:      resolver,
		logger:        logger.With().Str("name", "codec_controller").Logger(),
		codecService:  codecService,
		tenantService: tenantService,
		config: codecControllerConfig{
			AppName:             conf.String("app.name", "Binary Compression"),
			AmqpExchange:        conf.String("amqp.exchange", "bincompress.job.topic"),
			Timeout:             conf.Duration("codec.timeout", 30*time.Second),
			EnableTenantFeature: conf.Bool("tenant.enable", false),
			PersistDefault:      conf.Bool("codec.persist", true),
		},
	}

	return controller
}

func (c *codecController) HandleEncode(ctx *fasthttp.RequestCtx) {
	c.handle(ctx, common.EncodeJob)
}

func (c *codecController) HandleDecode(ctx *fasthttp.RequestCtx) {
	c.handle(ctx, common.DecodeJob)
}

func (c *codecController) HandleArtifact(ctx *fasthttp.RequestCtx) {
	var (
		body       []byte
		statusCode = http.StatusOK
	)

	artifact, err := c.codecService.Artifact(ctx, fmt.Sprint(ctx.UserValue("id")))
	if common.IsHTTPErrors(err) {
		he := err.(common.HTTPErrors)
		statusCode = he.StatusCode()
		body = he.Body()
	} else if err != nil {
		he := common.InternalServerError("", err)
		statusCode = he.StatusCode()
		body = he.Body()
	} else {
		body, _ = json.Marshal(artifact)
	}

	c.respond(ctx, statusCode, body)
}

func (c *codecController) handle(ctx *fasthttp.RequestCtx, kind common.JobKind) {
	var (
		body       = []byte{}
		status     = common.Error
		statusCode = 500
		profile    = c.newProfile(ctx, kind)
	)

	data, app, err := c.call(ctx, kind, profile)

	if err != nil {
		status = err.JobStatus()
		statusCode = err.StatusCode()
		body = err.Body()
	} else {
		statusCode = http.StatusOK
		status = common.Success
		body = data
	}

	defer c.respond(ctx, statusCode, body)

	profile.Status = status
	profile.Endtime = time.Now().UnixMilli()

	// post-request compensation
	if app != nil {
		if profile.Status == common.Success || profile.Status == common.Fail {
			go c.tenantService.Affected(app)
		} else {
			// internal errors aren't charged
			go c.tenantService.Unaffected(app)
		}
	}

	if c.amqp.Conn != nil {
		go c.publish(kind, app, profile)
	}

	appName := "unknown"
	if app != nil {
		appName = app.Name
	}
	utils.TotalJobs.WithLabelValues(string(kind), appName, string(status)).Inc()
	utils.JobDurations.WithLabelValues(string(kind), appName).Observe(float64(profile.Endtime-profile.Starttime) / 1000.0)
	if kind == common.EncodeJob && profile.Ratio > 0 {
		utils.CompressionRatioSummary.WithLabelValues(appName).Observe(profile.Ratio)
	}
	c.logger.Info().Any("status", status).Str("id", profile.ID).TimeDiff("ms", time.UnixMilli(profile.Endtime), time.UnixMilli(profile.Starttime)).Msgf("%s %s %d", ctx.Method(), ctx.RequestURI(), statusCode)
}

func (c *codecController) call(ctx *fasthttp.RequestCtx, kind common.JobKind, profile *common.JobProfile) ([]byte, *common.App, common.HTTPErrors) {
	_ctx, cancel := context.WithTimeoutCause(ctx, c.config.Timeout, common.TimeoutError("Request timed out"))
	defer cancel()

	var app *common.App
	if c.config.EnableTenantFeature {
		var err error
		app, err = c.getTenantApp(_ctx, ctx)
		if common.IsHTTPErrors(err) {
			c.logger.Error().Str(zerolog.ErrorFieldName, err.(common.HTTPErrors).String()).Send()
			return nil, nil, err.(common.HTTPErrors)
		} else if err != nil {
			c.logger.Error().Err(err).Send()
			return nil, nil, common.InternalServerError("", err)
		}
		profile.AppID = app.ID
	}

	var (
		data []byte
		err  error
	)
	switch kind {
	case common.EncodeJob:
		data, err = c.encode(_ctx, ctx, profile, app)
	case common.DecodeJob:
		data, err = c.decode(_ctx, ctx, profile)
	}

	if common.IsHTTPErrors(err) {
		c.logger.Error().Str(zerolog.ErrorFieldName, err.(common.HTTPErrors).String()).Send()
		return nil, app, err.(common.HTTPErrors)
	} else if err != nil {
		c.logger.Error().Stack().Err(err).Send()
		return nil, app, common.InternalServerError("", err)
	}

	return data, app, nil
}

func (c *codecController) encode(ctx context.Context, rctx *fasthttp.RequestCtx, profile *common.JobProfile, app *common.App) ([]byte, error) {
	var req encodeRequest
	if err := c.parse(rctx.PostBody(), "encode", &req); err != nil {
		return nil, err
	}

	input, sourceProfile, err := c.resolver.Resolve(ctx, req.Input)
	profile.Source = sourceProfile
	if err != nil {
		return nil, err
	}

	opts := service.EncodeOptions{
		RenderTree: req.Options.RenderTree,
		Persist:    c.config.PersistDefault || req.Options.Persist,
	}
	if app != nil {
		opts.TenantID = &app.ID
		if app.Preferences != nil {
			if v, ok := app.Preference("codec.render-tree").(bool); ok {
				opts.RenderTree = opts.RenderTree || v
			}
			if v, ok := app.Preference("codec.persist").(bool); ok {
				opts.Persist = v
			}
		}
	}

	result, err := c.codecService.Encode(ctx, input, opts)
	if err != nil {
		return nil, err
	}

	profile.ArtifactID = result.ArtifactID
	profile.OriginalSize = result.OriginalSize
	profile.PackedSize = result.PackedSize
	profile.Ratio = result.Ratio
	profile.Cached = result.Cached

	return json.Marshal(result)
}

func (c *codecController) decode(ctx context.Context, rctx *fasthttp.RequestCtx, profile *common.JobProfile) ([]byte, error) {
	var req decodeRequest
	if err := c.parse(rctx.PostBody(), "decode", &req); err != nil {
		return nil, err
	}

	packed, err := base64.StdEncoding.DecodeString(req.Packed)
	if err != nil {
		return nil, common.BadRequestError("Packed input is not valid base64", err)
	}

	out, err := c.codecService.Decode(ctx, packed, req.FreqTable, req.ArtifactID)
	if err != nil {
		return nil, err
	}

	profile.ArtifactID = req.ArtifactID
	profile.PackedSize = len(packed)
	profile.OriginalSize = len(out)

	return json.Marshal(decodeResponse{Output: out, Size: len(out)})
}

// parse validates the body against the operation schema before binding it.
func (c *codecController) parse(body []byte, op string, v any) error {
	raw := map[string]any{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return common.BadRequestError("Request body is not valid JSON", err)
	}
	if err := c.schema.ValidateRequest(op, raw); err != nil {
		return common.BadRequestError("Invalid request body", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return common.BadRequestError("Request body is not valid JSON", err)
	}
	return nil
}

func (c *codecController) getTenantApp(ctx context.Context, rctx *fasthttp.RequestCtx) (*common.App, error) {
	token := fmt.Sprint(rctx.UserValue("apikey"))
	if token == "" || token == "<nil>" {
		return nil, common.ForbiddenError("Token is empty")
	}

	bucket := string(rctx.QueryArgs().Peek("bucket"))
	if bucket == "" {
		bucket = "default"
	}

	app, err := c.tenantService.Access(ctx, token, bucket)
	if err != nil {
		c.logger.Error().Stack().Err(err).Msg("Get app error")
		if err.Error() == "context deadline exceeded" {
			if cause := context.Cause(ctx); cause != nil && common.IsHTTPErrors(cause) {
				return nil, cause
			}
		}

		return nil, common.ForbiddenError("Token is invalid")
	}

	// refuse access
	if app.Balance <= -1 {
		c.logger.Warn().Msgf("proxy overage. ⏳ %d/%f | ♻️ %f/s", app.Balance, app.Capacity, app.Rate)
		return nil, common.TooManyRequestsError("Token is overage")
	}

	return app, nil
}

func (c *codecController) newProfile(ctx *fasthttp.RequestCtx, kind common.JobKind) *common.JobProfile {
	return &common.JobProfile{
		ID:        uuid.NewString(),
		Kind:      kind,
		Href:      ctx.URI().String(),
		Method:    string(ctx.Method()),
		IP:        ctx.RemoteIP().String(),
		Starttime: time.Now().UnixMilli(),
	}
}

func (c *codecController) respond(ctx *fasthttp.RequestCtx, statusCode int, body []byte) {
	if !ctx.Response.ConnectionClose() {
		ctx.Response.Header.Set("Access-Control-Allow-Headers", "*")
		ctx.Response.Header.Set("Access-Control-Allow-Methods", "*")
		ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
		ctx.Response.Header.Set("Access-Control-Expose-Headers", "*")
		ctx.Response.Header.Set("Referrer-Policy", "same-origin")
		ctx.Response.Header.Set("Server", c.config.AppName)
		ctx.Response.Header.SetContentType("application/json; charset=utf-8")
		ctx.SetBody(body)
		ctx.SetStatusCode(statusCode)
	}
}

// publish reports the finished job. The payload is Huffman-packed so the
// frequency table stays implicit in the stream.
func (c *codecController) publish(kind common.JobKind, app *common.App, data *common.JobProfile) {
	defer func() {
		if err := recover(); err != nil {
			c.logger.Error().Interface("error", err).Msg("Failed to publish to amqp")
		}
	}()

	if c.amqp.Conn.IsClosed() {
		c.logger.Error().Msg("connection is closed, skip amqp publish!")
		return
	}
	body, err1 := json.Marshal(data)
	if err1 != nil {
		c.logger.Error().Msg(err1.Error())
	}

	appId, appName := uint64(0), "unknown"
	if app != nil {
		appId = app.ID
		appName = app.Name
	}

	packed, err := helpers.Compress(body)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to compress publish payload")
		return
	}

	key := helpers.Concat("job.", string(kind), ".", strconv.FormatUint(appId, 10))
	err2 := c.amqp.Channel.Publish(c.config.AmqpExchange, key, false, false, amqp.Publishing{
		ContentType:     "application/octet-stream",
		ContentEncoding: "huffman",
		Body:            packed,
	})
	if err2 != nil {
		c.logger.Error().Msg(err2.Error())
	} else {
		utils.TotalAmqpMessages.WithLabelValues(string(kind), appName).Inc()
	}
}
