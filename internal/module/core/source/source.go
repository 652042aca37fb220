package source

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sbilalh/Binary-Compression/internal/common"
	"github.com/sbilalh/Binary-Compression/utils"
	"github.com/sbilalh/Binary-Compression/utils/config"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Spec names one job input. Exactly one of Inline, Text, or Url should be
// set; Inline carries std base64.
type Spec struct {
	Headers map[string]string `json:"headers,omitempty"`
	Inline  string            `json:"inline,omitempty"`
	Text    string            `json:"text,omitempty"`
	Url     string            `json:"url,omitempty"`
}

type Resolver struct {
	logger    zerolog.Logger
	transport *http.Transport
	limits    common.CodecLimits
}

func NewResolver(conf *config.Conf, logger zerolog.Logger, transport *http.Transport) *Resolver {
	limits := common.CodecLimits{
		MaxInputBytes:  64 << 20,
		MaxSourceBytes: 64 << 20,
	}
	conf.Unmarshal("codec.limits", &limits)

	return &Resolver{
		logger:    logger.With().Str("name", "source_resolver").Logger(),
		transport: transport,
		limits:    limits,
	}
}

// Resolve fetches the job input bytes named by the spec.
func (r *Resolver) Resolve(ctx context.Context, spec Spec) ([]byte, *common.SourceProfile, error) {
	profile := &common.SourceProfile{Scheme: "inline"}

	switch {
	case spec.Inline != "":
		data, err := base64.StdEncoding.DecodeString(spec.Inline)
		if err != nil {
			return nil, profile, common.BadRequestError("Inline input is not valid base64", err)
		}
		profile.Size = len(data)
		return data, profile, nil

	case spec.Text != "":
		profile.Scheme = "text"
		profile.Size = len(spec.Text)
		return []byte(spec.Text), profile, nil

	case spec.Url != "":
		return r.resolveUrl(ctx, spec, profile)
	}

	return nil, profile, common.BadRequestError("Input is empty")
}

func (r *Resolver) resolveUrl(ctx context.Context, spec Spec, profile *common.SourceProfile) (data []byte, _ *common.SourceProfile, err error) {
	u, err := url.Parse(spec.Url)
	if err != nil {
		return nil, profile, common.BadRequestError("Input url is invalid", err)
	}

	profile.Scheme = u.Scheme
	profile.Url = spec.Url

	now := time.Now()
	defer func() {
		profile.Duration = time.Since(now).Milliseconds()
		status := "ok"
		if err != nil {
			profile.Error = err.Error()
			status = "error"
		} else {
			profile.Size = len(data)
		}
		utils.TotalSources.WithLabelValues(profile.Scheme, status).Inc()
		utils.SourceDurations.WithLabelValues(profile.Scheme).Observe(time.Since(now).Seconds())
	}()

	switch u.Scheme {
	case "file":
		data, err = r.readFile(u)
	case "http", "https":
		data, err = r.readHttp(ctx, spec, u)
	case "ws", "wss":
		data, err = r.readWebsocket(ctx, spec)
	default:
		err = common.BadRequestError(fmt.Sprintf("Unsupported source scheme: %s", u.Scheme))
	}

	return data, profile, err
}

func (r *Resolver) readFile(u *url.URL) ([]byte, error) {
	if !r.limits.AllowFileSources {
		return nil, common.ForbiddenError("File sources are disabled")
	}

	path := filepath.Clean(u.Path)
	if len(r.limits.FileRoots) > 0 {
		allowed := false
		for _, root := range r.limits.FileRoots {
			if strings.HasPrefix(path, filepath.Clean(root)+string(filepath.Separator)) {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, common.ForbiddenError("File path is outside the allowed roots")
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, common.NotFoundError("File not found", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, r.limits.MaxSourceBytes+1))
	if err != nil {
		return nil, common.UpstreamSourceError("Error reading file", err)
	}
	if int64(len(data)) > r.limits.MaxSourceBytes {
		return nil, common.UnprocessableEntityError("Source exceeds the size limit")
	}
	return data, nil
}

func (r *Resolver) readHttp(ctx context.Context, spec Spec, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, common.BadRequestError("Error creating request", err)
	}
	for key, value := range spec.Headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Transport: r.transport}
	resp, err := client.Do(req)
	if err != nil {
		return nil, common.UpstreamSourceError("Error fetching source", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.UpstreamSourceError(fmt.Sprintf("Source responded %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.limits.MaxSourceBytes+1))
	if err != nil {
		return nil, common.UpstreamSourceError("Error reading source body", err)
	}
	if int64(len(data)) > r.limits.MaxSourceBytes {
		return nil, common.UnprocessableEntityError("Source exceeds the size limit")
	}
	return data, nil
}

// readWebsocket drains messages from the peer until it closes the
// connection, the deadline hits, or the size limit is reached.
func (r *Resolver) readWebsocket(ctx context.Context, spec Spec) ([]byte, error) {
	headers := make(http.Header)
	for key, value := range spec.Headers {
		headers.Set(key, value)
	}

	dialer := websocket.Dialer{
		EnableCompression: true,
	}
	if r.transport != nil {
		dialer.TLSClientConfig = r.transport.TLSClientConfig.Clone()
	}

	conn, _, err := dialer.DialContext(ctx, spec.Url, headers)
	if err != nil {
		return nil, common.UpstreamSourceError("Error creating connection", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
	}

	var data []byte
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return data, nil
			}
			r.logger.Warn().Msgf("Error reading message: %v", err)
			return nil, common.UpstreamSourceError("Error reading source stream", err)
		}

		if messageType == websocket.BinaryMessage || messageType == websocket.TextMessage {
			data = append(data, message...)
		}

		if int64(len(data)) > r.limits.MaxSourceBytes {
			return nil, common.UnprocessableEntityError("Source exceeds the size limit")
		}
	}
}
