package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/sbilalh/Binary-Compression/internal/common"
	"github.com/sbilalh/Binary-Compression/internal/database/schema"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/repository"
	"github.com/sbilalh/Binary-Compression/internal/module/core/bitio"
	"github.com/sbilalh/Binary-Compression/internal/module/core/huffman"
	"github.com/sbilalh/Binary-Compression/internal/module/shared"
	"github.com/sbilalh/Binary-Compression/utils"
	"github.com/sbilalh/Binary-Compression/utils/config"
	"github.com/allegro/bigcache"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type EncodeOptions struct {
	TenantID   *uint64
	RenderTree bool
	Persist    bool
}

// EncodeResult is both the API payload and the bigcache entry, so a cache
// hit replays the whole response.
type EncodeResult struct {
	ArtifactID   string  `json:"id"`
	FreqTable    string  `json:"freq_table"`
	Tree         string  `json:"tree,omitempty"`
	Packed       []byte  `json:"packed"`
	OriginalSize int     `json:"original_size"`
	PackedSize   int     `json:"packed_size"`
	Ratio        float64 `json:"ratio"`
	Cached       bool    `json:"cached"`
}

type CodecService interface {
	Encode(ctx context.Context, input []byte, opts EncodeOptions) (*EncodeResult, error)
	Decode(ctx context.Context, packed []byte, freqText string, artifactUID string) ([]byte, error)
	Artifact(ctx context.Context, uid string) (*schema.Artifact, error)
	Purge()
}

type codecServiceConfig struct {
	MaxInputBytes int64
	ArtifactTTL   time.Duration
}

// CodecService
type codecService struct {
	logger             zerolog.Logger
	config             codecServiceConfig
	redis              *shared.RedisClient
	artifactRepository repository.IArtifactRepository
	cache              *bigcache.BigCache
}

// init CodecService
func NewCodecService(config *config.Conf, logger zerolog.Logger, redis *shared.RedisClient, artifactRepository repository.IArtifactRepository) CodecService {
	_cacheConfig := bigcache.Config{
		// number of shards (must be a power of 2)
		Shards: 8,

		// time after which entry can be evicted
		LifeWindow: 1 * time.Hour,

		// bigcache has a one second resolution, keep this >= 1s
		CleanWindow: 10 * time.Minute,

		// cache will not allocate more memory than this limit, value in MB
		HardMaxCacheSize: 64,
	}
	config.Unmarshal("codec.bigcache", &_cacheConfig)
	cache, initErr := bigcache.NewBigCache(_cacheConfig)
	if initErr != nil {
		log.Fatal(initErr)
	}

	service := &codecService{
		logger:             logger.With().Str("name", "codec_service").Logger(),
		redis:              redis,
		artifactRepository: artifactRepository,
		cache:              cache,
		config: codecServiceConfig{
			MaxInputBytes: config.Int64("codec.limits.max-input-bytes", 64<<20),
			ArtifactTTL:   config.Duration("codec.artifact-ttl", 7*24*time.Hour),
		},
	}

	return service
}

func (s *codecService) Encode(ctx context.Context, input []byte, opts EncodeOptions) (*EncodeResult, error) {
	if len(input) == 0 {
		return nil, common.UnprocessableEntityError("Input is empty", huffman.ErrEmptyInput)
	}
	if s.config.MaxInputBytes > 0 && int64(len(input)) > s.config.MaxInputBytes {
		return nil, common.UnprocessableEntityError("Input exceeds the size limit")
	}

	digest := _Digest(input)

	result := &EncodeResult{}
	if err := _GetCache(s.cache, digest, result); err == nil && result.ArtifactID != "" {
		result.Cached = true
		utils.TotalCaches.WithLabelValues(string(common.EncodeJob), "hit").Inc()
		return result, nil
	}
	utils.TotalCaches.WithLabelValues(string(common.EncodeJob), "miss").Inc()

	packed, freqText, err := huffman.Encode(input)
	if err != nil {
		if errors.Is(err, huffman.ErrEmptyInput) {
			return nil, common.UnprocessableEntityError("Input is empty", err)
		}
		return nil, common.InternalServerError("Encoding failed", err)
	}

	result = &EncodeResult{
		ArtifactID:   uuid.NewString(),
		FreqTable:    freqText,
		Packed:       packed,
		OriginalSize: len(input),
		PackedSize:   len(packed),
		Ratio:        float64(len(packed)) / float64(len(input)),
	}

	if opts.RenderTree {
		if root, err := huffman.Build(huffman.CountBytes(input)); err == nil {
			result.Tree = huffman.Render(root)
		}
	}

	if opts.Persist {
		artifact := &schema.Artifact{
			UID:          result.ArtifactID,
			Digest:       digest,
			FreqTable:    freqText,
			OriginalSize: int64(result.OriginalSize),
			PackedSize:   int64(result.PackedSize),
			Ratio:        result.Ratio,
			TenantID:     opts.TenantID,
		}
		if err := s.artifactRepository.CreateArtifact(ctx, artifact); err != nil {
			// persistence failures don't fail the job
			s.logger.Error().Err(err).Str("uid", artifact.UID).Msg("Failed to persist artifact")
		} else {
			go s.cacheArtifact(context.Background(), artifact)
		}
	}

	if err := _SetCache(s.cache, digest, result); err != nil {
		s.logger.Error().Err(err).Msg("Cache update error")
	}

	return result, nil
}

func (s *codecService) Decode(ctx context.Context, packed []byte, freqText string, artifactUID string) ([]byte, error) {
	if freqText == "" && artifactUID != "" {
		var err error
		if freqText, err = s.lookupFreqTable(ctx, artifactUID); err != nil {
			return nil, err
		}
	}
	if freqText == "" {
		return nil, common.BadRequestError("Frequency table is missing")
	}

	out, err := huffman.Decode(packed, freqText)
	if err != nil {
		switch {
		case errors.Is(err, huffman.ErrMalformedEntry):
			return nil, common.UnprocessableEntityError("Frequency table is malformed", err)
		case errors.Is(err, huffman.ErrEmptyInput):
			return nil, common.UnprocessableEntityError("Frequency table is empty", err)
		case errors.Is(err, huffman.ErrTraversal), errors.Is(err, bitio.ErrEndOfStream):
			return nil, common.UnprocessableEntityError("Packed stream is corrupt", err)
		}
		return nil, common.InternalServerError("Decoding failed", err)
	}

	return out, nil
}

func (s *codecService) Artifact(ctx context.Context, uid string) (*schema.Artifact, error) {
	artifact := &schema.Artifact{}

	if s.redis != nil && s.redis.Client != nil {
		data, err := s.redis.Client.Get(ctx, _ArtifactKey(uid)).Bytes()
		if err != nil && err != redis.Nil {
			s.logger.Warn().Err(err).Str("uid", uid).Msg("Cache read error")
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, artifact); err == nil {
				return artifact, nil
			}
		}
	}

	if err := s.artifactRepository.GetArtifactByUID(ctx, uid, artifact); err != nil {
		return nil, common.NotFoundError("Artifact not found", err)
	}

	go s.cacheArtifact(context.Background(), artifact)

	return artifact, nil
}

func (s *codecService) Purge() {
	if err := s.cache.Reset(); err != nil {
		s.logger.Error().Err(err).Msg("Failed to reset cache")
	}
}

func (s *codecService) lookupFreqTable(ctx context.Context, uid string) (string, error) {
	artifact, err := s.Artifact(ctx, uid)
	if err != nil {
		return "", err
	}
	return artifact.FreqTable, nil
}

func (s *codecService) cacheArtifact(ctx context.Context, artifact *schema.Artifact) {
	defer func() {
		if err := recover(); err != nil {
			s.logger.Error().Interface("error", err).Msg("Failed to save artifact to redis")
		}
	}()

	if s.redis == nil || s.redis.Client == nil {
		return
	}

	data, err := json.Marshal(artifact)
	if err != nil {
		return
	}
	s.redis.Client.Set(ctx, _ArtifactKey(artifact.UID), data, s.config.ArtifactTTL)
}
