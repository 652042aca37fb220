package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sbilalh/Binary-Compression/internal/common"
	"github.com/sbilalh/Binary-Compression/internal/database/schema"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/repository"
	"github.com/sbilalh/Binary-Compression/internal/module/shared"
	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	gomock "go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func createCodecService(ctrl *gomock.Controller, conf map[string]any) (redismock.ClientMock, *repository.MockIArtifactRepository, CodecService) {
	rdb, mock := redismock.NewClientMock()
	rclient := &shared.RedisClient{
		Client: rdb,
	}

	repo := repository.NewMockIArtifactRepository(ctrl)

	codecService := NewCodecService(
		newConfig(conf),
		zerolog.Nop(),
		rclient,
		repo,
	)
	return mock, repo, codecService
}

func TestEncodeThenDecode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{})

	ctx := context.Background()
	input := []byte("a quick brown fox jumps over the lazy dog")

	result, err := codecService.Encode(ctx, input, EncodeOptions{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if result.ArtifactID == "" {
		t.Error("expected a generated artifact id, got empty")
	}
	if result.OriginalSize != len(input) {
		t.Errorf("expected %d, got %d", len(input), result.OriginalSize)
	}
	if result.PackedSize != len(result.Packed) {
		t.Errorf("expected %d, got %d", len(result.Packed), result.PackedSize)
	}
	if result.Ratio <= 0 {
		t.Errorf("expected positive ratio, got %f", result.Ratio)
	}
	if result.Cached {
		t.Error("expected fresh result, got cached")
	}
	if result.Tree != "" {
		t.Error("expected no tree rendering by default")
	}

	out, err := codecService.Decode(ctx, result.Packed, result.FreqTable, "")
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("expected %q, got %q", input, out)
	}
}

func TestEncodeReplaysCachedResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{})

	ctx := context.Background()
	input := []byte("same bytes, same key")

	first, err := codecService.Encode(ctx, input, EncodeOptions{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	second, err := codecService.Encode(ctx, input, EncodeOptions{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	if !second.Cached {
		t.Error("expected cached result on the second encode")
	}
	if second.ArtifactID != first.ArtifactID {
		t.Errorf("expected %s, got %s", first.ArtifactID, second.ArtifactID)
	}
	if !bytes.Equal(second.Packed, first.Packed) {
		t.Error("expected identical packed bytes on replay")
	}
}

func TestEncodeRenderTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{})

	result, err := codecService.Encode(context.Background(), []byte("AAABBC"), EncodeOptions{RenderTree: true})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if result.Tree == "" {
		t.Error("expected a rendered tree")
	}
}

func TestEncodePersistsArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, repo, codecService := createCodecService(ctrl, map[string]any{})

	input := []byte("persist me")

	repo.EXPECT().CreateArtifact(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, artifact *schema.Artifact) error {
		if artifact.UID == "" {
			t.Error("expected a uid on the persisted artifact")
		}
		if artifact.OriginalSize != int64(len(input)) {
			t.Errorf("expected %d, got %d", len(input), artifact.OriginalSize)
		}
		if artifact.FreqTable == "" {
			t.Error("expected a frequency table on the persisted artifact")
		}
		return nil
	})

	result, err := codecService.Encode(context.Background(), input, EncodeOptions{Persist: true})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if result.ArtifactID == "" {
		t.Error("expected a generated artifact id, got empty")
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{})

	_, err := codecService.Encode(context.Background(), nil, EncodeOptions{})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !common.IsHTTPErrors(err) {
		t.Fatalf("expected an http error, got %v", err)
	}
	if code := err.(common.HTTPErrors).StatusCode(); code != 422 {
		t.Errorf("expected 422, got %d", code)
	}
}

func TestEncodeInputTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{
		"codec.limits.max-input-bytes": 8,
	})

	_, err := codecService.Encode(context.Background(), []byte("way past the limit"), EncodeOptions{})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if code := err.(common.HTTPErrors).StatusCode(); code != 422 {
		t.Errorf("expected 422, got %d", code)
	}
}

func TestDecodeMissingFreqTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{})

	_, err := codecService.Decode(context.Background(), []byte{0x00}, "", "")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if code := err.(common.HTTPErrors).StatusCode(); code != 400 {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestDecodeMalformedFreqTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{})

	_, err := codecService.Decode(context.Background(), []byte{0x00}, "xyz:1\n", "")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if code := err.(common.HTTPErrors).StatusCode(); code != 422 {
		t.Errorf("expected 422, got %d", code)
	}
}

func TestDecodeByArtifactFromRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rdbmock, repo, codecService := createCodecService(ctrl, map[string]any{})

	ctx := context.Background()
	input := []byte("stored payload")

	result, err := codecService.Encode(ctx, input, EncodeOptions{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	uid := "11111111-2222-3333-4444-555555555555"
	stored := schema.Artifact{
		UID:          uid,
		FreqTable:    result.FreqTable,
		OriginalSize: int64(result.OriginalSize),
		PackedSize:   int64(result.PackedSize),
	}

	rdbmock.ExpectGet(_ArtifactKey(uid)).RedisNil()
	repo.EXPECT().GetArtifactByUID(gomock.Any(), uid, gomock.Any()).Return(nil).SetArg(2, stored)

	out, err := codecService.Decode(ctx, result.Packed, "", uid)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("expected %q, got %q", input, out)
	}
}

func TestArtifactFromRedisCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rdbmock, _, codecService := createCodecService(ctrl, map[string]any{})

	uid := "11111111-2222-3333-4444-555555555555"
	stored := schema.Artifact{
		UID:       uid,
		FreqTable: "01000001:3\n",
	}
	v, _ := json.Marshal(stored)
	rdbmock.ExpectGet(_ArtifactKey(uid)).SetVal(string(v))

	artifact, err := codecService.Artifact(context.Background(), uid)
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if artifact.UID != uid {
		t.Errorf("expected %s, got %s", uid, artifact.UID)
	}
	if artifact.FreqTable != stored.FreqTable {
		t.Errorf("expected %q, got %q", stored.FreqTable, artifact.FreqTable)
	}
}

func TestArtifactNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rdbmock, repo, codecService := createCodecService(ctrl, map[string]any{})

	uid := "missing"
	rdbmock.ExpectGet(_ArtifactKey(uid)).RedisNil()
	repo.EXPECT().GetArtifactByUID(gomock.Any(), uid, gomock.Any()).Return(gorm.ErrRecordNotFound)

	_, err := codecService.Artifact(context.Background(), uid)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if code := err.(common.HTTPErrors).StatusCode(); code != 404 {
		t.Errorf("expected 404, got %d", code)
	}
}

func TestPurgeDropsCachedResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, codecService := createCodecService(ctrl, map[string]any{})

	ctx := context.Background()
	input := []byte("purge target")

	if _, err := codecService.Encode(ctx, input, EncodeOptions{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	codecService.Purge()

	result, err := codecService.Encode(ctx, input, EncodeOptions{})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if result.Cached {
		t.Error("expected fresh result after purge")
	}
}
