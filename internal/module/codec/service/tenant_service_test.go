package service

import (
	"context"
	"encoding/json"
	"log"
	"testing"
	"time"

	"github.com/sbilalh/Binary-Compression/internal/common"
	"github.com/sbilalh/Binary-Compression/internal/database/schema"
	"github.com/sbilalh/Binary-Compression/internal/module/codec/repository"
	"github.com/sbilalh/Binary-Compression/internal/module/shared"
	"github.com/sbilalh/Binary-Compression/utils/config"
	"github.com/sbilalh/Binary-Compression/utils/general/types"
	"github.com/go-redis/redismock/v9"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	gomock "go.uber.org/mock/gomock"
)

func newConfig(value map[string]any) *config.Conf {
	k := koanf.New(".")
	conf := &config.Conf{Koanf: k}
	if err := conf.Load(confmap.Provider(value, "."), nil); err != nil {
		log.Fatal(err)
	}
	return conf
}

func createTenant(token string) schema.Tenant {
	tenant := schema.Tenant{
		Name:     "test",
		Token:    token,
		Rate:     1,
		Capacity: 100,
		Base: schema.Base{
			ID: types.Uint64(0),
		},
	}
	return tenant
}

func createTenantService(ctrl1 *gomock.Controller, ctrl2 *gomock.Controller) (*shared.MockScripts, redismock.ClientMock, *repository.MockITenantRepository, TenantService) {
	scripts := shared.NewMockScripts(ctrl1)

	rdb, mock := redismock.NewClientMock()
	rclient := &shared.RedisClient{
		Client: rdb,
	}

	repo := repository.NewMockITenantRepository(ctrl2)

	conf := newConfig(map[string]interface{}{
		"tenant.bigcache.Shards":           8,
		"tenant.bigcache.HardMaxCacheSize": 64,
	})

	tenantService := NewTenantService(
		conf,
		zerolog.Nop(),
		rclient,
		scripts,
		repo,
	)
	return scripts, mock, repo, tenantService
}

func TestAccessHasCache(t *testing.T) {
	ctrl1 := gomock.NewController(t)
	defer ctrl1.Finish()

	ctrl2 := gomock.NewController(t)
	defer ctrl2.Finish()

	token := "abc"
	_tenant := createTenant(token)

	rscriptsmock, rdbmock, _, tenantService := createTenantService(ctrl1, ctrl2)

	ctx := context.Background()

	rscriptsmock.EXPECT().Balance(ctx, "tenant#abc:default", int64(100), int64(1)).Return(int64(1), nil)

	v, _ := json.Marshal(_tenant)
	rdbmock.ExpectGet(_TenantKey(token)).SetVal(string(v))

	app, _ := tenantService.Access(ctx, token, "default")

	if app.TenantInfo.ID != _tenant.ID {
		t.Errorf("expected %d, got %d", _tenant.ID, app.TenantInfo.ID)
	}

	if app.TenantInfo.Name != _tenant.Name {
		t.Errorf("expected %s, got %s", _tenant.Name, app.TenantInfo.Name)
	}

	if app.TenantInfo.Token != token {
		t.Errorf("expected %s, got %s", token, app.TenantInfo.Token)
	}

	if app.TenantInfo.Rate != _tenant.Rate {
		t.Errorf("expected %f, got %f", _tenant.Rate, app.TenantInfo.Rate)
	}

	if app.TenantInfo.Capacity != _tenant.Capacity {
		t.Errorf("expected %f, got %f", _tenant.Capacity, app.TenantInfo.Capacity)
	}

	if app.Balance != 1 {
		t.Errorf("expected %d, got %d", 1, app.Balance)
	}

	if app.LastTime != 0 {
		t.Errorf("expected %d, got %d", 0, app.LastTime)
	}

	if app.Offset != 0 {
		t.Errorf("expected %d, got %d", 0, app.Offset)
	}
}

func TestAccessHasNoCache(t *testing.T) {
	ctrl1 := gomock.NewController(t)
	defer ctrl1.Finish()

	scripts := shared.NewMockScripts(ctrl1)
	scripts.EXPECT().Balance(context.Background(), "tenant#abc:default", int64(100), int64(1)).Return(int64(1), nil)

	token := "abc"
	info := createTenant(token)

	key := _TenantKey(token)

	rdb, mock := redismock.NewClientMock()
	rclient := &shared.RedisClient{
		Client: rdb,
	}
	mock.ExpectGet(key).RedisNil()
	mock.Regexp().ExpectSet(key, `.*`, 7*24*time.Hour).SetVal("OK")

	ctrl2 := gomock.NewController(t)
	defer ctrl2.Finish()
	repo := repository.NewMockITenantRepository(ctrl2)
	repo.EXPECT().GetTenantByToken(context.Background(), gomock.Eq(token), gomock.Any()).Return(nil).SetArg(2, info)

	tenantService := NewTenantService(
		nil,
		zerolog.Nop(),
		rclient,
		scripts,
		repo,
	)

	app, _ := tenantService.Access(context.Background(), token, "default")

	if app.TenantInfo.ID != info.ID {
		t.Errorf("expected %d, got %d", info.ID, app.TenantInfo.ID)
	}

	if app.TenantInfo.Name != info.Name {
		t.Errorf("expected %s, got %s", info.Name, app.TenantInfo.Name)
	}

	if app.TenantInfo.Token != info.Token {
		t.Errorf("expected %s, got %s", info.Token, app.TenantInfo.Token)
	}

	if app.Balance != 1 {
		t.Errorf("expected %d, got %d", 1, app.Balance)
	}

	if app.LastTime != 0 {
		t.Errorf("expected %d, got %d", 0, app.LastTime)
	}

	if app.Offset != 0 {
		t.Errorf("expected %d, got %d", 0, app.Offset)
	}
}

func TestAffected(t *testing.T) {
	ctrl1 := gomock.NewController(t)
	defer ctrl1.Finish()

	ctrl2 := gomock.NewController(t)
	defer ctrl2.Finish()

	_, rdbmock, _, tenantService := createTenantService(ctrl1, ctrl2)

	_app := common.App{
		TenantInfo: createTenant("abc"),
		Bucket:     "default",
		Balance:    1,
	}

	rdbmock.Regexp().ExpectHSet(_TenantKey("abc", "default"), "last", `\d+`).SetVal(1)

	err := tenantService.Affected(&_app)

	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if _app.LastTime == 0 {
		t.Errorf("expected now, got %d", _app.LastTime)
	}
}

func TestUnaffected(t *testing.T) {
	ctrl1 := gomock.NewController(t)
	defer ctrl1.Finish()

	ctrl2 := gomock.NewController(t)
	defer ctrl2.Finish()

	_, rdbmock, _, tenantService := createTenantService(ctrl1, ctrl2)

	_app := common.App{
		TenantInfo: createTenant("abc"),
		Bucket:     "default",
		Balance:    1,
	}

	rdbmock.ExpectHIncrBy(_TenantKey("abc", "default"), "balance", 1).SetVal(1)

	err := tenantService.Unaffected(&_app)

	if err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if _app.Offset == 0 {
		t.Errorf("expected %d, got %d", 1, _app.Offset)
	}
}
