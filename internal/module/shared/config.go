package shared

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/sbilalh/Binary-Compression/utils/config"
	kYaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	clientv3 "go.etcd.io/etcd/client/v3"
	"gopkg.in/yaml.v2"
)

var logger = log.New(os.Stderr, "conf ", log.Ldate|log.Ltime)

const KoanfCodecToken = "codec"
const KoanfEtcdStaticConfigToken = "etcd.setup.config.file"
const KoanfEtcdCodecConfigToken = "etcd.codec.config.file"
const KoanfEtcdAPISchemaToken = "etcd.api.schema.file"

func NewConfInstance(etcd *clientv3.Client) *config.Conf {
	k := koanf.New(".")
	conf := &config.Conf{Koanf: k}

	var source = "local"
	defer func() {
		logger.Printf(conf.Sprint())
		logger.Printf("Load %s config!", source)
	}()

	// Defaults that do not affect correctness live in config/default.yaml.
	if _, err := os.Stat("config/default.yaml"); err != nil {
		logger.Printf("Error read default config: %v", err)
	} else if err := conf.Load(file.Provider("config/default.yaml"), kYaml.Parser()); err != nil {
		logger.Printf("Error loading defautl config: %v", err)
	}

	if _, err := os.Stat("config/local.yaml"); err != nil {
		logger.Printf("Error read local config: %v", err)
	} else if err := conf.Load(file.Provider("config/local.yaml"), kYaml.Parser()); err != nil {
		logger.Printf("Error load local config: %v", err)
	}

	// Environment variables override the files.
	if err := conf.Load(env.ProviderWithValue("BINCOMPRESS_", ".", func(s string, v string) (string, interface{}) {
		// Strip the prefix, lowercase, and turn _ into the koanf delimiter.
		key := strings.Replace(strings.ToLower(strings.TrimPrefix(s, "BINCOMPRESS_")), "_", ".", -1)

		// A space-separated value becomes a slice.
		if strings.Contains(v, " ") {
			return key, strings.Split(v, " ")
		}

		return key, v
	}), nil); err != nil {
		logger.Printf("Error load env: %v", err)
	}

	if etcd == nil {
		return conf
	}

	// Central startup config.
	if conf.Exists(KoanfEtcdStaticConfigToken) {
		if resp, err := etcd.Get(context.Background(), conf.String(KoanfEtcdStaticConfigToken)); err != nil {
			logger.Printf("Error read etcd config %v", err)
		} else if len(resp.Kvs) < 1 {
			logger.Printf("ETCD got empty value!")
		} else if err := conf.Load(rawbytes.Provider(resp.Kvs[0].Value), kYaml.Parser()); err != nil {
			logger.Printf("Error load etcd config: %v", err)
		} else {
			source = "etcd"
		}
	}

	// Codec tuning (limits, cache rules) kept as its own document so it can
	// be watched and hot-reloaded.
	if conf.Exists(KoanfEtcdCodecConfigToken) {
		if resp, err := etcd.Get(context.Background(), conf.String(KoanfEtcdCodecConfigToken)); err != nil {
			logger.Printf("Error read etcd codec config %v", err)
		} else if len(resp.Kvs) < 1 {
			logger.Printf("ETCD got empty value!")
		} else {
			var (
				val = map[string]any{}
				err = yaml.Unmarshal(resp.Kvs[0].Value, &val)
			)
			if err != nil {
				logger.Printf("Error load etcd codec config: %v", err)
			} else {
				conf.Set(KoanfCodecToken, val)
			}
		}
	}

	if conf.Bool("api.enable_validation", false) && conf.Exists(KoanfEtcdAPISchemaToken) {
		resp, err := etcd.Get(context.Background(), conf.String(KoanfEtcdAPISchemaToken))
		if err != nil {
			logger.Printf("Error read etcd api schema %v", err)
		} else if len(resp.Kvs) > 0 && len(resp.Kvs[0].Value) > 0 {
			conf.Set("api.schema", resp.Kvs[0].Value)
		}
	} else if conf.Bool("api.enable_validation", false) {
		b, err := os.ReadFile("config/api-schema.json")
		if err != nil {
			log.Printf("Error read local api schema: %v", err)
		} else {
			conf.Set("api.schema", b)
		}
	}

	return conf
}
