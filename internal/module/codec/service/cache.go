package service

import (
	"encoding/json"
	"strings"

	"github.com/sbilalh/Binary-Compression/utils/helpers"
	"github.com/allegro/bigcache"
)

func _TenantKey(args ...string) string {
	return helpers.Concat("tenant#", strings.Join(args, ":"))
}

func _ArtifactKey(uid string) string {
	return helpers.Concat("artifact#", uid)
}

// _Digest is the cache identity of an input: same bytes, same key.
func _Digest(data []byte) string {
	return helpers.Short(string(data))
}

func _SetCache(cache *bigcache.BigCache, k string, v any) error {
	if data, err := json.Marshal(v); err == nil {
		err = cache.Set(k, data)
		if err != nil {
			return err
		}
	}
	return nil
}

func _GetCache[T any](cache *bigcache.BigCache, k string, i T) error {
	data, err := cache.Get(k)
	if err == nil {
		err = json.Unmarshal(data, i)
	}
	return err
}
