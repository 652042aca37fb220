package seeds

import (
	"encoding/json"
	"os"

	"github.com/sbilalh/Binary-Compression/internal/database/schema"
	"github.com/jackc/pgx/pgtype"
	"gorm.io/gorm"
	"gopkg.in/yaml.v3"
)

type TenantSeeder struct{}

type tenantSeed struct {
	Name        string         `yaml:"name"`
	Token       string         `yaml:"token"`
	Rate        float64        `yaml:"rate"`
	Capacity    float64        `yaml:"capacity"`
	Preferences map[string]any `yaml:"preferences"`
}

var tenantValues = []schema.Tenant{
	{
		Name:        "demo tenant 1",
		Token:       "token1",
		Rate:        500.00,
		Capacity:    1000.00,
		Preferences: nil,
	},
	{
		Name:     "demo tenant 2",
		Token:    "token2",
		Rate:     500.00,
		Capacity: 1000.00,
		Preferences: &pgtype.JSONB{
			Bytes:  []byte(`{"codec.render-tree": true, "codec.persist": true}`),
			Status: pgtype.Present,
		},
	},
}

// loadSeedFile overrides the built-in seed rows with config/tenants.yaml,
// when the file exists.
func loadSeedFile() []schema.Tenant {
	b, err := os.ReadFile("config/tenants.yaml")
	if err != nil {
		return tenantValues
	}

	var rows []tenantSeed
	if err := yaml.Unmarshal(b, &rows); err != nil || len(rows) == 0 {
		return tenantValues
	}

	values := make([]schema.Tenant, 0, len(rows))
	for _, row := range rows {
		tenant := schema.Tenant{
			Name:     row.Name,
			Token:    row.Token,
			Rate:     row.Rate,
			Capacity: row.Capacity,
		}
		if len(row.Preferences) > 0 {
			if b, err := json.Marshal(row.Preferences); err == nil {
				jsonb := &pgtype.JSONB{}
				if jsonb.Set(b) == nil {
					tenant.Preferences = jsonb
				}
			}
		}
		values = append(values, tenant)
	}
	return values
}

func (TenantSeeder) Seed(conn *gorm.DB) error {
	for _, value := range loadSeedFile() {
		if err := conn.Create(&value).Error; err != nil {
			return err
		}
	}

	return nil
}

func (TenantSeeder) Count(conn *gorm.DB) (int, error) {
	var count int64
	if err := conn.Model(&schema.Tenant{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return int(count), nil
}
