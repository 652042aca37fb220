package schema

import "github.com/jackc/pgx/pgtype"

// Artifact is one persisted encode result. The packed bits themselves stay
// out of the row; the frequency table is enough to rebuild the coding tree.
type Artifact struct {
	UID          string        `gorm:"varchar(64); uniqueIndex; notNull;" json:"uid"`
	Digest       string        `gorm:"varchar(64); index; notNull;" json:"digest"`
	FreqTable    string        `gorm:"type:text; notNull;" json:"freq_table"`
	OriginalSize int64         `gorm:"notNull;" json:"original_size"`
	PackedSize   int64         `gorm:"notNull;" json:"packed_size"`
	Ratio        float64       `gorm:"type:real; notNull;" json:"ratio"`
	TenantID     *uint64       `gorm:"index;" json:"tenant_id"`
	Meta         *pgtype.JSONB `gorm:"type:jsonb; notNull; default:'{}'::jsonb;" json:"meta"`

	Base
}
