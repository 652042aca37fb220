package repository

import (
	"context"

	"github.com/sbilalh/Binary-Compression/internal/database"
	"github.com/sbilalh/Binary-Compression/internal/database/schema"
)

type IArtifactRepository interface {
	CreateArtifact(ctx context.Context, artifact *schema.Artifact) error
	GetArtifactByUID(ctx context.Context, uid string, artifact *schema.Artifact) error
	GetArtifactByDigest(ctx context.Context, digest string, artifact *schema.Artifact) error
}

type _ArtifactRepository struct {
	db *database.Database
}

func NewArtifactRepository(db *database.Database) IArtifactRepository {
	return &_ArtifactRepository{
		db: db,
	}
}

func (r *_ArtifactRepository) CreateArtifact(ctx context.Context, artifact *schema.Artifact) error {
	return r.db.DB.WithContext(ctx).Create(artifact).Error
}

func (r *_ArtifactRepository) GetArtifactByUID(ctx context.Context, uid string, artifact *schema.Artifact) error {
	return r.db.DB.WithContext(ctx).Take(artifact, "uid = ?", uid).Error
}

func (r *_ArtifactRepository) GetArtifactByDigest(ctx context.Context, digest string, artifact *schema.Artifact) error {
	return r.db.DB.WithContext(ctx).Order("id DESC").Take(artifact, "digest = ?", digest).Error
}
