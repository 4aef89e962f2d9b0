package imagesapi

import (
	"context"
	"fmt"

	"portfolio-app/database"
	"portfolio-app/internal/domain/media"
	"portfolio-app/internal/domain/profile"
	"portfolio-app/internal/domain/works"
)

// gormRecordStore reads and writes the single image column of each owning
// table. Only that column is ever touched, so concurrent edits to the rest
// of the record are never clobbered by the image pipeline.
type gormRecordStore struct{}

func (gormRecordStore) ImageRef(ctx context.Context, kind media.OwnerKind, ownerID string) (string, error) {
	db := database.DB.WithContext(ctx)
	switch kind {
	case media.OwnerHero:
		var p profile.Profile
		if err := db.First(&p, "id = ?", ownerID).Error; err != nil {
			return "", err
		}
		return p.HeroImageURL, nil
	case media.OwnerAbout:
		var a profile.AboutMe
		if err := db.First(&a, "id = ?", ownerID).Error; err != nil {
			return "", err
		}
		return a.ImageURL, nil
	case media.OwnerProject:
		var p works.Project
		if err := db.First(&p, "id = ?", ownerID).Error; err != nil {
			return "", err
		}
		if p.Image == nil {
			return "", nil
		}
		return *p.Image, nil
	case media.OwnerCertificate:
		var cert works.Certificate
		if err := db.First(&cert, "id = ?", ownerID).Error; err != nil {
			return "", err
		}
		if cert.Image == nil {
			return "", nil
		}
		return *cert.Image, nil
	}
	return "", fmt.Errorf("unknown owner kind %q", kind)
}

func (gormRecordStore) SetImageRef(ctx context.Context, kind media.OwnerKind, ownerID string, ref *string) error {
	db := database.DB.WithContext(ctx)

	var model interface{}
	var column string
	switch kind {
	case media.OwnerHero:
		model, column = &profile.Profile{}, "hero_image_url"
	case media.OwnerAbout:
		model, column = &profile.AboutMe{}, "image_url"
	case media.OwnerProject:
		model, column = &works.Project{}, "image"
	case media.OwnerCertificate:
		model, column = &works.Certificate{}, "image"
	default:
		return fmt.Errorf("unknown owner kind %q", kind)
	}

	var value interface{}
	if ref != nil {
		value = *ref
	} else if kind == media.OwnerHero || kind == media.OwnerAbout {
		// these columns are non-nullable strings
		value = ""
	}

	res := db.Model(model).Where("id = ?", ownerID).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("record %s/%s not found", kind, ownerID)
	}
	return nil
}
