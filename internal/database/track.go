package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundvault/soundvault/internal/usecase"
)

type Track struct {
	ID         uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	Title      string    `gorm:"column:title;type:varchar(255);not null"`
	Artist     string    `gorm:"column:artist;type:varchar(255);not null"`
	Genre      string    `gorm:"column:genre;type:varchar(255);not null"`
	Date       string    `gorm:"column:date;type:varchar(255);not null"`
	StorageKey string    `gorm:"column:storage_key;type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Track) TableName() string {
	return "tracks"
}

func (t *Track) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t Track) ConvertToUsecase() usecase.Track {
	return usecase.Track{
		ID:         t.ID,
		Title:      t.Title,
		Artist:     t.Artist,
		Genre:      t.Genre,
		Date:       t.Date,
		StorageKey: t.StorageKey,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (s *service) CreateTrack(ctx context.Context, track usecase.Track) (usecase.Track, error) {
	t := Track{
		Title:      track.Title,
		Artist:     track.Artist,
		Genre:      track.Genre,
		Date:       track.Date,
		StorageKey: track.StorageKey,
	}

	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return usecase.Track{}, fmt.Errorf("%w: %v", usecase.ErrMetadataWrite, err)
	}
	return t.ConvertToUsecase(), nil
}

func (s *service) ListTracks(ctx context.Context) ([]usecase.Track, error) {
	var tracks []Track

	err := s.db.WithContext(ctx).
		Order("created_at").
		Find(&tracks).
		Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrMetadataRead, err)
	}

	list := make([]usecase.Track, 0, len(tracks))
	for _, t := range tracks {
		list = append(list, t.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) GetTrackByID(ctx context.Context, id uuid.UUID) (usecase.Track, bool, error) {
	var t Track

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.Track{}, false, nil
	}
	if err != nil {
		return usecase.Track{}, false, fmt.Errorf("%w: %v", usecase.ErrMetadataRead, err)
	}
	return t.ConvertToUsecase(), true, nil
}

// SaveTrack upserts by id.
func (s *service) SaveTrack(ctx context.Context, track usecase.Track) (usecase.Track, error) {
	t := Track{
		ID:         track.ID,
		Title:      track.Title,
		Artist:     track.Artist,
		Genre:      track.Genre,
		Date:       track.Date,
		StorageKey: track.StorageKey,
		CreatedAt:  track.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Save(&t).Error; err != nil {
		return usecase.Track{}, fmt.Errorf("%w: %v", usecase.ErrMetadataWrite, err)
	}
	return t.ConvertToUsecase(), nil
}

func (s *service) DeleteTrackByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&Track{})
	if res.Error != nil {
		return false, fmt.Errorf("%w: %v", usecase.ErrMetadataWrite, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListStorageKeys returns every referenced storage key, for the
// reconciliation sweep.
func (s *service) ListStorageKeys(ctx context.Context) ([]string, error) {
	var keys []string

	err := s.db.WithContext(ctx).
		Model(&Track{}).
		Pluck("storage_key", &keys).
		Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrMetadataRead, err)
	}
	return keys, nil
}
