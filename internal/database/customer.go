package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/soundvault/soundvault/internal/usecase"
)

type Customer struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	UID       string    `gorm:"column:uid;type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (s *service) CreateCustomer(ctx context.Context, customer usecase.Customer) (usecase.Customer, error) {
	c := Customer{
		UID:   customer.UID,
		Name:  customer.Name,
		Email: customer.Email,
	}

	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return usecase.Customer{}, fmt.Errorf("%w: %v", usecase.ErrMetadataWrite, err)
	}

	return usecase.Customer{
		ID:        c.ID,
		UID:       c.UID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func (s *service) ListCustomers(ctx context.Context) ([]usecase.Customer, error) {
	var rows []Customer
	if err := s.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrMetadataRead, err)
	}

	customers := make([]usecase.Customer, 0, len(rows))
	for _, c := range rows {
		customers = append(customers, usecase.Customer{
			ID:        c.ID,
			UID:       c.UID,
			Name:      c.Name,
			Email:     c.Email,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return customers, nil
}
