package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"time"
)

type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt int64          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *BaseModel) GetID() uuid.UUID { return b.ID }

// PrepareCreate assigns the id and both timestamps. Stores that bypass gorm
// call it directly.
func (b *BaseModel) PrepareCreate() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *BaseModel) PrepareUpdate() {
	b.UpdatedAt = time.Now().Unix()
}

func (b *BaseModel) Identity() BaseModel { return *b }

// RestoreIdentity puts back the id and creation time after a client payload
// was decoded over the record.
func (b *BaseModel) RestoreIdentity(from BaseModel) {
	b.ID = from.ID
	b.CreatedAt = from.CreatedAt
	b.DeletedAt = from.DeletedAt
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	b.PrepareCreate()
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.PrepareUpdate()
	return nil
}
