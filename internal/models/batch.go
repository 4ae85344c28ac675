package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationType: режим, в котором создан пакет.
type GenerationType string

const (
	GenerationScheduled GenerationType = "scheduled"
	GenerationManual    GenerationType = "manual"
)

// BatchStatus: состояние пакета генерации.
//
// Допустимые переходы:
//
//	pending -> processing -> completed | failed
//
// Из терминальных состояний выхода нет.
type BatchStatus string

const (
	BatchPending    BatchStatus = "pending"
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
)

// Terminal сообщает, является ли статус конечным.
func (s BatchStatus) Terminal() bool {
	return s == BatchCompleted || s == BatchFailed
}

// Valid сообщает, является ли строка известным статусом.
func (s BatchStatus) Valid() bool {
	switch s {
	case BatchPending, BatchProcessing, BatchCompleted, BatchFailed:
		return true
	}
	return false
}

// Batch: запись об одной попытке генерации (ручной или плановой).
//
// Особенности:
//   - UserID == nil для пакетов, запущенных системой (cron/планировщик);
//   - CompletedAt выставляется один раз, при переходе в терминальный статус;
//   - Topic/Provider заполняются только при чтении истории.
type Batch struct {
	ID                uuid.UUID
	BatchDate         time.Time
	GenerationType    GenerationType
	Status            BatchStatus
	ArticlesGenerated int
	ErrorMessage      *string
	CreatedAt         time.Time
	CompletedAt       *time.Time
	UserID            *uuid.UUID
	TopicID           *uuid.UUID
	ProviderID        *uuid.UUID

	Topic    *TopicRef
	Provider *ProviderRef
}

// BatchResult: итог пакета для терминального перехода.
type BatchResult struct {
	Status            BatchStatus
	ArticlesGenerated int
	ErrorMessage      *string
	CompletedAt       time.Time
}

// BatchFilter: параметры выборки истории пакетов.
type BatchFilter struct {
	Limit  int
	Status *BatchStatus
}
