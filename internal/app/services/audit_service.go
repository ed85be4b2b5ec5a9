package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stasiunku/loyalty-core/internal/app/models"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{
		db: db,
	}
}

// LogAudit records a change to a point-affecting entity. Auditing is best
// effort: a failed write is logged and never fails the operation it
// describes.
func (s *AuditService) LogAudit(tableName string, recordID uuid.UUID, action models.AuditAction, oldData, newData interface{}, changedBy *uuid.UUID) {
	var oldDataJSON, newDataJSON *string

	if oldData != nil {
		if jsonBytes, err := json.Marshal(oldData); err == nil {
			strJSON := string(jsonBytes)
			oldDataJSON = &strJSON
		}
	}

	if newData != nil {
		if jsonBytes, err := json.Marshal(newData); err == nil {
			strJSON := string(jsonBytes)
			newDataJSON = &strJSON
		}
	}

	auditLog := &models.AuditLog{
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		OldData:   oldDataJSON,
		NewData:   newDataJSON,
		ChangedBy: changedBy,
		ChangedAt: time.Now(),
	}

	if err := s.db.Create(auditLog).Error; err != nil {
		logrus.Errorf("failed to write audit log for %s/%s: %v", tableName, recordID, err)
	}
}

// GetAuditLogs returns the audit trail for a record, newest first.
func (s *AuditService) GetAuditLogs(tableName string, recordID uuid.UUID, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}

	var logs []models.AuditLog
	err := s.db.Where("table_name = ? AND record_id = ?", tableName, recordID).
		Order("changed_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return logs, nil
}
