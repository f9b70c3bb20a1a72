package audit

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Logger writes events to the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	log := models.AuditLog{
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: encodeMetadata(ev.Metadata),
	}

	return l.db.WithContext(ctx).Create(&log).Error
}

// ZapLogger writes events as structured log lines, for backends without a
// database.
type ZapLogger struct {
	log *zap.Logger
}

func NewZap(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log.Named("audit")}
}

func (z *ZapLogger) Log(_ context.Context, ev Event) error {
	z.log.Info(ev.Action,
		zap.String("entity", ev.Entity),
		zap.String("entity_id", ev.EntityID),
		zap.String("metadata", encodeMetadata(ev.Metadata)),
	)
	return nil
}

func encodeMetadata(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
