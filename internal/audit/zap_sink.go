package audit

import (
	"go.uber.org/zap"

	"github.com/fsanztor01/TrimTime/internal/logger"
)

// ZapSink logs audit events instead of persisting them; used when the
// process runs without a database.
type ZapSink struct{}

func (ZapSink) Log(
	userID *string,
	action string,
	entity string,
	entityID *string,
	metadata any,
) error {

	fields := []zap.Field{
		zap.String("action", action),
		zap.String("entity", entity),
	}
	if userID != nil {
		fields = append(fields, zap.String("user_id", *userID))
	}
	if entityID != nil {
		fields = append(fields, zap.String("entity_id", *entityID))
	}
	if metadata != nil {
		fields = append(fields, zap.Any("metadata", metadata))
	}

	logger.Log.Info("audit", fields...)
	return nil
}
