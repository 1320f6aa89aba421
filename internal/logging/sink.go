package logging

import "go.uber.org/zap"

// WarnSink routes detection signals to the process logger. It satisfies
// detect.Sink.
type WarnSink struct {
	Log *zap.Logger
}

// LengthMismatch logs the unequal vertical block lengths once, at warn
// level. Reconciliation has already truncated to the shortest block.
func (s WarnSink) LengthMismatch(contracts, oldZones, newZones int) {
	s.Log.Warn("vertical blocks differ in length, truncating to shortest",
		zap.Int("contracts", contracts),
		zap.Int("old_zones", oldZones),
		zap.Int("new_zones", newZones),
	)
}
