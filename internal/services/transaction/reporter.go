package transaction

import "settle/internal/models"

// NoopReporter is a no-op implementation of Reporter. It is the
// default when a Processor is built without one.
type NoopReporter struct{}

func (n *NoopReporter) RecordAccepted(models.Kind, uint16, uint32)        {}
func (n *NoopReporter) RecordRejected(models.Kind, uint16, uint32, error) {}
