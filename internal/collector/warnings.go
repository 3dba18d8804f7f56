package collector

import "go.uber.org/zap"

// warningCollector accumulates missing-file diagnostics in arrival order.
type warningCollector struct {
	list []Warning
}

func (c *warningCollector) notFound(log *zap.Logger, ref, file, tag string) {
	w := Warning{
		Message: "'" + ref + "' is not found",
		Ref:     ref,
		File:    file,
		Tag:     tag,
	}
	log.Warn("stylesheet not found", zap.String("ref", ref), zap.String("file", file))
	c.list = append(c.list, w)
}

// result returns the collected warnings, or nil when there were none.
func (c *warningCollector) result() []Warning {
	if len(c.list) == 0 {
		return nil
	}
	return c.list
}
