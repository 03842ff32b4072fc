package logging

import (
	"context"
	"log/slog"
)

// componentLevelHandler enforces a per-component minimum level while
// delegating output to the wrapped handler. The component is learned from the
// FieldComponent attribute attached through WithAttrs.
type componentLevelHandler struct {
	next      slog.Handler
	overrides map[string]slog.Level
	level     slog.Level
	active    bool
}

func (h *componentLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.active && level < h.level {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h *componentLevelHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.active && record.Level < h.level {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *componentLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &componentLevelHandler{
		next:      h.next.WithAttrs(attrs),
		overrides: h.overrides,
		level:     h.level,
		active:    h.active,
	}
	for _, attr := range attrs {
		if attr.Key != FieldComponent {
			continue
		}
		if level, ok := h.overrides[attrString(attr.Value)]; ok {
			clone.level = level
			clone.active = true
		}
	}
	return clone
}

func (h *componentLevelHandler) WithGroup(name string) slog.Handler {
	return &componentLevelHandler{
		next:      h.next.WithGroup(name),
		overrides: h.overrides,
		level:     h.level,
		active:    h.active,
	}
}
