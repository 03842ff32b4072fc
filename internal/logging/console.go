package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// shortRequestID is how many characters of a correlation id the console
// header keeps. Full ids stay available through the JSON format.
const shortRequestID = 8

// consoleHandler writes one human-readable line per record:
//
//	<ts> <LEVEL> <component> [<route> #<request>]: <msg> [file:line] key=value ...
//
// The component, route and correlation id are lifted out of the attributes
// into the header so that lines from the same request line up when grepping.
type consoleHandler struct {
	mu        *sync.Mutex
	out       io.Writer
	level     *slog.LevelVar
	preset    []field
	groups    []string
	addSource bool
}

type field struct {
	key   string
	value slog.Value
}

// consoleLine is a record split into its header parts and trailing fields.
type consoleLine struct {
	component string
	route     string
	requestID string
	fields    []field
}

func newConsoleHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &consoleHandler{mu: &sync.Mutex{}, out: w, level: lvl, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	fields := make([]field, 0, len(h.preset)+record.NumAttrs())
	fields = append(fields, h.preset...)
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendField(fields, h.groups, attr)
		return true
	})
	line := splitHeader(fields)

	when := record.Time
	if when.IsZero() {
		when = time.Now()
	}

	var b strings.Builder
	b.Grow(96 + len(line.fields)*24)
	b.WriteString(when.UTC().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(levelLabel(record.Level))
	if line.component != "" {
		b.WriteByte(' ')
		b.WriteString(line.component)
	}
	if tag := line.requestTag(); tag != "" {
		b.WriteString(" [")
		b.WriteString(tag)
		b.WriteByte(']')
	}
	if line.component != "" || line.route != "" || line.requestID != "" {
		b.WriteByte(':')
	}
	b.WriteByte(' ')
	if msg := strings.TrimSpace(record.Message); msg != "" {
		b.WriteString(msg)
	} else {
		b.WriteString("(no message)")
	}
	if h.addSource {
		if src := recordSource(record); src != nil {
			fmt.Fprintf(&b, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	for _, f := range line.fields {
		b.WriteByte(' ')
		b.WriteString(f.key)
		b.WriteByte('=')
		b.WriteString(formatValue(f.value))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.derive()
	for _, attr := range attrs {
		next.preset = appendField(next.preset, h.groups, attr)
	}
	return next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	next := h.derive()
	if name != "" {
		next.groups = append(next.groups, name)
	}
	return next
}

func (h *consoleHandler) derive() *consoleHandler {
	return &consoleHandler{
		mu:        h.mu,
		out:       h.out,
		level:     h.level,
		addSource: h.addSource,
		preset:    append([]field(nil), h.preset...),
		groups:    append([]string(nil), h.groups...),
	}
}

// splitHeader pulls the first component, route and correlation id out of
// fields. Grouped keys never match because they carry a dotted prefix.
func splitHeader(fields []field) consoleLine {
	var line consoleLine
	rest := fields[:0]
	for _, f := range fields {
		var slot *string
		switch f.key {
		case FieldComponent:
			slot = &line.component
		case FieldRoute:
			slot = &line.route
		case FieldCorrelationID:
			slot = &line.requestID
		}
		if slot == nil {
			rest = append(rest, f)
			continue
		}
		if *slot == "" {
			*slot = attrString(f.value)
		}
	}
	line.fields = rest
	return line
}

// requestTag renders "route #request" with the id shortened, or whichever
// half is present.
func (l consoleLine) requestTag() string {
	id := l.requestID
	if len(id) > shortRequestID {
		id = id[:shortRequestID]
	}
	switch {
	case l.route != "" && id != "":
		return l.route + " #" + id
	case id != "":
		return "#" + id
	default:
		return l.route
	}
}

// appendField flattens attr (and any nested groups) into dotted keys.
func appendField(dst []field, prefix []string, attr slog.Attr) []field {
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner = append(append([]string(nil), prefix...), attr.Key)
		}
		for _, member := range value.Group() {
			dst = appendField(dst, inner, member)
		}
		return dst
	}
	key := attr.Key
	if len(prefix) > 0 {
		key = strings.Join(prefix, ".") + "." + key
	}
	if key == "" {
		return dst
	}
	return append(dst, field{key: key, value: value})
}

func attrString(v slog.Value) string {
	v = v.Resolve()
	if v.Kind() == slog.KindString {
		return v.String()
	}
	return formatValue(v)
}

func formatValue(v slog.Value) string {
	v = v.Resolve()
	var s string
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
