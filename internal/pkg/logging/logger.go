// Package logging configures the global logrus logger and provides helpers
// for component- and interface-scoped log entries.
package logging

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, or compact
}

// CompactFormatter renders entries as
// [LEVEL][component][interface] message (k=v, ...).
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry.
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	if entry.Buffer != nil {
		b = entry.Buffer
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))
	if c, ok := entry.Data["component"]; ok {
		fmt.Fprintf(b, "[%s]", c)
	}
	if i, ok := entry.Data["interface"]; ok {
		fmt.Fprintf(b, "[%s]", i)
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" && k != "interface" {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for n, k := range keys {
			if n > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", k, entry.Data[k])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger initializes the global logger with the provided configuration.
func InitLogger(config LogConfig) {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		if config.Level != "" {
			logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
		}
	}
	logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	case "compact":
		logger.SetFormatter(&CompactFormatter{ShowTime: true})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}

// GetLogger returns the global logger, initializing it with defaults when
// needed.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(LogConfig{Level: "info", Format: "text"})
	}
	return logger
}

// WithComponent returns an entry scoped to a component name.
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

// WithInterface returns an entry scoped to an interface name.
func WithInterface(iface string) *logrus.Entry {
	return GetLogger().WithField("interface", iface)
}

// WithComponentAndInterface returns an entry scoped to both.
func WithComponentAndInterface(component, iface string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"interface": iface,
	})
}
