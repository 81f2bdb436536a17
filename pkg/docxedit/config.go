package docxedit

import (
	"compress/flate"
	"errors"
	"os"
	"strconv"
	"sync"
)

// Config contains the tunables of the document controller
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// CompressionLevel is the flate level used for the rewritten body part.
	// Copied entries keep their original compressed bytes.
	CompressionLevel int
	// MaxBodySize caps the uncompressed size of word/document.xml accepted by
	// Open. 0 disables the limit.
	MaxBodySize int64
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:         "info",
		CompressionLevel: flate.DefaultCompression,
		MaxBodySize:      256 << 20,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCXEDIT_LOG_LEVEL
	if val := os.Getenv("DOCXEDIT_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCXEDIT_COMPRESSION_LEVEL
	if val := os.Getenv("DOCXEDIT_COMPRESSION_LEVEL"); val != "" {
		if level, err := strconv.Atoi(val); err == nil {
			config.CompressionLevel = level
		}
	}

	// DOCXEDIT_MAX_BODY_SIZE
	if val := os.Getenv("DOCXEDIT_MAX_BODY_SIZE"); val != "" {
		if size, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.MaxBodySize = size
		}
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, ok := logLevels[c.LogLevel]; !ok {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.CompressionLevel < flate.HuffmanOnly || c.CompressionLevel > flate.BestCompression {
		return errors.New("compression level must be between -2 and 9")
	}

	if c.MaxBodySize < 0 {
		return errors.New("max body size cannot be negative")
	}

	return nil
}

// GetGlobalConfig returns a copy of the global configuration
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		globalConfigMutex.Lock()
		if globalConfig == nil {
			globalConfig = ConfigFromEnvironment()
		}
		globalConfigMutex.Unlock()
	})

	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration and applies its log level
// to the global logger.
func SetGlobalConfig(config *Config) {
	if config == nil {
		config = DefaultConfig()
	}
	configOnce.Do(func() {})

	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	GetLogger().SetLevel(parseLogLevel(config.LogLevel))
}
