package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/glamour/styles"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Validate checks the merged configuration and reports every problem at once.
func Validate(v *viper.Viper) error {
	var errs []error

	switch lang := strings.ToLower(strings.TrimSpace(v.GetString("language"))); lang {
	case "en", "pt-br":
	default:
		errs = append(errs, fmt.Errorf("language must be en or pt-br, got %q", lang))
	}

	if style := v.GetString("preview.style"); style != "auto" {
		if _, ok := styles.DefaultStyles[style]; !ok {
			errs = append(errs, fmt.Errorf("preview.style %q is not a glamour style", style))
		}
	}
	if v.GetInt("preview.word_wrap") <= 0 {
		errs = append(errs, errors.New("preview.word_wrap must be greater than 0"))
	}

	switch f := v.GetString("output.format"); f {
	case "markdown", "pretty", "json":
	default:
		errs = append(errs, fmt.Errorf("output.format must be markdown, pretty or json, got %q", f))
	}

	if _, _, err := net.SplitHostPort(v.GetString("server.addr")); err != nil {
		errs = append(errs, fmt.Errorf("server.addr is invalid: %w", err))
	}

	if _, err := zapcore.ParseLevel(v.GetString("log.level")); err != nil {
		errs = append(errs, fmt.Errorf("log.level is invalid: %w", err))
	}

	return errors.Join(errs...)
}
