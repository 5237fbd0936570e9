package config

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/istpublications/intake-backend/internal/domain"
)

var idPrefixRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !idPrefixRe.MatchString(c.Submission.IDPrefix) {
		return fmt.Errorf("submission.id_prefix must be 2-10 uppercase letters or digits starting with a letter (got %q)", c.Submission.IDPrefix)
	}

	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}

	if err := c.SMTP.validate(); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}

	if c.Server.PublicRateLimit < 0 {
		return fmt.Errorf("server.public_rate_limit must be >= 0 (got %d)", c.Server.PublicRateLimit)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	return nil
}

func (e *EmailConfig) validate() error {
	if e.MaxRetries < 1 || e.MaxRetries > domain.MaxEmailRetries {
		return fmt.Errorf("max_retries must be in 1..%d (got %d)", domain.MaxEmailRetries, e.MaxRetries)
	}
	if e.RetryInterval < 0 {
		return fmt.Errorf("retry_interval must be >= 0 (got %v)", e.RetryInterval)
	}
	if _, err := mail.ParseAddress(e.SenderAddress); err != nil {
		return fmt.Errorf("sender_address: %w", err)
	}
	if _, err := mail.ParseAddress(e.AdminAddress); err != nil {
		return fmt.Errorf("admin_address: %w", err)
	}
	e.FrontendURL = strings.TrimRight(e.FrontendURL, "/")
	e.BackendURL = strings.TrimRight(e.BackendURL, "/")
	return nil
}

func (s *SMTPConfig) validate() error {
	s.Transport = strings.ToLower(strings.TrimSpace(s.Transport))
	switch s.Transport {
	case TransportSMTP:
		if s.Host == "" {
			return fmt.Errorf("host is required for transport %q", TransportSMTP)
		}
		if s.Port <= 0 || s.Port > 65535 {
			return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
		}
	case TransportLog:
	default:
		return fmt.Errorf("transport must be %q or %q (got %q)", TransportSMTP, TransportLog, s.Transport)
	}
	return nil
}
