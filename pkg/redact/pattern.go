package redact

import (
	"log/slog"
	"regexp"
)

// Pattern is a named regex with its replacement text.
type Pattern struct {
	Pattern     string
	Replacement string
	Description string
}

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns returns the built-in redaction regexes. Keys are the
// names pattern groups reference.
func builtinPatterns() map[string]Pattern {
	return map[string]Pattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__REDACTED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|passwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__REDACTED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__REDACTED_TOKEN__"`,
			Description: "Access tokens",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__REDACTED_CERTIFICATE__`,
			Description: "PEM blocks",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__REDACTED_EMAIL__`,
			Description: "Email addresses",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `__REDACTED_SSH_KEY__`,
			Description: "SSH public keys",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"secret_key": "__REDACTED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `__REDACTED_AWS_KEY__`,
			Description: "AWS access key IDs",
		},
		"phone": {
			Pattern:     `\+[0-9]{7,15}\b`,
			Replacement: `__REDACTED_PHONE__`,
			Description: "E.164 phone numbers",
		},
	}
}

// patternGroups maps group names to pattern names. "security" is the
// default group applied to tool results and event messages.
func patternGroups() map[string][]string {
	return map[string][]string{
		"basic":    {"api_key", "password"},
		"secrets":  {"api_key", "password", "token", "secret_key"},
		"security": {"api_key", "password", "token", "certificate", "ssh_key", "secret_key", "aws_access_key"},
		"pii":      {"email", "phone"},
		"all":      {"api_key", "password", "token", "certificate", "email", "ssh_key", "secret_key", "aws_access_key", "phone"},
	}
}

// compilePatterns compiles all built-in patterns. Invalid patterns are
// logged and skipped.
func compilePatterns() map[string]*CompiledPattern {
	compiled := make(map[string]*CompiledPattern)
	for name, p := range builtinPatterns() {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile redaction pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled[name] = &CompiledPattern{
			Name:        name,
			Regex:       re,
			Replacement: p.Replacement,
			Description: p.Description,
		}
	}
	return compiled
}
