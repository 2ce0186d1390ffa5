package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		// Core paths and conventions
		{Key: "data_dir", Default: defaultDataDir(), Comment: "Directory for local state; history DB is data_dir/history.db"},

		{Key: "fetcher.command", Default: "curl", Comment: "HTTP fetch executable, resolved from PATH"},
		{Key: "fetcher.quiet_flags", Default: "-sL", Comment: "Flags passed to the fetcher before the URL (whitespace-separated)"},
		{Key: "converter.command", Default: "html2markdown", Comment: "HTML-to-markdown executable, resolved from PATH"},
		{Key: "converter.domain_flag", Default: "--domain", Comment: "Converter option carrying the scheme://host of the page, for relative links"},

		{Key: "render.style", Default: "dracula", Comment: "Glamour style for pretty output"},
		{Key: "render.wrap", Default: 80, Comment: "Word-wrap width for pretty output"},

		{Key: "history.enabled", Default: true, Comment: "Record visited pages in the history DB"},
		{Key: "history.limit", Default: 500, Comment: "Maximum visits shown by history list and the picker"},
	}
}

// CheckConfigValidity validates the merged configuration and reports every
// problem found at once.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string
	if strings.TrimSpace(v.GetString("data_dir")) == "" {
		problems = append(problems, "data_dir is required")
	}
	if strings.TrimSpace(v.GetString("fetcher.command")) == "" {
		problems = append(problems, "fetcher.command is required")
	}
	if strings.TrimSpace(v.GetString("converter.command")) == "" {
		problems = append(problems, "converter.command is required")
	}
	if strings.TrimSpace(v.GetString("converter.domain_flag")) == "" {
		problems = append(problems, "converter.domain_flag is required")
	}
	if v.GetInt("render.wrap") <= 0 {
		problems = append(problems, "render.wrap must be greater than 0")
	}
	if v.GetBool("history.enabled") && v.GetInt("history.limit") <= 0 {
		problems = append(problems, "history.limit must be greater than 0")
	}
	if len(problems) > 0 {
		return errors.New("invalid configuration:\n  " + strings.Join(problems, "\n  "))
	}
	return nil
}

// Describe renders "key = value" lines of the effective config for `config show`.
func Describe(v *viper.Viper) string {
	var b strings.Builder
	for _, o := range GetConfigOptions() {
		fmt.Fprintf(&b, "%s = %v\n", o.Key, v.Get(o.Key))
	}
	return b.String()
}
