package config

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// Values holds scalar configuration values.
// Fields ending in *Set (e.g., HeadlessSet) track whether that field was explicitly
// set in config. This allows distinguishing explicit false/0 from "not set", enabling
// proper merge behavior where local config can override global config with zero values.
type Values struct {
	BaseURL string // deployment under test

	// browser settings
	Headless        bool
	HeadlessSet     bool // tracks if headless was explicitly set
	SlowMoMs        int
	SlowMoMsSet     bool // tracks if slow_mo_ms was explicitly set
	WindowWidth     int
	WindowWidthSet  bool // tracks if window_width was explicitly set
	WindowHeight    int
	WindowHeightSet bool     // tracks if window_height was explicitly set
	BrowserArgs     []string // extra chromium launch flags
	PageLoad        string   // "eager" (DOM content loaded) or "load"

	// wait timeouts
	ShortTimeoutMs       int
	ShortTimeoutMsSet    bool // tracks if short_timeout_ms was explicitly set
	StandardTimeoutMs    int
	StandardTimeoutMsSet bool // tracks if standard_timeout_ms was explicitly set
	LongTimeoutMs        int
	LongTimeoutMsSet     bool // tracks if long_timeout_ms was explicitly set

	// paths
	CasesDir  string // directory holding the xlsx workbooks
	ReportDir string // directory for result workbooks and the run log
	FlowFile  string // optional custom flow plan, empty uses the embedded one

	// notification settings
	NotifyChannels        []string
	NotifyOnError         bool
	NotifyOnErrorSet      bool // tracks if notify_on_error was explicitly set
	NotifyOnComplete      bool
	NotifyOnCompleteSet   bool // tracks if notify_on_complete was explicitly set
	NotifyTimeoutMs       int
	NotifyTimeoutMsSet    bool // tracks if notify_timeout_ms was explicitly set
	NotifyTelegramToken   string
	NotifyTelegramChat    string
	NotifySlackToken      string
	NotifySlackChannel    string
	NotifySMTPHost        string
	NotifySMTPPort        int
	NotifySMTPPortSet     bool // tracks if notify_smtp_port was explicitly set
	NotifySMTPUsername    string
	NotifySMTPPassword    string
	NotifySMTPStartTLS    bool
	NotifySMTPStartTLSSet bool // tracks if notify_smtp_starttls was explicitly set
	NotifyEmailFrom       string
	NotifyEmailTo         []string
	NotifyWebhookURLs     []string
	NotifyCustomScript    string
}

// valuesLoader implements config value loading with embedded filesystem fallback.
type valuesLoader struct {
	embedFS embed.FS
}

// newValuesLoader creates a new valuesLoader with the given embedded filesystem.
func newValuesLoader(embedFS embed.FS) *valuesLoader {
	return &valuesLoader{embedFS: embedFS}
}

// Load loads values from config files with fallback chain: local → global → embedded.
// localConfigPath and globalConfigPath are full paths to config files (not directories).
func (vl *valuesLoader) Load(localConfigPath, globalConfigPath string) (Values, error) {
	// start with embedded defaults
	embedded, err := vl.parseValuesFromEmbedded()
	if err != nil {
		return Values{}, fmt.Errorf("parse embedded defaults: %w", err)
	}

	// parse global config if exists
	global, err := vl.parseValuesFromFile(globalConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse global config: %w", err)
	}

	// parse local config if exists
	local, err := vl.parseValuesFromFile(localConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse local config: %w", err)
	}

	// merge: embedded → global → local (local wins)
	result := embedded
	result.mergeFrom(&global)
	result.mergeFrom(&local)

	return result, nil
}

// parseValuesFromFile reads a config file and parses it into Values.
// returns empty Values (not error) if file doesn't exist or contains only comments/whitespace.
// this enables fallback to embedded defaults for files that are commented templates.
func (vl *valuesLoader) parseValuesFromFile(path string) (Values, error) {
	if path == "" {
		return Values{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is constructed internally
	if err != nil {
		if os.IsNotExist(err) {
			return Values{}, nil
		}
		return Values{}, fmt.Errorf("read config %s: %w", path, err)
	}

	// strip comments and check if anything remains
	// if only comments/whitespace, return empty Values to fall back to embedded defaults
	stripped := stripComments(string(data))
	if strings.TrimSpace(stripped) == "" {
		return Values{}, nil
	}

	return vl.parseValuesFromBytes(data)
}

// parseValuesFromEmbedded parses values from the embedded defaults/config file.
func (vl *valuesLoader) parseValuesFromEmbedded() (Values, error) {
	data, err := vl.embedFS.ReadFile("defaults/config")
	if err != nil {
		return Values{}, fmt.Errorf("read embedded defaults: %w", err)
	}
	return vl.parseValuesFromBytes(data)
}

// parseValuesFromBytes parses configuration from a byte slice into Values.
func (vl *valuesLoader) parseValuesFromBytes(data []byte) (Values, error) {
	// ignoreInlineComment: true prevents # from being treated as inline comment marker
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return Values{}, fmt.Errorf("parse config: %w", err)
	}

	var values Values
	section := cfg.Section("") // default section (no section header)

	if key, err := section.GetKey("base_url"); err == nil {
		values.BaseURL = key.String()
	}

	// browser settings
	if err := boolKey(section, "headless", &values.Headless, &values.HeadlessSet); err != nil {
		return Values{}, err
	}
	if err := intKey(section, "slow_mo_ms", &values.SlowMoMs, &values.SlowMoMsSet); err != nil {
		return Values{}, err
	}
	if err := intKey(section, "window_width", &values.WindowWidth, &values.WindowWidthSet); err != nil {
		return Values{}, err
	}
	if err := intKey(section, "window_height", &values.WindowHeight, &values.WindowHeightSet); err != nil {
		return Values{}, err
	}
	values.BrowserArgs = listKey(section, "browser_args")
	if key, err := section.GetKey("page_load"); err == nil {
		v := strings.ToLower(strings.TrimSpace(key.String()))
		if v != "eager" && v != "load" {
			return Values{}, fmt.Errorf("invalid page_load %q, want eager or load", key.String())
		}
		values.PageLoad = v
	}

	// timeouts
	if err := intKey(section, "short_timeout_ms", &values.ShortTimeoutMs, &values.ShortTimeoutMsSet); err != nil {
		return Values{}, err
	}
	if err := intKey(section, "standard_timeout_ms", &values.StandardTimeoutMs, &values.StandardTimeoutMsSet); err != nil {
		return Values{}, err
	}
	if err := intKey(section, "long_timeout_ms", &values.LongTimeoutMs, &values.LongTimeoutMsSet); err != nil {
		return Values{}, err
	}

	// paths
	if key, err := section.GetKey("cases_dir"); err == nil {
		values.CasesDir = key.String()
	}
	if key, err := section.GetKey("report_dir"); err == nil {
		values.ReportDir = key.String()
	}
	if key, err := section.GetKey("flow_file"); err == nil {
		values.FlowFile = key.String()
	}

	// notification settings
	values.NotifyChannels = listKey(section, "notify_channels")
	if err := boolKey(section, "notify_on_error", &values.NotifyOnError, &values.NotifyOnErrorSet); err != nil {
		return Values{}, err
	}
	if err := boolKey(section, "notify_on_complete", &values.NotifyOnComplete, &values.NotifyOnCompleteSet); err != nil {
		return Values{}, err
	}
	if err := intKey(section, "notify_timeout_ms", &values.NotifyTimeoutMs, &values.NotifyTimeoutMsSet); err != nil {
		return Values{}, err
	}
	if key, err := section.GetKey("notify_telegram_token"); err == nil {
		values.NotifyTelegramToken = key.String()
	}
	if key, err := section.GetKey("notify_telegram_chat"); err == nil {
		values.NotifyTelegramChat = key.String()
	}
	if key, err := section.GetKey("notify_slack_token"); err == nil {
		values.NotifySlackToken = key.String()
	}
	if key, err := section.GetKey("notify_slack_channel"); err == nil {
		values.NotifySlackChannel = key.String()
	}
	if key, err := section.GetKey("notify_smtp_host"); err == nil {
		values.NotifySMTPHost = key.String()
	}
	if err := intKey(section, "notify_smtp_port", &values.NotifySMTPPort, &values.NotifySMTPPortSet); err != nil {
		return Values{}, err
	}
	if key, err := section.GetKey("notify_smtp_username"); err == nil {
		values.NotifySMTPUsername = key.String()
	}
	if key, err := section.GetKey("notify_smtp_password"); err == nil {
		values.NotifySMTPPassword = key.String()
	}
	if err := boolKey(section, "notify_smtp_starttls", &values.NotifySMTPStartTLS, &values.NotifySMTPStartTLSSet); err != nil {
		return Values{}, err
	}
	if key, err := section.GetKey("notify_email_from"); err == nil {
		values.NotifyEmailFrom = key.String()
	}
	values.NotifyEmailTo = listKey(section, "notify_email_to")
	values.NotifyWebhookURLs = listKey(section, "notify_webhook_urls")
	if key, err := section.GetKey("notify_custom_script"); err == nil {
		values.NotifyCustomScript = key.String()
	}

	return values, nil
}

// intKey parses a non-negative integer key into dst, flagging set on presence.
func intKey(section *ini.Section, name string, dst *int, set *bool) error {
	key, err := section.GetKey(name)
	if err != nil {
		return nil //nolint:nilerr // missing key is not an error, field stays unset
	}
	val, err := key.Int()
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if val < 0 {
		return fmt.Errorf("invalid %s: must be non-negative, got %d", name, val)
	}
	*dst = val
	*set = true
	return nil
}

// boolKey parses a boolean key into dst, flagging set on presence.
func boolKey(section *ini.Section, name string, dst, set *bool) error {
	key, err := section.GetKey(name)
	if err != nil {
		return nil //nolint:nilerr // missing key is not an error, field stays unset
	}
	val, err := key.Bool()
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = val
	*set = true
	return nil
}

// listKey parses a comma-separated key into a trimmed string slice.
func listKey(section *ini.Section, name string) []string {
	key, err := section.GetKey(name)
	if err != nil {
		return nil
	}
	val := strings.TrimSpace(key.String())
	if val == "" {
		return nil
	}
	var items []string
	for p := range strings.SplitSeq(val, ",") {
		if t := strings.TrimSpace(p); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// mergeFrom merges non-empty values from src into dst.
//
//nolint:gocyclo // one branch per field, splitting would hurt readability
func (dst *Values) mergeFrom(src *Values) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.HeadlessSet {
		dst.Headless = src.Headless
		dst.HeadlessSet = true
	}
	if src.SlowMoMsSet {
		dst.SlowMoMs = src.SlowMoMs
		dst.SlowMoMsSet = true
	}
	if src.WindowWidthSet {
		dst.WindowWidth = src.WindowWidth
		dst.WindowWidthSet = true
	}
	if src.WindowHeightSet {
		dst.WindowHeight = src.WindowHeight
		dst.WindowHeightSet = true
	}
	if len(src.BrowserArgs) > 0 {
		dst.BrowserArgs = src.BrowserArgs
	}
	if src.PageLoad != "" {
		dst.PageLoad = src.PageLoad
	}
	if src.ShortTimeoutMsSet {
		dst.ShortTimeoutMs = src.ShortTimeoutMs
		dst.ShortTimeoutMsSet = true
	}
	if src.StandardTimeoutMsSet {
		dst.StandardTimeoutMs = src.StandardTimeoutMs
		dst.StandardTimeoutMsSet = true
	}
	if src.LongTimeoutMsSet {
		dst.LongTimeoutMs = src.LongTimeoutMs
		dst.LongTimeoutMsSet = true
	}
	if src.CasesDir != "" {
		dst.CasesDir = src.CasesDir
	}
	if src.ReportDir != "" {
		dst.ReportDir = src.ReportDir
	}
	if src.FlowFile != "" {
		dst.FlowFile = src.FlowFile
	}
	if len(src.NotifyChannels) > 0 {
		dst.NotifyChannels = src.NotifyChannels
	}
	if src.NotifyOnErrorSet {
		dst.NotifyOnError = src.NotifyOnError
		dst.NotifyOnErrorSet = true
	}
	if src.NotifyOnCompleteSet {
		dst.NotifyOnComplete = src.NotifyOnComplete
		dst.NotifyOnCompleteSet = true
	}
	if src.NotifyTimeoutMsSet {
		dst.NotifyTimeoutMs = src.NotifyTimeoutMs
		dst.NotifyTimeoutMsSet = true
	}
	if src.NotifyTelegramToken != "" {
		dst.NotifyTelegramToken = src.NotifyTelegramToken
	}
	if src.NotifyTelegramChat != "" {
		dst.NotifyTelegramChat = src.NotifyTelegramChat
	}
	if src.NotifySlackToken != "" {
		dst.NotifySlackToken = src.NotifySlackToken
	}
	if src.NotifySlackChannel != "" {
		dst.NotifySlackChannel = src.NotifySlackChannel
	}
	if src.NotifySMTPHost != "" {
		dst.NotifySMTPHost = src.NotifySMTPHost
	}
	if src.NotifySMTPPortSet {
		dst.NotifySMTPPort = src.NotifySMTPPort
		dst.NotifySMTPPortSet = true
	}
	if src.NotifySMTPUsername != "" {
		dst.NotifySMTPUsername = src.NotifySMTPUsername
	}
	if src.NotifySMTPPassword != "" {
		dst.NotifySMTPPassword = src.NotifySMTPPassword
	}
	if src.NotifySMTPStartTLSSet {
		dst.NotifySMTPStartTLS = src.NotifySMTPStartTLS
		dst.NotifySMTPStartTLSSet = true
	}
	if src.NotifyEmailFrom != "" {
		dst.NotifyEmailFrom = src.NotifyEmailFrom
	}
	if len(src.NotifyEmailTo) > 0 {
		dst.NotifyEmailTo = src.NotifyEmailTo
	}
	if len(src.NotifyWebhookURLs) > 0 {
		dst.NotifyWebhookURLs = src.NotifyWebhookURLs
	}
	if src.NotifyCustomScript != "" {
		dst.NotifyCustomScript = src.NotifyCustomScript
	}
}
