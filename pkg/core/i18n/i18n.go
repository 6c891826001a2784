// ============================================================================
// trinom - Études de fonctions trinômes du second degré
// ============================================================================
//
// Package:     i18n
// Description: Message catalogs loaded from TOML and YAML files with
//              text/template interpolation and default-locale fallback
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	qerr "github.com/msto63/trinom/pkg/core/error"
)

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // e.g. "fr"
	FS            fs.FS  // file system holding the catalogs
	Dir           string // directory inside FS, "." when empty
}

// Manager resolves message keys for the current locale
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	translations  map[string]map[string]interface{}
	templates     map[string]*template.Template
}

// New loads every <locale>.toml, <locale>.yaml and <locale>.yml file of the
// catalog directory. The default locale must be among them.
func New(options Options) (*Manager, error) {
	if strings.TrimSpace(options.DefaultLocale) == "" {
		return nil, qerr.New("default locale cannot be empty").WithCode(qerr.CodeInvalidConfig).WithOperation("i18n.New")
	}
	if options.FS == nil {
		return nil, qerr.New("no catalog file system").WithCode(qerr.CodeInvalidConfig).WithOperation("i18n.New")
	}
	if options.Dir == "" {
		options.Dir = "."
	}

	m := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		translations:  make(map[string]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}

	entries, err := fs.ReadDir(options.FS, options.Dir)
	if err != nil {
		return nil, qerr.Wrap(err, "failed to read catalogs").WithCode(qerr.CodeNotFound).WithOperation("i18n.New")
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		content, err := fs.ReadFile(options.FS, path.Join(options.Dir, name))
		if err != nil {
			return nil, qerr.Wrap(err, "failed to read catalog").WithCode(qerr.CodeConfigError).WithDetail("file", name)
		}
		data, err := parseCatalog(content, ext)
		if err != nil {
			return nil, qerr.Wrap(err, "failed to parse catalog").WithCode(qerr.CodeConfigError).WithDetail("file", name)
		}
		m.translations[strings.TrimSuffix(name, ext)] = data
	}

	if _, ok := m.translations[options.DefaultLocale]; !ok {
		return nil, qerr.New("no catalog for default locale").
			WithCode(qerr.CodeNotFound).
			WithOperation("i18n.New").
			WithDetail("locale", options.DefaultLocale)
	}
	return m, nil
}

func parseCatalog(content []byte, ext string) (map[string]interface{}, error) {
	var data map[string]interface{}
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// T translates a key. A missing key renders as "[key]" so that gaps in a
// catalog stay visible in the output.
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	s, err := m.TryT(key, data...)
	if err != nil && s == "" {
		return "[" + key + "]"
	}
	return s
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	locale := m.currentLocale
	raw, ok := m.lookup(key, locale)
	if !ok && locale != m.defaultLocale {
		locale = m.defaultLocale
		raw, ok = m.lookup(key, locale)
	}
	if !ok {
		return "", qerr.New("translation not found").WithCode(qerr.CodeNotFound).WithOperation("i18n.TryT").WithDetail("key", key)
	}

	if len(data) == 0 || data[0] == nil {
		return raw, nil
	}

	rendered, err := m.render(locale+":"+key, raw, data[0])
	if err != nil {
		return raw, qerr.Wrap(err, "template rendering failed").WithCode(qerr.CodeInternal).WithDetail("key", key)
	}
	return rendered, nil
}

func (m *Manager) lookup(key, locale string) (string, bool) {
	current, ok := m.translations[locale]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			if s, ok := value.(string); ok {
				return s, true
			}
			return fmt.Sprintf("%v", value), true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

func (m *Manager) render(cacheKey, text string, data map[string]interface{}) (string, error) {
	tmpl, ok := m.templates[cacheKey]
	if !ok {
		var err error
		tmpl, err = template.New(cacheKey).Option("missingkey=error").Parse(text)
		if err != nil {
			return "", err
		}
		m.templates[cacheKey] = tmpl
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// SetLocale switches the current locale
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.translations[locale]; !ok {
		return qerr.New("unsupported locale").WithCode(qerr.CodeNotFound).WithOperation("i18n.SetLocale").WithDetail("locale", locale)
	}
	m.currentLocale = locale
	return nil
}

// Locale returns the current locale
func (m *Manager) Locale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// AvailableLocales returns the loaded locales in sorted order
func (m *Manager) AvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for l := range m.translations {
		locales = append(locales, l)
	}
	sort.Strings(locales)
	return locales
}

// HasTranslation reports whether key exists in the current or default locale
func (m *Manager) HasTranslation(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.lookup(key, m.currentLocale); ok {
		return true
	}
	_, ok := m.lookup(key, m.defaultLocale)
	return ok
}

// Keys returns every dotted key of a locale in sorted order
func (m *Manager) Keys(locale string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	collectKeys(m.translations[locale], "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string, keys *[]string) {
	for k, v := range data {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			collectKeys(nested, full, keys)
			continue
		}
		*keys = append(*keys, full)
	}
}
