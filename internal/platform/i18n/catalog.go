// Package i18n loads the localized prompt bundles and negotiates the bundle
// used for a request locale.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
)

//go:embed locales/*.yaml
var embedded embed.FS

// ErrNoBundles is returned when the locale directory holds no bundles.
var ErrNoBundles = errors.New("no message bundles found")

var validate = validator.New(validator.WithRequiredStructEnabled())

// bundle is the on-disk shape of a locale file.
type bundle struct {
	Problem           string `koanf:"problem"            validate:"required"`
	LongAttribution   string `koanf:"long_attribution"   validate:"required,contains=%[1]s,contains=%[2]s"`
	ShortAttribution  string `koanf:"short_attribution"  validate:"required,contains=%[1]s,excludes=%[2]s"`
	AccessibilityText string `koanf:"accessibility_text" validate:"required"`
}

// Catalog holds one message bundle per locale. It is immutable once built
// and safe for concurrent use.
type Catalog struct {
	tags       []language.Tag
	messages   []domain.Messages
	matcher    language.Matcher
	defaultIdx int
}

// New loads the bundles compiled into the binary.
func New(defaultLocale string) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, fmt.Errorf("opening embedded locales: %w", err)
	}

	return Load(sub, defaultLocale)
}

// Load reads every <tag>.yaml file at the root of fsys. defaultLocale must
// resolve to one of the loaded bundles.
func Load(fsys fs.FS, defaultLocale string) (*Catalog, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing locales: %w", err)
	}

	if len(names) == 0 {
		return nil, ErrNoBundles
	}

	slices.Sort(names)

	c := &Catalog{
		tags:     make([]language.Tag, 0, len(names)),
		messages: make([]domain.Messages, 0, len(names)),
	}

	for _, name := range names {
		tag, msgs, err := loadBundle(fsys, name)
		if err != nil {
			return nil, err
		}

		c.tags = append(c.tags, tag)
		c.messages = append(c.messages, msgs)
	}

	c.matcher = language.NewMatcher(c.tags)

	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", defaultLocale, err)
	}

	_, idx, conf := c.matcher.Match(def)
	if conf == language.No {
		return nil, fmt.Errorf("no message bundle for default locale %q", defaultLocale)
	}

	c.defaultIdx = idx

	return c, nil
}

func loadBundle(fsys fs.FS, name string) (language.Tag, domain.Messages, error) {
	locale := strings.TrimSuffix(path.Base(name), path.Ext(name))

	tag, err := language.Parse(locale)
	if err != nil {
		return language.Tag{}, domain.Messages{}, fmt.Errorf("locale file %s: %w", name, err)
	}

	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return language.Tag{}, domain.Messages{}, fmt.Errorf("reading %s: %w", name, err)
	}

	parsed, err := yaml.Parser().Unmarshal(raw)
	if err != nil {
		return language.Tag{}, domain.Messages{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(parsed, "."), nil); err != nil {
		return language.Tag{}, domain.Messages{}, fmt.Errorf("loading %s: %w", name, err)
	}

	var b bundle
	if err := k.Unmarshal("", &b); err != nil {
		return language.Tag{}, domain.Messages{}, fmt.Errorf("decoding %s: %w", name, err)
	}

	if err := validate.Struct(&b); err != nil {
		return language.Tag{}, domain.Messages{}, fmt.Errorf("invalid bundle %s: %w", name, err)
	}

	return tag, domain.Messages{
		Problem:           b.Problem,
		LongAttribution:   b.LongAttribution,
		ShortAttribution:  b.ShortAttribution,
		AccessibilityText: b.AccessibilityText,
	}, nil
}

// Lookup returns the bundle closest to locale. Empty, unparsable or
// unsupported locales get the default bundle.
func (c *Catalog) Lookup(locale string) domain.Messages {
	if locale == "" {
		return c.messages[c.defaultIdx]
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return c.messages[c.defaultIdx]
	}

	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.messages[c.defaultIdx]
	}

	return c.messages[idx]
}

// Locales lists the loaded bundle tags in load order.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}

	return out
}
