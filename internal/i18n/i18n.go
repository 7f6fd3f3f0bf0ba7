// Package i18n resolves multilingual content fields. Entities store one
// column per supported language plus a legacy unsuffixed column; resolution
// walks a fixed fallback chain until it finds a non-empty value.
package i18n

import "strings"

// Supported lists the content languages in fallback enumeration order.
// The first entry is the default language.
var Supported = []string{"en", "az", "ru"}

const Default = "en"

// Normalize validates a requested language code. Unknown or empty codes
// collapse to the default language; this never fails.
func Normalize(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	for _, s := range Supported {
		if l == s {
			return l
		}
	}
	return Default
}

// Variants holds every stored value of one localizable field base.
type Variants struct {
	En     *string
	Az     *string
	Ru     *string
	Legacy *string
}

func (v Variants) lang(code string) *string {
	switch code {
	case "en":
		return v.En
	case "az":
		return v.Az
	case "ru":
		return v.Ru
	}
	return nil
}

func nonEmpty(p *string) bool {
	return p != nil && *p != ""
}

// Resolve returns the effective value of a field for the requested language.
// Chain: requested language, default language, remaining supported languages
// in enumeration order, legacy unsuffixed value. Returns nil when every
// variant is empty; missing localized content is a normal state, not an error.
func Resolve(v Variants, lang string) *string {
	lang = Normalize(lang)
	if p := v.lang(lang); nonEmpty(p) {
		return p
	}
	if lang != Default {
		if p := v.lang(Default); nonEmpty(p) {
			return p
		}
	}
	for _, code := range Supported {
		if code == lang || code == Default {
			continue
		}
		if p := v.lang(code); nonEmpty(p) {
			return p
		}
	}
	if nonEmpty(v.Legacy) {
		return v.Legacy
	}
	return nil
}

// Versions collects every language variant of a field for editing views.
// When all suffixed variants are empty but a legacy value exists, the legacy
// value surfaces under the default language.
func Versions(v Variants) map[string]*string {
	out := make(map[string]*string, len(Supported))
	found := false
	for _, code := range Supported {
		p := v.lang(code)
		out[code] = p
		if nonEmpty(p) {
			found = true
		}
	}
	if !found && nonEmpty(v.Legacy) {
		out[Default] = v.Legacy
	}
	return out
}

// Localizable is implemented by entities with multilingual fields. The
// declared base list replaces runtime attribute probing: only bases named
// here take part in resolution.
type Localizable interface {
	LocalizedBases() []string
	LocalizedField(base string) Variants
}

// ResolveAll resolves every declared field base of an entity.
func ResolveAll(obj Localizable, lang string) map[string]any {
	bases := obj.LocalizedBases()
	out := make(map[string]any, len(bases))
	for _, base := range bases {
		out[base] = Resolve(obj.LocalizedField(base), lang)
	}
	return out
}

// AllVersions returns the per-language mapping of every declared field base.
func AllVersions(obj Localizable) map[string]map[string]*string {
	bases := obj.LocalizedBases()
	out := make(map[string]map[string]*string, len(bases))
	for _, base := range bases {
		out[base] = Versions(obj.LocalizedField(base))
	}
	return out
}
