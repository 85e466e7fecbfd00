// Package languages describes the languages the site is translated into
// and the per-request language state used to pick translations.
//
// The current language travels in a context.Context rather than in
// package state; see WithLanguage and FromContext.
package languages

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Base is the authoritative language whose locale file defines the
// structure of all others.
const Base = "zh-CN"

// UnknownFlag is shown for codes outside the supported list.
const UnknownFlag = "🌐"

// Language is one supported UI language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Tag returns the BCP 47 tag for l.
func (l Language) Tag() language.Tag {
	return language.Make(l.Code)
}

var supported = []Language{
	{Code: "zh-CN", Name: "中文", Flag: "🇨🇳"},
	{Code: "en-US", Name: "English", Flag: "🇺🇸"},
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	out := make([]language.Tag, len(supported))
	for i, l := range supported {
		out[i] = l.Tag()
	}
	return out
}

// Supported returns the supported languages in display order. The returned
// slice is a copy.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Codes returns the supported language codes in display order.
func Codes() []string {
	out := make([]string, len(supported))
	for i, l := range supported {
		out[i] = l.Code
	}
	return out
}

func index(code string) int {
	for i, l := range supported {
		if l.Code == code {
			return i
		}
	}
	return -1
}

// Lookup returns the supported language with the given code.
func Lookup(code string) (Language, bool) {
	if i := index(code); i >= 0 {
		return supported[i], true
	}
	return Language{}, false
}

// IsSupported reports whether code is in the supported list.
func IsSupported(code string) bool {
	return index(code) >= 0
}

// Name returns the display name of code, or code itself if unsupported.
func Name(code string) string {
	if l, ok := Lookup(code); ok {
		return l.Name
	}
	return code
}

// Flag returns the flag emoji of code, or UnknownFlag.
func Flag(code string) string {
	if l, ok := Lookup(code); ok {
		return l.Flag
	}
	return UnknownFlag
}

// Next returns the language that follows current in the supported list,
// wrapping around. An unsupported code yields the first language.
func Next(current string) string {
	i := (index(current) + 1) % len(supported)
	return supported[i].Code
}

// IsChinese reports whether code is a Chinese variant.
func IsChinese(code string) bool { return strings.HasPrefix(code, "zh") }

// IsEnglish reports whether code is an English variant.
func IsEnglish(code string) bool { return strings.HasPrefix(code, "en") }

// Match picks the supported language that best fits the preferences,
// given as BCP 47 tags or Accept-Language values, most preferred first.
// With no usable preference the first supported language is returned.
func Match(preferred ...string) string {
	_, i := language.MatchStrings(matcher, preferred...)
	return supported[i].Code
}

type contextKey struct{}

// WithLanguage returns a context carrying code as the current language.
func WithLanguage(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, contextKey{}, code)
}

// FromContext returns the current language stored in ctx, or Base.
func FromContext(ctx context.Context) string {
	if ctx != nil {
		if code, _ := ctx.Value(contextKey{}).(string); code != "" {
			return code
		}
	}
	return Base
}

// Switch returns a context whose current language is the one following
// the language in ctx.
func Switch(ctx context.Context) context.Context {
	return WithLanguage(ctx, Next(FromContext(ctx)))
}
