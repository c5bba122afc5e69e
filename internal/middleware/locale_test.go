package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocaleDetection(t *testing.T) {
	tests := []struct {
		name           string
		xLocale        string
		acceptLanguage string
		fallback       string
		want           string
	}{
		{name: "x-locale wins", xLocale: "ja-JP", acceptLanguage: "en-US", fallback: "en", want: "ja"},
		{name: "accept-language japanese", acceptLanguage: "ja,en;q=0.8", fallback: "en", want: "ja"},
		{name: "accept-language english", acceptLanguage: "en-GB;q=0.9", fallback: "ja", want: "en"},
		{name: "unknown language maps to en", acceptLanguage: "fr-FR", fallback: "ja", want: "en"},
		{name: "no headers use fallback", fallback: "ja", want: "ja"},
		{name: "empty fallback defaults to ja", fallback: "", want: "ja"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			handler := Locale(tc.fallback)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LocaleFromContext(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.xLocale != "" {
				req.Header.Set("X-Locale", tc.xLocale)
			}
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)
			if got != tc.want {
				t.Fatalf("locale = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocaleFromContextDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := LocaleFromContext(req.Context()); got != "ja" {
		t.Fatalf("LocaleFromContext = %q, want ja", got)
	}
}
