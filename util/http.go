package util

import (
	"net/http"
	"net/url"
)

var redactedParams = []string{"access_token", "token", "X-Amz-Signature", "X-Amz-Credential"}

func GetLogSafeQueryString(r *http.Request) string {
	qs := r.URL.Query()

	for _, p := range redactedParams {
		if qs.Get(p) != "" {
			qs.Set(p, "redacted")
		}
	}

	return qs.Encode()
}

func GetLogSafeUrl(r *http.Request) string {
	copyUrl, err := url.ParseRequestURI(r.URL.String())
	if err != nil {
		return r.URL.Path
	}
	copyUrl.RawQuery = GetLogSafeQueryString(r)
	return copyUrl.String()
}
