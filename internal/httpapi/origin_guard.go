package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const (
	originHeaderConstant               = "Origin"
	fetchSiteHeaderConstant            = "Sec-Fetch-Site"
	fetchSiteSameOriginConstant        = "same-origin"
	fetchSiteNoneConstant              = "none"
	crossOriginRejectedMessageConstant = "cross-origin request rejected"
	logMessageCrossOriginConstant      = "Rejected cross-origin request"
	logFieldOriginConstant             = "origin"
	logFieldFetchSiteConstant          = "fetch_site"
	logFieldHostConstant               = "host"
	logFieldMethodConstant             = "method"
)

// SameOriginGuard rejects state-changing requests issued by another site.
// Sec-Fetch-Site is authoritative when present; otherwise Origin must name the
// request host. Requests carrying neither header come from non-browser clients
// and pass through.
func SameOriginGuard(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			if isSafeMethod(request.Method) || isSameOriginRequest(request) {
				next.ServeHTTP(responseWriter, request)
				return
			}

			logger.Warn(
				logMessageCrossOriginConstant,
				zap.String(logFieldMethodConstant, request.Method),
				zap.String(logFieldOriginConstant, request.Header.Get(originHeaderConstant)),
				zap.String(logFieldFetchSiteConstant, request.Header.Get(fetchSiteHeaderConstant)),
				zap.String(logFieldHostConstant, request.Host),
				zap.String(logFieldRemoteAddressConstant, request.RemoteAddr),
			)
			responseWriter.Header().Set(contentTypeHeaderConstant, jsonContentTypeConstant)
			responseWriter.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(responseWriter).Encode(ErrorResponse{Error: crossOriginRejectedMessageConstant})
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func isSameOriginRequest(request *http.Request) bool {
	if fetchSite := strings.ToLower(strings.TrimSpace(request.Header.Get(fetchSiteHeaderConstant))); len(fetchSite) > 0 {
		return fetchSite == fetchSiteSameOriginConstant || fetchSite == fetchSiteNoneConstant
	}

	origin := strings.TrimSpace(request.Header.Get(originHeaderConstant))
	if len(origin) == 0 {
		return true
	}

	parsedOrigin, parseError := url.Parse(origin)
	if parseError != nil || len(parsedOrigin.Host) == 0 {
		return false
	}
	return strings.EqualFold(parsedOrigin.Host, request.Host)
}
