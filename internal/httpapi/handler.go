package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	contentTypeHeaderConstant        = "Content-Type"
	jsonContentTypeConstant          = "application/json"
	locationHeaderConstant           = "Location"
	logMessageEncodeFailedConstant   = "Failed to encode response"
	logMessageActionFailedConstant   = "Migrate Blocks action failed"
	logMessageActionAcceptedConstant = "Migrate Blocks action submitted"
	logFieldRemoteAddressConstant    = "remote_address"
)

// MigrationAction is the action served by ActionHandler.
type MigrationAction interface {
	FormIdentifier() string
	Label() string
	Describe() string
	Invoke(executionContext context.Context) error
}

// ActionResponse describes the action to HTTP clients.
type ActionResponse struct {
	FormIdentifier string `json:"form_id"`
	Label          string `json:"label"`
	Description    string `json:"description"`
}

// ErrorResponse is returned when the action fails.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionHandler serves the Migrate Blocks action.
type ActionHandler struct {
	action      MigrationAction
	logger      *zap.Logger
	redirectURL string
}

// NewActionHandler constructs a handler redirecting successful submissions to redirectURL.
func NewActionHandler(action MigrationAction, logger *zap.Logger, redirectURL string) *ActionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActionHandler{action: action, logger: logger, redirectURL: redirectURL}
}

// Describe handles GET requests.
func (handler *ActionHandler) Describe(responseWriter http.ResponseWriter, request *http.Request) {
	handler.writeJSON(responseWriter, http.StatusOK, ActionResponse{
		FormIdentifier: handler.action.FormIdentifier(),
		Label:          handler.action.Label(),
		Description:    handler.action.Describe(),
	})
}

// Submit handles POST requests by invoking the action once.
func (handler *ActionHandler) Submit(responseWriter http.ResponseWriter, request *http.Request) {
	remoteAddressField := zap.String(logFieldRemoteAddressConstant, request.RemoteAddr)

	if invokeError := handler.action.Invoke(request.Context()); invokeError != nil {
		handler.logger.Error(logMessageActionFailedConstant, remoteAddressField, zap.Error(invokeError))
		handler.writeJSON(responseWriter, http.StatusInternalServerError, ErrorResponse{Error: invokeError.Error()})
		return
	}

	handler.logger.Info(logMessageActionAcceptedConstant, remoteAddressField)
	responseWriter.Header().Set(locationHeaderConstant, handler.redirectURL)
	responseWriter.WriteHeader(http.StatusSeeOther)
}

// Live reports process liveness.
func (handler *ActionHandler) Live(responseWriter http.ResponseWriter, request *http.Request) {
	responseWriter.WriteHeader(http.StatusNoContent)
}

func (handler *ActionHandler) writeJSON(responseWriter http.ResponseWriter, status int, payload any) {
	responseWriter.Header().Set(contentTypeHeaderConstant, jsonContentTypeConstant)
	responseWriter.WriteHeader(status)
	if encodeError := json.NewEncoder(responseWriter).Encode(payload); encodeError != nil {
		handler.logger.Warn(logMessageEncodeFailedConstant, zap.Error(encodeError))
	}
}
