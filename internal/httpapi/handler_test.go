package httpapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/soloblocks/internal/blocks"
	"github.com/temirov/soloblocks/internal/httpapi"
	"github.com/temirov/soloblocks/internal/themes"
)

type staticThemeRegistry struct {
	activeTheme themes.ThemeName
}

func (registry staticThemeRegistry) ActiveTheme(context.Context) (themes.ThemeName, error) {
	return registry.activeTheme, nil
}

type recordingMigrationExecutor struct {
	migrationError   error
	recordedRequests []blocks.MigrationRequest
}

func (executor *recordingMigrationExecutor) MigrateBlocks(_ context.Context, request blocks.MigrationRequest) error {
	executor.recordedRequests = append(executor.recordedRequests, request)
	return executor.migrationError
}

func newTestRouter(executor *recordingMigrationExecutor, logger *zap.Logger) http.Handler {
	trigger := blocks.NewTrigger(staticThemeRegistry{activeTheme: "bartik"}, executor)
	return httpapi.NewRouter(httpapi.NewActionHandler(trigger, logger, httpapi.ActionPath))
}

func TestActionHandlerDescribe(testInstance *testing.T) {
	executor := &recordingMigrationExecutor{}
	router := newTestRouter(executor, nil)

	responseRecorder := httptest.NewRecorder()
	router.ServeHTTP(responseRecorder, httptest.NewRequest(http.MethodGet, httpapi.ActionPath, nil))

	require.Equal(testInstance, http.StatusOK, responseRecorder.Code)
	require.Equal(testInstance, "application/json", responseRecorder.Header().Get("Content-Type"))

	var response httpapi.ActionResponse
	require.NoError(testInstance, json.Unmarshal(responseRecorder.Body.Bytes(), &response))
	require.Equal(testInstance, httpapi.ActionResponse{
		FormIdentifier: "solo_move_blocks_form",
		Label:          "Migrate Blocks",
		Description:    "Use this form to migrate blocks from the default theme to the solo theme.",
	}, response)
	require.Empty(testInstance, executor.recordedRequests)
}

func TestActionHandlerSubmit(testInstance *testing.T) {
	observerCore, observedLogs := observer.New(zap.InfoLevel)
	executor := &recordingMigrationExecutor{}
	router := newTestRouter(executor, zap.New(observerCore))

	responseRecorder := httptest.NewRecorder()
	router.ServeHTTP(responseRecorder, httptest.NewRequest(http.MethodPost, httpapi.ActionPath, nil))

	require.Equal(testInstance, http.StatusSeeOther, responseRecorder.Code)
	require.Equal(testInstance, httpapi.ActionPath, responseRecorder.Header().Get("Location"))
	require.Equal(testInstance, []blocks.MigrationRequest{{SourceTheme: "bartik", TargetTheme: "solo", Region: "footer_menu"}}, executor.recordedRequests)
	require.Equal(testInstance, 1, observedLogs.FilterMessage("Migrate Blocks action submitted").Len())
}

func TestActionHandlerSubmitFailure(testInstance *testing.T) {
	observerCore, observedLogs := observer.New(zap.InfoLevel)
	executor := &recordingMigrationExecutor{migrationError: errors.New("helper failed")}
	router := newTestRouter(executor, zap.New(observerCore))

	responseRecorder := httptest.NewRecorder()
	router.ServeHTTP(responseRecorder, httptest.NewRequest(http.MethodPost, httpapi.ActionPath, nil))

	require.Equal(testInstance, http.StatusInternalServerError, responseRecorder.Code)

	var response httpapi.ErrorResponse
	require.NoError(testInstance, json.Unmarshal(responseRecorder.Body.Bytes(), &response))
	require.Equal(testInstance, "helper failed", response.Error)
	require.Len(testInstance, executor.recordedRequests, 1)
	require.Equal(testInstance, 1, observedLogs.FilterMessage("Migrate Blocks action failed").Len())
}

func TestRouterRejectsOtherMethodsAndServesLiveness(testInstance *testing.T) {
	executor := &recordingMigrationExecutor{}
	router := newTestRouter(executor, nil)

	deleteRecorder := httptest.NewRecorder()
	router.ServeHTTP(deleteRecorder, httptest.NewRequest(http.MethodDelete, httpapi.ActionPath, nil))
	require.Equal(testInstance, http.StatusMethodNotAllowed, deleteRecorder.Code)

	liveRecorder := httptest.NewRecorder()
	router.ServeHTTP(liveRecorder, httptest.NewRequest(http.MethodGet, httpapi.LivenessPath, nil))
	require.Equal(testInstance, http.StatusNoContent, liveRecorder.Code)

	require.Empty(testInstance, executor.recordedRequests)
}
