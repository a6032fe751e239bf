package httpapi_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/temirov/soloblocks/internal/httpapi"
)

func TestServerServesUntilContextCancelled(testInstance *testing.T) {
	listener, listenError := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(testInstance, listenError)

	executor := &recordingMigrationExecutor{}
	server := httpapi.NewServer(httpapi.ServerConfiguration{ShutdownTimeout: time.Second}, newTestRouter(executor, nil), nil)

	serveContext, cancel := context.WithCancel(context.Background())
	serveResult := make(chan error, 1)
	go func() {
		serveResult <- server.Serve(serveContext, listener)
	}()

	httpClient := &http.Client{
		Timeout: 5 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	response, postError := httpClient.Post("http://"+listener.Addr().String()+httpapi.ActionPath, "application/x-www-form-urlencoded", nil)
	require.NoError(testInstance, postError)
	require.NoError(testInstance, response.Body.Close())
	require.Equal(testInstance, http.StatusSeeOther, response.StatusCode)
	require.Len(testInstance, executor.recordedRequests, 1)

	cancel()
	select {
	case serveError := <-serveResult:
		require.NoError(testInstance, serveError)
	case <-time.After(5 * time.Second):
		testInstance.Fatal("server did not shut down")
	}
}

func TestServerConfigurationSanitize(testInstance *testing.T) {
	sanitized := httpapi.ServerConfiguration{Address: "  ", ReadTimeout: -time.Second}.Sanitize()
	require.Equal(testInstance, httpapi.DefaultServerConfiguration(), sanitized)

	defaultValues := httpapi.DefaultConfigurationValues("tools.server")
	require.Equal(testInstance, "127.0.0.1:8080", defaultValues["tools.server.address"])
	require.Equal(testInstance, "10s", defaultValues["tools.server.read_timeout"])
	require.Equal(testInstance, "5m0s", defaultValues["tools.server.write_timeout"])
}
