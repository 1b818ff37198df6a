package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"websearch/internal/bing"
	"websearch/internal/config"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

// isolateEnv keeps the developer's own settings out of the test
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{
		"WEBSEARCH_CONFIG", "WEBSEARCH_ENDPOINT", "BING_SEARCH_ENDPOINT",
		"WEBSEARCH_API_KEY", "BING_SEARCH_API_KEY", "WEBSEARCH_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadConfigPrecedence(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, `
[search]
endpoint = "https://file.example.com/v7.0"
api_key = "file-key"
timeout = "3s"
`)

	v := viper.New()
	cmd := newRootCmd(v)
	require.NoError(t, cmd.PersistentFlags().Set("config", path))

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com/v7.0", cfg.Search.Endpoint)
	assert.Equal(t, "file-key", cfg.Search.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Search.Timeout.Std())

	t.Setenv("BING_SEARCH_API_KEY", "bing-env-key")
	cfg, err = loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "bing-env-key", cfg.Search.APIKey)

	t.Setenv("WEBSEARCH_API_KEY", "env-key")
	cfg, err = loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Search.APIKey)

	require.NoError(t, cmd.PersistentFlags().Set("api-key", "flag-key"))
	require.NoError(t, cmd.PersistentFlags().Set("timeout", "750ms"))
	cfg, err = loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.Search.APIKey)
	assert.Equal(t, 750*time.Millisecond, cfg.Search.Timeout.Std())
}

func TestLoadConfigFailsFast(t *testing.T) {
	isolateEnv(t)

	v := viper.New()
	newRootCmd(v)

	_, err := loadConfig(v)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)

	t.Setenv("WEBSEARCH_API_KEY", "k")
	t.Setenv("WEBSEARCH_ENDPOINT", "not a url")
	_, err = loadConfig(v)
	assert.ErrorIs(t, err, config.ErrInvalidEndpoint)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	isolateEnv(t)

	v := viper.New()
	cmd := newRootCmd(v)
	require.NoError(t, cmd.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "nope.toml")))

	_, err := loadConfig(v)
	assert.Error(t, err)
}

func newBingServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" || r.Header.Get(bing.SubscriptionKeyHeader) == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

const twoResults = `{"webPages":{"totalEstimatedMatches":25,"value":[
{"id":"1","name":"The Go Programming Language","url":"https://go.dev/","displayUrl":"go.dev","snippet":"Build simple, secure, scalable systems."},
{"id":"2","name":"","url":"https://broken.example.com/","snippet":"no name"},
{"id":"3","name":"A Tour of Go","url":"https://go.dev/tour/","snippet":"Learn Go."}]}}`

func TestRunQueryText(t *testing.T) {
	srv := newBingServer(t, http.StatusOK, twoResults)
	client := bing.New(bing.Options{Endpoint: srv.URL, APIKey: "k"})

	var out bytes.Buffer
	require.NoError(t, runQuery(context.Background(), client, "golang", 1, false, true, &out))

	text := out.String()
	assert.Contains(t, text, "Results for: golang")
	assert.Contains(t, text, "The Go Programming Language")
	assert.Contains(t, text, "Build simple, secure, scalable systems.")
	assert.Contains(t, text, "A Tour of Go")
	assert.NotContains(t, text, "no name")
	assert.Contains(t, text, "Page 1 of 3")
}

func TestRunQueryJSON(t *testing.T) {
	srv := newBingServer(t, http.StatusOK, twoResults)
	client := bing.New(bing.Options{Endpoint: srv.URL, APIKey: "k"})

	var out bytes.Buffer
	require.NoError(t, runQuery(context.Background(), client, "golang", 2, true, true, &out))

	var got queryOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "golang", got.Term)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 3, got.LastPage)
	assert.Equal(t, 25, got.TotalEstimated)
	assert.Len(t, got.Items, 3)
}

func TestRunQueryNoResults(t *testing.T) {
	srv := newBingServer(t, http.StatusOK, `{}`)
	client := bing.New(bing.Options{Endpoint: srv.URL, APIKey: "k"})

	var out bytes.Buffer
	require.NoError(t, runQuery(context.Background(), client, "zzzz", 1, false, true, &out))
	assert.Contains(t, out.String(), "No results for: zzzz")
}

func TestRunQueryErrors(t *testing.T) {
	srv := newBingServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	client := bing.New(bing.Options{Endpoint: srv.URL, APIKey: "k"})

	var out bytes.Buffer
	err := runQuery(context.Background(), client, "  ", 1, false, true, &out)
	assert.ErrorIs(t, err, errEmptyTerm)

	err = runQuery(context.Background(), client, "golang", 1, false, true, &out)
	assert.ErrorIs(t, err, bing.ErrAPI)
	assert.Contains(t, err.Error(), "An error happened please try again later.")
	assert.Empty(t, out.String())
}

func TestQueryCommand(t *testing.T) {
	isolateEnv(t)
	srv := newBingServer(t, http.StatusOK, twoResults)

	var out bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"query", "go", "lang", "--json", "--page", "3",
		"--endpoint", srv.URL, "--api-key", "k", "--log-file", "",
	})

	require.NoError(t, cmd.Execute())

	var got queryOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "go lang", got.Term)
	assert.Equal(t, 3, got.Page)
}

func TestConfigInitWritesFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := newRootCmd(viper.New())
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(append(args, "--config", path, "--log-file", ""))
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := run("config", "init", "--api-key", "k", "--timeout", "4s")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.Search.APIKey)
	assert.Equal(t, 4*time.Second, cfg.Search.Timeout.Std())
	assert.Equal(t, config.DefaultConfig().Search.Endpoint, cfg.Search.Endpoint)

	_, err = run("config", "init", "--api-key", "other")
	assert.ErrorIs(t, err, errConfigExists)
	cfg, err = config.NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.Search.APIKey)

	_, err = run("config", "init", "--api-key", "other", "--force")
	require.NoError(t, err)
	cfg, err = config.NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Search.APIKey)
}

func TestConfigPath(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	var out bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "path", "--config", path, "--log-file", ""})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, path+"\n", out.String())
}
