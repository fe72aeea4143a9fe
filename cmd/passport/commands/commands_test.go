package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func countriesServer(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"countries":[
			{"code":"SE","name":"Sweden","currency":"SEK","languages":[{"code":"sv","name":"Swedish"}]},
			{"code":"ES","name":"Spain","currency":"EUR","languages":[{"code":"es","name":"Spanish"}]},
			{"code":"CH","name":"Switzerland","currency":"CHE,CHF,CHW","languages":[{"code":"de","name":"German"}]}
		]}}`))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	base := []string{
		"--config", filepath.Join(t.TempDir(), "missing.toml"),
		"--log-file", "-",
	}
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(base, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "--endpoint", countriesServer(t), "list", "sw")
	require.NoError(t, err)
	require.Contains(t, out, "Sweden")
	require.Contains(t, out, "Switzerland")
	require.Contains(t, out, "CHE, CHF, CHW")
	require.NotContains(t, out, "Spain")
}

func TestListCommandJoinsArgs(t *testing.T) {
	out, err := execute(t, "--endpoint", countriesServer(t), "list", "swi", "tz")
	require.NoError(t, err)
	require.Empty(t, strings.TrimSpace(out), `"swi tz" matches nothing`)
}

func TestListCommandRequiresFilter(t *testing.T) {
	_, err := execute(t, "list")
	require.Error(t, err)
}

func TestGroupsCommand(t *testing.T) {
	out, err := execute(t, "--endpoint", countriesServer(t), "groups", "--size", "2", "ch", "SE", "ES")
	require.NoError(t, err)
	require.Equal(t, "Group 1\n  CH  Switzerland\n  SE  Sweden\n\nGroup 2\n  ES  Spain\n", out)
}

func TestGroupsCommandNegativeSizeIsSingleGroup(t *testing.T) {
	out, err := execute(t, "--endpoint", countriesServer(t), "groups", "--size", "-1", "SE", "ES", "CH")
	require.NoError(t, err)
	require.Equal(t, "Group 1\n  SE  Sweden\n  ES  Spain\n  CH  Switzerland\n", out)
}

func TestGroupsCommandErrors(t *testing.T) {
	endpoint := countriesServer(t)

	_, err := execute(t, "--endpoint", endpoint, "groups", "SE", "XX")
	require.EqualError(t, err, "unknown country code(s): XX")

	_, err = execute(t, "groups")
	require.Error(t, err)
}

func TestLogCommandDisabled(t *testing.T) {
	_, err := execute(t, "log")
	require.ErrorContains(t, err, "disabled")
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "unexpected")
	require.Error(t, err)
}
