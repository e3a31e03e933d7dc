package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool

	loginCalls   int
	listCalls    int
	refreshCalls int
	retryCalls   int
	showCalls    int
	showArgs     []string
	whoamiCalls  int
	logoutCalls  int
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Login(ctx context.Context) error {
	s.loginCalls++
	s.loggedIn = true
	return nil
}

func (s *stubExec) List(ctx context.Context) error    { s.listCalls++; return nil }
func (s *stubExec) Refresh(ctx context.Context) error { s.refreshCalls++; return nil }
func (s *stubExec) Retry(ctx context.Context) error   { s.retryCalls++; return nil }

func (s *stubExec) Show(ctx context.Context, args []string) error {
	s.showCalls++
	s.showArgs = args
	return nil
}

func (s *stubExec) WhoAmI(ctx context.Context) error { s.whoamiCalls++; return nil }

func (s *stubExec) Logout(ctx context.Context) error {
	s.logoutCalls++
	s.loggedIn = false
	return nil
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	lines := &[]string{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		*lines = append(*lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func runScript(t *testing.T, a execIface, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), a, func() string { return "" }, scanner)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	s := &stubExec{}

	runScript(t, s, "login\nlist\nl\nrefresh\nretry\nshow 7\nwhoami\nlogout\nexit\n")

	require.Equal(t, 1, s.loginCalls)
	require.Equal(t, 2, s.listCalls)
	require.Equal(t, 1, s.refreshCalls)
	require.Equal(t, 1, s.retryCalls)
	require.Equal(t, 1, s.showCalls)
	require.Equal(t, []string{"7"}, s.showArgs)
	require.Equal(t, 1, s.whoamiCalls)
	require.Equal(t, 1, s.logoutCalls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	lines := captureOutput(t)
	runScript(t, &stubExec{}, "frobnicate\nexit\n")

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Unknown command:")
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)
	runScript(t, &stubExec{}, "help\nlogin\nhelp\nexit\n")

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Available commands: login, exit")
	require.Contains(t, joined, "show <id>")
}

func TestREPL_EmptyLinesIgnored(t *testing.T) {
	captureOutput(t)
	s := &stubExec{}
	runScript(t, s, "\n\n   \nlist\nexit\n")
	require.Equal(t, 1, s.listCalls)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	s := &stubExec{}
	runScript(t, s, "list\n") // no exit; scanner hits EOF
	require.Equal(t, 1, s.listCalls)
}
