package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"deskcalc/internal/keypad"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DESKCALC_CONFIG", "")
	t.Setenv("DESKCALC_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestEvalPrintsFinalDisplay(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"eval", "1+1="}, want: "2\n"},
		{args: []string{"eval", "12", "×", "3", "="}, want: "36\n"},
		{args: []string{"eval", "25/3="}, want: "8.33333333333333\n"},
		{args: []string{"eval", "--", "5-8="}, want: "-3\n"},
		{args: []string{"eval", "123←"}, want: "12\n"},
		{args: []string{"--precision", "3", "eval", "0.25*0.5="}, want: "0.12\n"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			out, err := runCLI(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestEvalHistory(t *testing.T) {
	out, err := runCLI(t, "eval", "--history", "2÷0=5")
	require.ErrorIs(t, err, errCalculation)

	// the 5 after the error is blocked and prints nothing
	require.Equal(t, "2\t2\n÷\t2\n0\t0\n=\tDivision by 0\n", out)
}

func TestEvalFailures(t *testing.T) {
	out, err := runCLI(t, "eval", "999999999999999+1=")
	require.ErrorIs(t, err, errCalculation)
	require.Equal(t, "Number too large\n", out)

	_, err = runCLI(t, "eval", "1?")
	var unknown *keypad.UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, '?', unknown.Rune)

	_, err = runCLI(t, "eval")
	require.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DESKCALC_CONFIG", "")

	cfg, err := loadConfig(&overrides{precision: 8, displayWidth: 12})
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Calculator.Precision)
	require.Equal(t, 12, cfg.Display.MaxItems)

	// a wider precision than the default display fails validation
	_, err = loadConfig(&overrides{precision: 20})
	require.Error(t, err)
}
