package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/pizzafactory/app"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath, quiet, menuFormat, orderRegion, orderKind = "", false, "", "", ""
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootInteractive(t *testing.T) {
	out, err := execute(t, "Italy\ncheese\n")
	require.NoError(t, err)
	want := app.Banner + "\n" + app.RegionPrompt + app.KindPrompt +
		"Preparing an Italian Margherita Pizza with fresh basil and mozzarella 🇮🇹\n" +
		"Baking in a wood-fired oven.\n" +
		"Serving with olive oil drizzle.\n"
	assert.Equal(t, want, out)
}

func TestRootInvalidRegionExitsCleanly(t *testing.T) {
	out, err := execute(t, "Mars\n", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, app.RegionPrompt+"Invalid region. Choose from USA, Italy, or China.\n", out)
}

func TestOrderCommand(t *testing.T) {
	out, err := execute(t, "", "order", "--region", "usa", "--kind", "CHEESE")
	require.NoError(t, err)
	assert.Equal(t, "Preparing an American Cheese Pizza with mozzarella and pepperoni 🇺🇸\n"+
		"Baking in a deep-dish oven.\n"+
		"Serving with ranch dip.\n", out)

	out, err = execute(t, "", "order", "-r", "italy", "-k", "pepperoni")
	require.NoError(t, err)
	assert.Equal(t, "Invalid pizza type. Choose 'cheese' or 'veggie'.\n", out)
}

func TestMenuCommand(t *testing.T) {
	out, err := execute(t, "", "menu", "--format", "json")
	require.NoError(t, err)
	var items []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, 6)

	_, err = execute(t, "", "menu", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigFileWithMetricsTextfile(t *testing.T) {
	dir := t.TempDir()
	prom := filepath.Join(dir, "pizzafactory.prom")
	cfgFile := filepath.Join(dir, "config.yaml")
	data := "metrics:\n  sinks:\n    - type: prometheus\n      conf:\n        textfile: " + prom + "\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(data), 0o644))

	_, err := execute(t, "", "order", "-c", cfgFile, "-r", "china", "-k", "cheese")
	require.NoError(t, err)
	b, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(b), `pizzafactory_orders_total{kind="cheese",region="china"} 1`)
}

func TestBadConfigFails(t *testing.T) {
	_, err := execute(t, "", "menu", "-c", filepath.Join(t.TempDir(), "config.toml"))
	assert.Error(t, err)
}
