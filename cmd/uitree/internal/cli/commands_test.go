package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/uitree/pkg/store"
)

func TestResolve_Text(t *testing.T) {
	out, _, err := execute(t, "resolve", scenePath, "--sheet", sheetPath, "--workers", "2")
	require.NoError(t, err)
	assertGolden(t, "resolve", out)
}

func TestResolve_JSON(t *testing.T) {
	out, _, err := execute(t, "resolve", scenePath, "--sheet", sheetPath, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   ResolveResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Elements, 3)

	cancel := resp.Data.Elements[2]
	assert.Equal(t, "cancel", cancel.Name)
	assert.Equal(t, 1, cancel.Depth)
	assert.Contains(t, cancel.Properties, PropertyResult{Name: "Opacity", Value: "0.5", Source: "button [Normal]"})
}

func TestResolve_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "resolve", scenePath, "--sheet", sheetPath, "--format", "json", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Built 3 element(s)")
	assert.Contains(t, errOut, "scene loaded")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "stdout must stay valid JSON")
}

func TestResolve_MissingScene(t *testing.T) {
	out, _, err := execute(t, "resolve", filepath.Join("testdata", "missing.yaml"), "--sheet", sheetPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestSource_Text(t *testing.T) {
	out, _, err := execute(t, "source", scenePath, "--sheet", sheetPath, "--element", "ok", "--property", "BackgroundColor")
	require.NoError(t, err)
	assertGolden(t, "source", out)
}

func TestSource_JSON(t *testing.T) {
	out, _, err := execute(t, "source", scenePath, "-s", sheetPath, "-e", "cancel", "-p", "TextColor", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Data SourceResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "#ff0000ff", resp.Data.Value)
	assert.Equal(t, "Instance [Normal]", resp.Data.Source)
	require.NotEmpty(t, resp.Data.Entries)
	assert.True(t, resp.Data.Entries[0].Defines)
}

func TestSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown property", []string{"-e", "ok", "-p", "Colour"}, `unknown property "Colour"`},
		{"unknown element", []string{"-e", "nope", "-p", "TextColor"}, `element "nope" not found`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"source", scenePath, "--sheet", sheetPath}, tt.args...)
			out, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, tt.want)
		})
	}

	_, _, err := execute(t, "source", scenePath, "--sheet", sheetPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestValidate_Text(t *testing.T) {
	out, _, err := execute(t, "validate", scenePath, "--sheet", sheetPath)
	require.NoError(t, err)
	assertGolden(t, "validate", out)
}

func TestValidate_InvalidSheet(t *testing.T) {
	out, _, err := execute(t, "validate", "--sheet", filepath.Join("testdata", "bad_sheet.yaml"), "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeParse, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, `property "Colour"`)
}

func TestValidate_RequiresSheet(t *testing.T) {
	_, _, err := execute(t, "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--sheet is required")
}

func TestExport_WritesRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	out, _, err := execute(t, "export", scenePath, "--sheet", sheetPath, "--db", db, "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   ExportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 3, resp.Data.Elements)
	assert.Equal(t, 8, resp.Data.Properties)

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	run, err := s.ReadRun(context.Background(), resp.Data.RunID)
	require.NoError(t, err)
	assert.Equal(t, sheetPath, run.Sheet)
	require.Len(t, run.Elements, 3)
	assert.Equal(t, "cancel", run.Elements[2].Name)
	assert.Contains(t, run.Elements[2].Properties, store.Property{Name: "Opacity", Value: "0.5", Source: "button [Normal]"})
}

func TestExport_TwoRunsAreDistinct(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	for range 2 {
		out, _, err := execute(t, "export", scenePath, "-s", sheetPath, "--db", db)
		require.NoError(t, err)
		assert.Contains(t, out, "✓ Exported run")
	}

	s, err := store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	ids, err := s.RunIDs(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestExport_RequiresDB(t *testing.T) {
	_, _, err := execute(t, "export", scenePath, "--sheet", sheetPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"db" not set`)
}
