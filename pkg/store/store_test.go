package store

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(id string, at time.Time) Run {
	return Run{
		ID:        id,
		Scene:     "scene.yaml",
		Sheet:     "sheet.yaml",
		CreatedAt: at,
		Elements: []Element{
			{
				Name:   "dialog",
				State:  "Normal",
				Styles: "panel",
				Properties: []Property{
					{Name: "TextColor", Value: "#000080ff", Source: "panel [Normal]"},
					{Name: "BackgroundColor", Value: "#ffffffff", Source: "panel [Normal]"},
				},
			},
			{Name: "footer", Depth: 1, State: "Normal", Disabled: true},
		},
	}
}

func TestOpen_AppliesSchema(t *testing.T) {
	s := createTestStore(t)
	v, err := s.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.WriteRun(context.Background(), sampleRun("r1", time.UnixMilli(1000))))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	ids, err := s.RunIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, ids)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	at := time.UnixMilli(1_700_000_000_000).UTC()
	require.NoError(t, s.WriteRun(ctx, sampleRun("r1", at)))

	run, err := s.ReadRun(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "scene.yaml", run.Scene)
	assert.True(t, at.Equal(run.CreatedAt))
	require.Len(t, run.Elements, 2)

	dialog := run.Elements[0]
	assert.Equal(t, "dialog", dialog.Name)
	require.Len(t, dialog.Properties, 2)
	assert.Equal(t, "BackgroundColor", dialog.Properties[0].Name, "properties are ordered by name")

	footer := run.Elements[1]
	assert.True(t, footer.Disabled)
	assert.Equal(t, 1, footer.Depth)
	assert.Empty(t, footer.Properties)
}

func TestWriteRun_DuplicateIsNoop(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	require.NoError(t, s.WriteRun(ctx, sampleRun("r1", time.UnixMilli(1))))

	other := sampleRun("r1", time.UnixMilli(2))
	other.Scene = "changed.yaml"
	require.NoError(t, s.WriteRun(ctx, other))

	run, err := s.ReadRun(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "scene.yaml", run.Scene)
	assert.Len(t, run.Elements, 2)
}

func TestWriteRun_RollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	run := sampleRun("bad", time.UnixMilli(1))
	run.Elements[0].Properties = append(run.Elements[0].Properties, run.Elements[0].Properties[0])

	err := s.WriteRun(ctx, run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialog.TextColor")

	_, err = s.ReadRun(ctx, "bad")
	assert.True(t, stderrors.Is(err, ErrRunNotFound))
}

func TestRunIDs_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	require.NoError(t, s.WriteRun(ctx, sampleRun("old", time.UnixMilli(10))))
	require.NoError(t, s.WriteRun(ctx, sampleRun("new", time.UnixMilli(20))))

	ids, err := s.RunIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, ids)
}
