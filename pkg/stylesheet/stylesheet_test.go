package stylesheet

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/errors"
	"github.com/go-drift/uitree/pkg/style"
)

const buttonSheet = `
version: v1.2.0
containers:
  - name: button
    groups:
      - name: base
        normal: {BackgroundColor: "#336699", TextColor: white, PaddingLeft: 4px}
        hover:  {BackgroundColor: "#4477aa"}
      - name: disabled
        when: {attribute: disabled, equals: "true"}
        normal: {Opacity: 0.5}
      - when:
          - {attribute: role}
          - {attribute: hidden, not: true}
        focused: {OutlineColor: red}
  - name: label
    groups:
      - name: text
        normal: {TextAlignment: center, TextFontSize: 1.5em}
`

func TestParse_Containers(t *testing.T) {
	sheet, err := Parse([]byte(buttonSheet))
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", sheet.Version)

	containers := sheet.Containers()
	require.Len(t, containers, 2)
	assert.Equal(t, "button", containers[0].Name)
	assert.Equal(t, style.SourceShared, containers[0].Type)

	button, ok := sheet.Container("button")
	require.True(t, ok)
	require.Len(t, button.Groups, 3)

	base := button.Groups[0]
	assert.Equal(t, "base", base.Name)
	assert.Nil(t, base.Rule)
	bg, ok := base.Normal.Style.Get(style.BackgroundColor)
	require.True(t, ok)
	assert.Equal(t, style.ColorValue(style.RGB(0x33, 0x66, 0x99)), bg.Value)
	pad, ok := base.Normal.Style.Get(style.PaddingLeft)
	require.True(t, ok)
	assert.Equal(t, style.Length(4, style.UnitPixel), pad.Value)
	assert.NotNil(t, base.Hover)
	assert.Nil(t, base.Focused)

	disabled := button.Groups[1]
	require.NotNil(t, disabled.Rule)
	assert.Equal(t, 1, disabled.Rule.Count())
	assert.True(t, disabled.HasAttributeRule())

	anon := button.Groups[2]
	assert.Equal(t, "group2", anon.Name)
	assert.Equal(t, 2, anon.Rule.Count())
	assert.NotNil(t, anon.Focused)

	label, ok := sheet.Container("label")
	require.True(t, ok)
	align, _ := label.Groups[0].Normal.Style.Get(style.TextAlignment)
	assert.Equal(t, "center", align.Format())
	size, _ := label.Groups[0].Normal.Style.Get(style.TextFontSize)
	assert.Equal(t, style.Length(1.5, style.UnitEm), size.Value)

	_, ok = sheet.Container("missing")
	assert.False(t, ok)
}

func TestParse_RuleEvaluation(t *testing.T) {
	sheet, err := Parse([]byte(buttonSheet))
	require.NoError(t, err)
	button, _ := sheet.Container("button")
	rule := button.Groups[2].Rule

	attrs := attrReader{"role": "button"}
	assert.True(t, rule.IsApplicableTo(element.Null, attrs))
	attrs["hidden"] = ""
	assert.False(t, rule.IsApplicableTo(element.Null, attrs))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{
			name: "empty",
			yaml: "",
			want: []string{"empty stylesheet"},
		},
		{
			name: "missing version",
			yaml: "containers: []",
			want: []string{"missing version"},
		},
		{
			name: "invalid version",
			yaml: "version: 1.0",
			want: []string{`"1.0"`, "semantic version"},
		},
		{
			name: "unsupported major",
			yaml: "version: v2.0.0",
			want: []string{"unsupported major version v2"},
		},
		{
			name: "unknown field",
			yaml: "version: v1.0.0\ncontainer: []",
			want: []string{"invalid YAML", "container"},
		},
		{
			name: "unknown property",
			yaml: "version: v1.0.0\ncontainers:\n  - name: box\n    groups:\n      - name: base\n        normal: {Colour: red}",
			want: []string{`container "box"`, `group "base"`, "normal", `property "Colour"`, "unknown property"},
		},
		{
			name: "bad value",
			yaml: "version: v1.0.0\ncontainers:\n  - name: box\n    groups:\n      - name: base\n        hover: {Opacity: lots}",
			want: []string{`container "box"`, `group "base"`, "hover", `property "Opacity"`},
		},
		{
			name: "duplicate container",
			yaml: "version: v1.0.0\ncontainers:\n  - name: box\n  - name: box",
			want: []string{`container "box": defined twice`},
		},
		{
			name: "unnamed container",
			yaml: "version: v1.0.0\ncontainers:\n  - groups: []",
			want: []string{"container 0: missing name"},
		},
		{
			name: "rule without attribute",
			yaml: "version: v1.0.0\ncontainers:\n  - name: box\n    groups:\n      - when: {equals: x}",
			want: []string{`group "group0"`, "missing attribute"},
		},
		{
			name: "scalar rule",
			yaml: "version: v1.0.0\ncontainers:\n  - name: box\n    groups:\n      - when: disabled",
			want: []string{"when must be a mapping"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)

			var uerr *errors.UITreeError
			require.True(t, stderrors.As(err, &uerr))
			assert.Equal(t, errors.KindParsing, uerr.Kind)
			assert.Equal(t, "stylesheet.Parse", uerr.Op)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(buttonSheet), 0o644))

	sheet, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sheet.Containers(), 2)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stylesheet.Load")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: v3.0.0"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}

func TestSheet_Resolve(t *testing.T) {
	sheet, err := Parse([]byte(buttonSheet))
	require.NoError(t, err)

	got, err := sheet.Resolve([]string{"label", "button"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "label", got[0].Name)
	assert.Equal(t, "button", got[1].Name)

	_, err = sheet.Resolve([]string{"button", "nope"})
	assert.ErrorContains(t, err, `"nope"`)
}

type attrReader map[string]string

func (a attrReader) Attribute(_ element.ID, name string) (string, bool) {
	v, ok := a[name]
	return v, ok
}
