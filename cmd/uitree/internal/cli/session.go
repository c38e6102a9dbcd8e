package cli

import (
	"github.com/go-drift/uitree/pkg/app"
	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/scene"
	"github.com/go-drift/uitree/pkg/style"
	"github.com/go-drift/uitree/pkg/stylesheet"
)

// session is a scene built into a fresh application.
type session struct {
	app     *app.Application
	sheet   *stylesheet.Sheet
	index   *scene.Index
	changes *changeCounter
}

// changeCounter counts style notifications while a scene is built.
type changeCounter struct {
	set, unset int
}

func (c *changeCounter) SetStyleProperty(element.ID, style.Property)   { c.set++ }
func (c *changeCounter) UnsetStyleProperty(element.ID, style.Property) { c.unset++ }

func (o *RootOptions) loadSheet() (*stylesheet.Sheet, error) {
	if o.Sheet == "" {
		return nil, nil
	}
	sheet, err := stylesheet.Load(o.Sheet)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("stylesheet loaded", "path", o.Sheet, "version", sheet.Version, "containers", len(sheet.Containers()))
	return sheet, nil
}

// openSession loads the stylesheet and the scene at scenePath and builds the
// scene into a new application configured from uitree.yaml.
func (o *RootOptions) openSession(scenePath string) (*session, error) {
	sheet, err := o.loadSheet()
	if err != nil {
		return nil, err
	}
	sc, err := scene.Load(scenePath)
	if err != nil {
		return nil, err
	}

	changes := &changeCounter{}
	a := app.New(app.Config{Arena: o.resolved.Arena, Logger: o.logger}, changes)
	index, err := scene.Build(a, sheet, sc)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("scene loaded",
		"path", scenePath,
		"elements", a.Arena().LiveCount(),
		"set_notifications", changes.set,
		"unset_notifications", changes.unset,
	)
	return &session{app: a, sheet: sheet, index: index, changes: changes}, nil
}
