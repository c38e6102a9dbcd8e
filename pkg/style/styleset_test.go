package style

import (
	"slices"
	"testing"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/errors"
)

type notification struct {
	id    element.ID
	prop  Property
	unset bool
}

type recorder struct {
	events []notification
}

func (r *recorder) SetStyleProperty(id element.ID, p Property) {
	r.events = append(r.events, notification{id: id, prop: p})
}

func (r *recorder) UnsetStyleProperty(id element.ID, p Property) {
	r.events = append(r.events, notification{id: id, prop: p, unset: true})
}

func (r *recorder) reset() { r.events = nil }

func (r *recorder) forElement(id element.ID) []notification {
	var out []notification
	for _, n := range r.events {
		if n.id == id {
			out = append(out, n)
		}
	}
	return out
}

type attrMap map[element.ID]map[string]string

func (m attrMap) Attribute(id element.ID, name string) (string, bool) {
	v, ok := m[id][name]
	return v, ok
}

func (m attrMap) set(id element.ID, name, value string) {
	if m[id] == nil {
		m[id] = map[string]string{}
	}
	m[id][name] = value
}

type fixture struct {
	arena *element.Arena
	sys   *System
	rec   *recorder
	attrs attrMap
}

func newFixture() *fixture {
	f := &fixture{
		arena: element.NewArena(element.Config{InitialCapacity: 8, ReuseThreshold: -1}),
		rec:   &recorder{},
		attrs: attrMap{},
	}
	f.sys = NewSystem(f.arena, f.rec, f.attrs)
	return f
}

// create adds an element under parent, attaches containers and initializes it.
func (f *fixture) create(parent element.ID, containers ...*Container) (element.ID, *StyleSet) {
	id, s := f.createDeferred(parent, containers...)
	s.Initialize()
	return id, s
}

func (f *fixture) createDeferred(parent element.ID, containers ...*Container) (element.ID, *StyleSet) {
	depth := 0
	if !parent.IsNull() {
		depth = f.arena.Traversal(parent).Depth + 1
	}
	id := f.arena.CreateElement(nil, depth, element.FlagEnabled)
	if !parent.IsNull() {
		f.arena.AddChild(parent, id)
	}
	s := f.sys.Attach(id)
	s.SetBaseStyles(containers)
	return id, s
}

func container(name string, groups ...*Group) *Container {
	return &Container{Name: name, Groups: groups}
}

func styled(props ...Property) *StateStyle {
	return &StateStyle{Style: NewStyle(props...)}
}

func colorProp(id PropertyID, c Color) Property {
	return Property{ID: id, Value: ColorValue(c)}
}

func TestInitialize_NotifiesResolvedProperties(t *testing.T) {
	f := newFixture()
	c := container("box", &Group{Name: "base", Normal: styled(
		colorProp(BackgroundColor, ColorRed),
		Property{ID: Opacity, Value: Number(1)}, // equal to the default
	)})
	id, s := f.create(element.Null, c)

	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorRed) {
		t.Errorf("BackgroundColor = %v, want red", got)
	}
	events := f.rec.forElement(id)
	if len(events) != 1 || events[0].prop.ID != BackgroundColor {
		t.Errorf("notifications = %+v, want one for BackgroundColor", events)
	}
	if !s.IsDefined(Opacity) {
		t.Error("Opacity is defined locally even though it equals the default")
	}
}

func TestPriority_InstanceOutranksShared(t *testing.T) {
	f := newFixture()
	c := container("box", &Group{Name: "base", Normal: styled(colorProp(BackgroundColor, ColorRed))})
	_, s := f.create(element.Null, c)

	if err := s.SetProperty(colorProp(BackgroundColor, ColorGreen), StateNormal); err != nil {
		t.Fatal(err)
	}
	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorGreen) {
		t.Errorf("BackgroundColor = %v, want instance green", got)
	}

	// re-attaching shared styles must not displace the instance value
	s.UpdateSharedStyles([]*Container{container("other", &Group{Normal: styled(colorProp(BackgroundColor, ColorBlue))})})
	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorGreen) {
		t.Errorf("BackgroundColor after reset = %v, want instance green", got)
	}
}

func TestPriority_RuleQualifiedOutranksUnconditional(t *testing.T) {
	tests := []struct {
		name   string
		groups func(ruled, plain *Group) []*Group
	}{
		{"ruled first", func(r, p *Group) []*Group { return []*Group{r, p} }},
		{"ruled last", func(r, p *Group) []*Group { return []*Group{p, r} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			ruled := &Group{Name: "primary", Rule: AttributeExists("primary"), Normal: styled(colorProp(BackgroundColor, ColorBlue))}
			plain := &Group{Name: "base", Normal: styled(colorProp(BackgroundColor, ColorRed))}
			id, s := f.createDeferred(element.Null, container("button", tt.groups(ruled, plain)...))
			f.attrs.set(id, "primary", "")
			s.Initialize()

			if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorBlue) {
				t.Errorf("BackgroundColor = %v, want the rule-qualified blue", got)
			}
		})
	}
}

func TestPriority_EqualRuleCountLaterDeclarationWins(t *testing.T) {
	a := func() *Group {
		return &Group{Name: "a", Rule: AttributeExists("a"), Normal: styled(colorProp(BackgroundColor, ColorRed))}
	}
	b := func() *Group {
		return &Group{Name: "b", Rule: AttributeExists("b"), Normal: styled(colorProp(BackgroundColor, ColorBlue))}
	}
	tests := []struct {
		name       string
		containers func() []*Container
		want       Color
	}{
		{"groups a,b", func() []*Container { return []*Container{container("c", a(), b())} }, ColorBlue},
		{"groups b,a", func() []*Container { return []*Container{container("c", b(), a())} }, ColorRed},
		{"containers a,b", func() []*Container { return []*Container{container("ca", a()), container("cb", b())} }, ColorBlue},
		{"containers b,a", func() []*Container { return []*Container{container("cb", b()), container("ca", a())} }, ColorRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			id, s := f.createDeferred(element.Null, tt.containers()...)
			f.attrs.set(id, "a", "")
			f.attrs.set(id, "b", "")
			s.Initialize()
			if got := s.Computed(BackgroundColor).Value; got != ColorValue(tt.want) {
				t.Errorf("BackgroundColor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnterState_NoSourcesForStateIsSilent(t *testing.T) {
	f := newFixture()
	c := container("box", &Group{
		Normal: styled(colorProp(BackgroundColor, ColorRed)),
		Active: styled(colorProp(BackgroundColor, ColorBlue)),
	})
	_, s := f.create(element.Null, c)
	f.rec.reset()

	s.EnterState(StateHover)
	s.EnterState(StateFocused)
	s.ExitState(StateHover)

	if len(f.rec.events) != 0 {
		t.Errorf("expected no notifications, got %+v", f.rec.events)
	}
	if !s.IsFocused() || s.IsHovered() {
		t.Errorf("state = %v", s.CurrentState())
	}
}

func TestExitState_KeepsOtherActiveStates(t *testing.T) {
	f := newFixture()
	c := container("box", &Group{
		Normal: styled(colorProp(BackgroundColor, ColorRed)),
		Hover:  styled(colorProp(BackgroundColor, ColorGreen)),
		Active: styled(colorProp(BorderColorTop, ColorBlue)),
	})
	id, s := f.create(element.Null, c)

	s.EnterState(StateHover)
	s.EnterState(StateActive)
	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorGreen) {
		t.Fatalf("hovered BackgroundColor = %v, want green", got)
	}
	f.rec.reset()

	s.ExitState(StateHover)

	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorRed) {
		t.Errorf("BackgroundColor = %v, want red", got)
	}
	if got := s.Computed(BorderColorTop).Value; got != ColorValue(ColorBlue) {
		t.Errorf("BorderColorTop = %v, want blue (owned by Active)", got)
	}
	events := f.rec.forElement(id)
	if len(events) != 1 || events[0].prop != colorProp(BackgroundColor, ColorRed) {
		t.Errorf("notifications = %+v", events)
	}

	s.ExitState(StateNormal)
	if !s.IsInState(StateNormal) {
		t.Error("Normal cannot be exited")
	}
}

func TestEnterState_ActiveOutranksHover(t *testing.T) {
	f := newFixture()
	c := container("box", &Group{
		Hover:  styled(colorProp(BackgroundColor, ColorGreen)),
		Active: styled(colorProp(BackgroundColor, ColorBlue)),
	})
	_, s := f.create(element.Null, c)
	s.EnterState(StateActive)
	s.EnterState(StateHover)
	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorBlue) {
		t.Errorf("BackgroundColor = %v, want blue", got)
	}
}

func TestEnterExitState_RunsCommands(t *testing.T) {
	f := newFixture()
	var log []string
	cmd := RunCommand{Phase: PhaseEnter | PhaseExit, Action: func(_ element.ID, p Phase) {
		log = append(log, "hover "+p.String())
	}}
	c := container("box", &Group{Hover: &StateStyle{Commands: []RunCommand{cmd}}})
	_, s := f.create(element.Null, c)

	s.EnterState(StateHover)
	s.EnterState(StateHover)
	s.ExitState(StateHover)

	want := []string{"hover Enter", "hover Exit"}
	if !slices.Equal(log, want) {
		t.Errorf("commands = %v, want %v", log, want)
	}
}

func sameEntry(a, b EntrySnapshot) bool {
	return a.Source == b.Source && a.Group == b.Group && a.State == b.State &&
		a.Priority == b.Priority && a.Active == b.Active && slices.Equal(a.Defines, b.Defines)
}

func propertiesOf(s *StyleSet) []Property {
	return slices.Collect(s.Properties())
}

func TestUpdateSharedStyles_PathEquivalence(t *testing.T) {
	c1 := container("c1", &Group{
		Normal: styled(colorProp(BackgroundColor, ColorRed), colorProp(TextColor, ColorWhite)),
		Hover:  styled(Property{ID: Opacity, Value: Number(0.8)}),
	})
	c2 := container("c2",
		&Group{Normal: styled(colorProp(BackgroundColor, ColorBlue))},
		&Group{Rule: AttributeExists("wide"), Normal: styled(Property{ID: PreferredWidth, Value: Length(100, UnitPercent)})},
	)
	c3 := container("c3", &Group{Normal: styled(Property{ID: Opacity, Value: Number(0.5)}, Property{ID: MarginTop, Value: Length(4, UnitPixel)})})

	tests := []struct {
		name    string
		initial []*Container
	}{
		{"append", []*Container{c1}},
		{"prefix mismatch", []*Container{c3}},
		{"shorter", []*Container{c1, c2, c3}},
		{"same length mismatch", []*Container{c2, c1}},
		{"empty", nil},
	}

	var reference []Property
	var referenceEntries []EntrySnapshot
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			id, s := f.createDeferred(element.Null, tt.initial...)
			f.attrs.set(id, "wide", "yes")
			s.Initialize()
			s.EnterState(StateHover)

			s.UpdateSharedStyles([]*Container{c1, c2})

			got := propertiesOf(s)
			entries := s.Snapshot().Entries
			if i == 0 {
				reference, referenceEntries = got, entries
				return
			}
			if !slices.Equal(got, reference) {
				t.Errorf("properties = %v, want %v", got, reference)
			}
			if !slices.EqualFunc(entries, referenceEntries, sameEntry) {
				t.Errorf("entries = %+v, want %+v", entries, referenceEntries)
			}
			for _, id := range []PropertyID{MarginTop} {
				if s.IsDefined(id) {
					t.Errorf("%s survived the reset", id)
				}
			}
		})
	}
	if got := reference; len(got) == 0 {
		t.Fatal("reference run produced no properties")
	}
}

func TestUpdateSharedStyles_ResetNotifiesRemovedProperties(t *testing.T) {
	f := newFixture()
	c3 := container("c3", &Group{Normal: styled(Property{ID: Opacity, Value: Number(0.5)})})
	c1 := container("c1", &Group{Normal: styled(colorProp(BackgroundColor, ColorRed))})
	id, s := f.create(element.Null, c3)
	f.rec.reset()

	s.UpdateSharedStyles([]*Container{c1})

	events := f.rec.forElement(id)
	want := []notification{
		{id: id, prop: colorProp(BackgroundColor, ColorRed)},
		{id: id, prop: Property{ID: Opacity, Value: Number(1)}, unset: true},
	}
	if !slices.Equal(events, want) {
		t.Errorf("notifications = %+v, want %+v", events, want)
	}
}

func TestUpdateSharedStyles_SameListIsNoop(t *testing.T) {
	f := newFixture()
	var entered int
	c := container("c", &Group{Normal: &StateStyle{
		Style:    NewStyle(colorProp(BackgroundColor, ColorRed)),
		Commands: []RunCommand{{Phase: PhaseEnter, Action: func(element.ID, Phase) { entered++ }}},
	}})
	_, s := f.create(element.Null, c)
	f.rec.reset()

	s.UpdateSharedStyles([]*Container{c})
	s.SetBaseStyles([]*Container{nil, c, nil})

	if len(f.rec.events) != 0 || entered != 1 {
		t.Errorf("events = %v, enter commands = %d", f.rec.events, entered)
	}
}

func TestUpdateSharedStyles_ResetRunsExitOfRemoved(t *testing.T) {
	f := newFixture()
	var log []string
	mk := func(name string) *Container {
		return container(name, &Group{Normal: &StateStyle{
			Style: NewStyle(colorProp(BackgroundColor, ColorRed)),
			Commands: []RunCommand{{Phase: PhaseExit, Action: func(element.ID, Phase) {
				log = append(log, name)
			}}},
		}})
	}
	a, b := mk("a"), mk("b")
	_, s := f.create(element.Null, a, b)

	s.UpdateSharedStyles([]*Container{b})

	if !slices.Equal(log, []string{"a"}) {
		t.Errorf("exit commands = %v, want [a]", log)
	}
}

func TestAddRemoveContainer(t *testing.T) {
	f := newFixture()
	c1 := container("c1", &Group{Normal: styled(colorProp(BackgroundColor, ColorRed))})
	c2 := container("c2", &Group{Normal: styled(colorProp(BackgroundColor, ColorBlue))})
	id, s := f.create(element.Null, c1, c2)

	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorBlue) {
		t.Fatalf("BackgroundColor = %v, want blue", got)
	}

	f.rec.reset()
	s.RemoveContainer(c1)
	if len(f.rec.events) != 0 {
		t.Errorf("removing a shadowed container notified %+v", f.rec.events)
	}

	s.AddContainer(c1)
	if got := s.Computed(BackgroundColor).Value; got != ColorValue(ColorRed) {
		t.Errorf("re-added c1 is declared last, BackgroundColor = %v, want red", got)
	}
	if got := s.StyleNames(); got != "c2 c1" {
		t.Errorf("StyleNames = %q", got)
	}

	f.rec.reset()
	s.AddContainer(c1)
	s.RemoveContainer(c1)
	s.RemoveContainer(c1)
	events := f.rec.forElement(id)
	if len(events) != 1 || events[0].prop != colorProp(BackgroundColor, ColorBlue) {
		t.Errorf("notifications = %+v", events)
	}
}

func TestUpdateApplicableAttributeRules(t *testing.T) {
	f := newFixture()
	c := container("button",
		&Group{Name: "base", Normal: styled(colorProp(BackgroundColor, ColorRed))},
		&Group{Name: "disabled", Rule: AttributeEquals("disabled", "true"), Normal: styled(Property{ID: Opacity, Value: Number(0.5)})},
	)
	id, s := f.create(element.Null, c)
	if s.IsDefined(Opacity) {
		t.Fatal("disabled group should not apply yet")
	}
	f.rec.reset()

	f.attrs.set(id, "disabled", "true")
	s.UpdateApplicableAttributeRules()
	s.UpdateApplicableAttributeRules()
	if got := s.Computed(Opacity).Value; got != Number(0.5) {
		t.Errorf("Opacity = %v, want 0.5", got)
	}

	f.attrs.set(id, "disabled", "false")
	s.UpdateApplicableAttributeRules()
	if got := s.Computed(Opacity).Value; got != Number(1) {
		t.Errorf("Opacity = %v, want default", got)
	}

	want := []notification{
		{id: id, prop: Property{ID: Opacity, Value: Number(0.5)}},
		{id: id, prop: Property{ID: Opacity, Value: Number(1)}, unset: true},
	}
	if !slices.Equal(f.rec.events, want) {
		t.Errorf("notifications = %+v, want %+v", f.rec.events, want)
	}
}

func TestAttributeRuleNegationAndConjunction(t *testing.T) {
	attrs := attrMap{}
	id := element.ID{Index: 1}
	attrs.set(id, "kind", "primary")

	if !AttributeEquals("kind", "primary").IsApplicableTo(id, attrs) {
		t.Error("equals should match")
	}
	if AttributeEquals("kind", "primary").Not().IsApplicableTo(id, attrs) {
		t.Error("negated equals should not match")
	}
	if !AttributeExists("missing").Not().IsApplicableTo(id, attrs) {
		t.Error("negated exists should match a missing attribute")
	}
	all := AllRules{AttributeExists("kind"), AttributeEquals("kind", "secondary")}
	if all.IsApplicableTo(id, attrs) {
		t.Error("conjunction should require every rule")
	}
	if all.Count() != 2 || !all.DependsOnAttributes() {
		t.Errorf("Count = %d", all.Count())
	}
}

func TestSetProperty_InvalidState(t *testing.T) {
	c := &errors.Collector{}
	errors.SetHandler(c)
	defer errors.SetHandler(nil)

	f := newFixture()
	_, s := f.create(element.Null)

	for _, st := range []State{StateHover | StateActive, 0, State(1 << 6)} {
		err := s.SetProperty(colorProp(BackgroundColor, ColorRed), st)
		argErr, ok := err.(*errors.ArgumentError)
		if !ok {
			t.Fatalf("SetProperty(%v) error = %v, want *ArgumentError", st, err)
		}
		if argErr.Param != "state" {
			t.Errorf("Param = %q", argErr.Param)
		}
	}
	if reported := c.Errors(); len(reported) != 3 || reported[0].Kind != errors.KindArgument {
		t.Errorf("reported = %v", reported)
	}
	if s.InstanceStyle(StateHover) != nil {
		t.Error("rejected writes must not touch the instance style")
	}

	if _, ok := s.SetProperty(Property{ID: Opacity, Value: ColorValue(ColorRed)}, StateNormal).(*errors.ArgumentError); !ok {
		t.Error("mismatched value kind should be rejected")
	}
}

func TestSetProperty_InactiveStateStoresOnly(t *testing.T) {
	f := newFixture()
	id, s := f.create(element.Null)
	f.rec.reset()

	if err := s.SetProperty(colorProp(BackgroundColor, ColorGreen), StateHover); err != nil {
		t.Fatal(err)
	}
	if len(f.rec.events) != 0 || s.IsDefined(BackgroundColor) {
		t.Fatalf("inactive write should not resolve, events = %+v", f.rec.events)
	}

	s.EnterState(StateHover)
	events := f.rec.forElement(id)
	if len(events) != 1 || events[0].prop != colorProp(BackgroundColor, ColorGreen) {
		t.Errorf("notifications = %+v", events)
	}
	if got := s.PropertySource(BackgroundColor); got != "Instance [Hover]" {
		t.Errorf("PropertySource = %q", got)
	}
}

func TestSetProperty_RemovalFallsBack(t *testing.T) {
	f := newFixture()
	c := container("box", &Group{Normal: styled(Property{ID: Opacity, Value: Number(0.3)})})
	id, s := f.create(element.Null, c)

	_ = s.SetProperty(Property{ID: Opacity, Value: Number(0.6)}, StateNormal)
	_ = s.SetProperty(Property{ID: Opacity, Value: Number(0.6)}, StateNormal)
	_ = s.SetProperty(Unset(Opacity), StateNormal)
	s.RemoveContainer(c)

	want := []notification{
		{id: id, prop: Property{ID: Opacity, Value: Number(0.3)}},
		{id: id, prop: Property{ID: Opacity, Value: Number(0.6)}},
		{id: id, prop: Property{ID: Opacity, Value: Number(0.3)}},
		{id: id, prop: Property{ID: Opacity, Value: Number(1)}, unset: true},
	}
	if !slices.Equal(f.rec.events, want) {
		t.Errorf("notifications = %+v\nwant %+v", f.rec.events, want)
	}
	if s.IsDefined(Opacity) {
		t.Error("Opacity should no longer be defined")
	}
}

func TestInheritance_PushesToDescendantsWithoutLocalValue(t *testing.T) {
	f := newFixture()
	red := container("root", &Group{Normal: styled(colorProp(TextColor, ColorRed))})
	r, rs := f.create(element.Null, red)
	a, as := f.createDeferred(r)
	_ = as.SetProperty(colorProp(TextColor, ColorBlue), StateNormal)
	as.Initialize()
	a1, a1s := f.create(a)
	b, bs := f.create(r)
	b1, b1s := f.create(b)

	check := func(step string, s *StyleSet, want Color) {
		t.Helper()
		if got := s.Computed(TextColor).Value; got != ColorValue(want) {
			t.Errorf("%s: %v TextColor = %v, want %v", step, s.Element(), got, want)
		}
	}
	check("setup", as, ColorBlue)
	check("setup", a1s, ColorBlue)
	check("setup", bs, ColorRed)
	check("setup", b1s, ColorRed)
	f.rec.reset()

	_ = rs.SetProperty(colorProp(TextColor, ColorGreen), StateNormal)

	check("push", rs, ColorGreen)
	check("push", as, ColorBlue)
	check("push", a1s, ColorBlue)
	check("push", bs, ColorGreen)
	check("push", b1s, ColorGreen)

	var touched []element.ID
	for _, n := range f.rec.events {
		touched = append(touched, n.id)
	}
	if !slices.Equal(touched, []element.ID{r, b, b1}) {
		t.Errorf("notified %v, want [%v %v %v]", touched, r, b, b1)
	}

	// A falls back to the value it inherited while it was overriding it
	f.rec.reset()
	_ = as.SetProperty(Unset(TextColor), StateNormal)
	check("unset", as, ColorGreen)
	check("unset", a1s, ColorGreen)
	want := []notification{
		{id: a, prop: colorProp(TextColor, ColorGreen), unset: true},
		{id: a1, prop: colorProp(TextColor, ColorGreen)},
	}
	if !slices.Equal(f.rec.events, want) {
		t.Errorf("notifications = %+v, want %+v", f.rec.events, want)
	}
	if got := a1s.PropertySource(TextColor); got != "Inherited" {
		t.Errorf("PropertySource = %q, want Inherited", got)
	}
}

func TestInheritance_SkipsDisabledUntilRefreshed(t *testing.T) {
	f := newFixture()
	r, rs := f.create(element.Null)
	b, bs := f.create(r)
	_, b1s := f.create(b)

	f.arena.Disable(b)
	_ = rs.SetProperty(colorProp(TextColor, ColorGreen), StateNormal)
	if got := bs.Computed(TextColor).Value; got != ColorValue(ColorBlack) {
		t.Fatalf("disabled child received %v", got)
	}

	f.arena.Enable(b)
	f.rec.reset()
	f.sys.RefreshInherited(b)

	if got := b1s.Computed(TextColor).Value; got != ColorValue(ColorGreen) {
		t.Errorf("grandchild TextColor = %v, want green", got)
	}
	if len(f.rec.events) != 2 {
		t.Errorf("notifications = %+v, want one per element", f.rec.events)
	}
}

func TestEndToEnd_RootChildrenAndSlotReuse(t *testing.T) {
	f := newFixture()
	shared := container("root", &Group{Normal: styled(colorProp(TextColor, ColorRed))})
	r, rs := f.create(element.Null, shared)
	a, as := f.create(r)
	_, bs := f.create(r)

	for _, s := range []*StyleSet{as, bs} {
		if got := s.Computed(TextColor).Value; got != ColorValue(ColorRed) {
			t.Fatalf("%v TextColor = %v, want inherited red", s.Element(), got)
		}
	}

	if err := as.SetProperty(colorProp(TextColor, ColorBlue), StateNormal); err != nil {
		t.Fatal(err)
	}
	if got := as.Computed(TextColor).Value; got != ColorValue(ColorBlue) {
		t.Errorf("A = %v, want blue", got)
	}
	if got := bs.Computed(TextColor).Value; got != ColorValue(ColorRed) {
		t.Errorf("B = %v, want red", got)
	}
	if got := rs.Computed(TextColor).Value; got != ColorValue(ColorRed) {
		t.Errorf("R = %v, want red", got)
	}

	f.sys.Discard(a)
	f.arena.DestroyElement(a, true)

	reused := f.arena.CreateElement(nil, 1, element.FlagEnabled)
	if reused.Index != a.Index {
		t.Fatalf("index %d was not reused (got %d)", a.Index, reused.Index)
	}
	if reused.Generation != a.Generation+1 {
		t.Errorf("Generation = %d, want %d", reused.Generation, a.Generation+1)
	}
	if f.arena.IsAlive(a) {
		t.Error("old handle should be dead")
	}
	if _, ok := f.sys.StyleSet(reused); ok {
		t.Error("reused slot should have no style set before Attach")
	}

	f.arena.AddChild(r, reused)
	ns := f.sys.Attach(reused)
	if ns.PropertyMap().Len() != 0 || len(ns.Snapshot().Entries) != 0 || ns.Initialized() {
		t.Error("reused slot carries residual style state")
	}
	if _, ok := ns.PropertyMap().Inherited(TextColor); ok {
		t.Error("reused slot carries a residual inherited value")
	}
	if got := ns.Computed(TextColor).Value; got != ColorValue(ColorBlack) {
		t.Errorf("before Initialize TextColor = %v, want default", got)
	}

	ns.Initialize()
	if got := ns.Computed(TextColor).Value; got != ColorValue(ColorRed) {
		t.Errorf("after Initialize TextColor = %v, want inherited red", got)
	}

	// a stale style set must not touch the new occupant
	f.rec.reset()
	_ = as.SetProperty(colorProp(TextColor, ColorGreen), StateNormal)
	as.EnterState(StateHover)
	if len(f.rec.events) != 0 {
		t.Errorf("stale set notified %+v", f.rec.events)
	}
}

func TestPropertySource(t *testing.T) {
	f := newFixture()
	c := container("button", &Group{Name: "base", Normal: styled(colorProp(BackgroundColor, ColorRed))})
	_, s := f.create(element.Null, c)
	_ = s.SetProperty(Property{ID: Opacity, Value: Number(0.5)}, StateNormal)

	tests := []struct {
		id   PropertyID
		want string
	}{
		{BackgroundColor, "button [Normal]"},
		{Opacity, "Instance [Normal]"},
		{TextColor, "Default"},
	}
	for _, tt := range tests {
		if got := s.PropertySource(tt.id); got != tt.want {
			t.Errorf("PropertySource(%s) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestRunCommands(t *testing.T) {
	f := newFixture()
	var n int
	inc := []RunCommand{{Phase: PhaseEnter, Action: func(element.ID, Phase) { n++ }}}
	c := container("c", &Group{
		Normal: &StateStyle{Commands: inc},
		Hover:  &StateStyle{Commands: inc},
	})
	_, s := f.create(element.Null, c)
	n = 0
	s.RunCommands()
	if n != 1 {
		t.Errorf("RunCommands ran %d commands, want 1", n)
	}
}

func TestMutationDuringReadPhase_Asserts(t *testing.T) {
	errors.SetDebugMode(true)
	f := newFixture()
	_, s := f.create(element.Null, container("c", &Group{Hover: styled(colorProp(BackgroundColor, ColorRed))}))

	f.arena.BeginRead()
	defer func() {
		f.arena.EndRead()
		if _, ok := recover().(*errors.InvariantError); !ok {
			t.Error("expected an invariant panic")
		}
	}()
	s.EnterState(StateHover)
}
