package sand

import (
	"strconv"
	"strings"

	"mad-sand/internal/core"
)

// Parameters publishes the world settings, brush and last tick statistics
// for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	st := w.stats
	population := make([]core.Parameter, 0, cellTypeCount)
	for _, c := range Types() {
		population = append(population, intParam("pop_"+strings.ReplaceAll(c.String(), " ", "_"), c.String(), st.Count(c)))
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("n", "Size", w.cfg.Size),
				textParam("scene", "Scene", w.cfg.Scene),
				int64Param("tick", "Tick", w.tick),
				boolParam("destroyer_self", "Destroyer hits self", w.cfg.DestroyerIncludesSelf),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				textParam("brush", "Material", w.brush.Type.String()),
				intParam("brush_radius", "Radius", w.brush.Radius),
			},
		},
		{
			Name: "Last Tick",
			Params: []core.Parameter{
				intParam("falls", "Falls", st.Falls),
				intParam("spills", "Spills", st.Spills),
				intParam("exposed", "Exposed", st.Exposed),
				intParam("settled", "Settled", st.Settled),
				intParam("clones", "Clones", st.Clones),
				intParam("destroyed", "Destroyed", st.Destroyed),
				intParam("bodies", "Water bodies", st.Bodies),
				intParam("leveled", "Leveled", st.Leveled),
				intParam("abandoned", "Abandoned", st.Abandoned),
			},
		},
		{Name: "Population", Params: population},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetBoolParameter implements core.BoolParameterSetter.
func (w *World) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "destroyer_self":
		w.SetDestroyerIncludesSelf(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
