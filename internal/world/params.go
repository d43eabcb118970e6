package world

import (
	"strconv"

	"tidelands/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	gen := w.cfg.Gen
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("loop_stride", "Loop stride", w.cfg.LoopStride),
				boolParam("freeform_edges", "Freeform edges", w.cfg.FreeformEdges),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				intParam("island_count", "Island count", gen.IslandCount),
				intParam("island_radius_min", "Island radius min", gen.IslandRadiusMin),
				intParam("island_radius_max", "Island radius max", gen.IslandRadiusMax),
				intParam("tree_patch_count", "Tree patch count", gen.TreePatchCount),
				intParam("tree_patch_radius", "Tree patch radius", gen.TreePatchRadius),
				floatParam("tree_density", "Tree density", gen.TreeDensity),
				intParam("rail_spurs", "Rail spurs", gen.RailSpurs),
				intParam("buoys", "Buoys", gen.Buoys),
				intParam("oil_rigs", "Oil rigs", gen.OilRigs),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables exposed on the HUD. Generation values
// take effect on the next reset; the loop stride applies immediately.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "loop_stride", Label: "Loop stride", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 64, HasMin: true, HasMax: true},
		{Key: "island_count", Label: "Islands", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "tree_patch_count", Label: "Tree patches", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
		{Key: "rail_spurs", Label: "Rail spurs", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "tree_density", Label: "Tree density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "loop_stride":
		if value < 1 {
			return false
		}
		w.cfg.LoopStride = value
	case "island_count":
		w.cfg.Gen.IslandCount = value
	case "tree_patch_count":
		w.cfg.Gen.TreePatchCount = value
	case "rail_spurs":
		w.cfg.Gen.RailSpurs = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "tree_density":
		if value < 0 || value > 1 {
			return false
		}
		w.cfg.Gen.TreeDensity = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
