package entity

import (
	"maps"

	"github.com/bytedance/sonic"
)

// RunDescriptor identifies the interactive exercise launched for an activity.
// Catalog values are either a bare type name (SimpleRun) or a mapping with a
// "type" key and extra parameters (ParameterizedRun).
type RunDescriptor interface {
	RunType() string
}

type SimpleRun struct {
	Type string
}

func (r SimpleRun) RunType() string {
	return r.Type
}

func (r SimpleRun) MarshalJSON() ([]byte, error) {
	return sonic.ConfigDefault.Marshal(r.Type)
}

type ParameterizedRun struct {
	Type   string
	Params map[string]any
}

func (r ParameterizedRun) RunType() string {
	return r.Type
}

// MarshalJSON flattens params next to "type", the shape the runners expect.
func (r ParameterizedRun) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Params)+1)
	maps.Copy(out, r.Params)
	out["type"] = r.Type
	return sonic.ConfigDefault.Marshal(out)
}

// NewRunDescriptor resolves a raw catalog value. Returns nil for absent or
// unusable values, which means legacy completion only.
func NewRunDescriptor(raw any) RunDescriptor {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil
		}
		return SimpleRun{Type: v}
	case map[string]any:
		t, _ := v["type"].(string)
		if t == "" {
			return nil
		}
		params := make(map[string]any, len(v))
		for k, val := range v {
			if k != "type" {
				params[k] = val
			}
		}
		return ParameterizedRun{Type: t, Params: params}
	}
	return nil
}
