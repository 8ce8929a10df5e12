package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Message field names
const (
	FieldDungeonID = "dungeon_id"
	FieldLayout    = "layout"
	FieldDeleted   = "deleted"
	FieldASCII     = "ascii"
	FieldSummary   = "summary"
)

// ParamsFromStruct reads generation params from a request. Unknown fields
// are ignored; non-integer numbers are rejected.
func ParamsFromStruct(req *structpb.Struct) (dungeon.Params, error) {
	var params dungeon.Params
	if req == nil {
		return params, errors.InvalidArgument("request is required")
	}

	data, err := protojson.Marshal(req)
	if err != nil {
		return params, errors.Wrap(err, "failed to encode request")
	}
	if err := json.Unmarshal(data, &params); err != nil {
		return params, errors.InvalidArgumentf("invalid generation params: %v", err)
	}
	return params, nil
}

// ParamsToStruct is the inverse of ParamsFromStruct, used by clients
func ParamsToStruct(params dungeon.Params) (*structpb.Struct, error) {
	return toStruct(params)
}

// LayoutToStruct converts a layout to its wire document
func LayoutToStruct(layout *dungeon.Layout) (*structpb.Struct, error) {
	if layout == nil {
		return nil, errors.InvalidArgument("layout is required")
	}
	return toStruct(layout)
}

// LayoutFromStruct decodes a layout document
func LayoutFromStruct(doc *structpb.Struct) (*dungeon.Layout, error) {
	if doc == nil {
		return nil, errors.InvalidArgument("layout is required")
	}
	data, err := protojson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode layout")
	}
	var layout dungeon.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, errors.InvalidArgumentf("invalid layout: %v", err)
	}
	return &layout, nil
}

// DungeonIDFromStruct reads the required dungeon_id field
func DungeonIDFromStruct(req *structpb.Struct) (string, error) {
	if req == nil {
		return "", errors.InvalidArgument("request is required")
	}
	id := req.GetFields()[FieldDungeonID].GetStringValue()
	if id == "" {
		return "", errors.InvalidArgument("dungeon_id is required")
	}
	return id, nil
}

// DungeonIDToStruct builds a request that only carries a dungeon id
func DungeonIDToStruct(id string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDungeonID: structpb.NewStringValue(id),
	}}
}

// toStruct goes through JSON so struct tags decide the field names
func toStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.Wrap(err, "failed to build message")
	}
	return out, nil
}
