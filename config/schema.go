package config

import (
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/icon"
	"github.com/vidstrip/vidstrip/key"
)

// choices lists the accepted values of enumerated string keys.
var choices = map[string]func() []any{
	key.IconsVariant: func() []any {
		return lo.ToAnySlice(icon.AvailableVariants())
	},
	key.LogsLevel: func() []any {
		return lo.Map(logrus.AllLevels, func(l logrus.Level, _ int) any {
			return l.String()
		})
	},
}

// Schema describes vidstrip.toml as a JSON schema.
// Dotted keys become nested tables.
func Schema() *jsonschema.Schema {
	root := table()
	root.Version = jsonschema.Version
	root.Title = constant.Vidstrip + ".toml"

	keys := lo.Keys(Default)
	sort.Strings(keys)

	for _, k := range keys {
		node := root
		path := strings.Split(k, ".")

		for _, section := range path[:len(path)-1] {
			child, ok := node.Properties.Get(section)
			if !ok {
				child = table()
				node.Properties.Set(section, child)
			}
			node = child
		}

		field := Default[k]
		node.Properties.Set(path[len(path)-1], field.schema())
	}

	return root
}

func table() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

func (f *Field) schema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Description: f.Description,
		Default:     f.Value,
	}

	switch f.Value.(type) {
	case string:
		s.Type = "string"
	case int:
		s.Type = "integer"
	case bool:
		s.Type = "boolean"
	case []string:
		s.Type = "array"
		s.Items = &jsonschema.Schema{Type: "string"}
	}

	if values, ok := choices[f.Key]; ok {
		s.Enum = values()
	}

	return s
}
