package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/clibind/argspec"
	"github.com/vk/clibind/internal/fsutil"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "command", LabelNames: []string{"name"}},
	},
}

var commandSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "param", LabelNames: []string{"name"}},
	},
}

var paramSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "kind", Required: true},
		{Name: "default"},
		{Name: "description"},
	},
}

// paramKinds maps the manifest spelling of a kind to its model value.
var paramKinds = map[string]argspec.ParamKind{
	"positional":          argspec.PositionalOnly,
	"positional_or_named": argspec.Ambiguous,
	"named":               argspec.NamedOnly,
	"variadic_positional": argspec.VariadicPositional,
	"variadic_named":      argspec.VariadicNamed,
}

// LoadFile parses a single manifest file.
func LoadFile(path string) (*Manifest, error) {
	m := newManifest()
	if err := m.loadFile(hclparse.NewParser(), path); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadDir discovers every .hcl file under dir (recursively, in lexical walk
// order) and merges their commands into one manifest. A command name
// declared twice, within or across files, is an error.
func LoadDir(dir string) (*Manifest, error) {
	paths, err := fsutil.FindByExtension(dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to scan manifest directory %s: %w", dir, err)
	}

	m := newManifest()
	parser := hclparse.NewParser()
	for _, path := range paths {
		if err := m.loadFile(parser, path); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Manifest) loadFile(parser *hclparse.Parser, path string) error {
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse manifest %s: %s", path, diags.Error())
	}

	content, diags := file.Body.Content(rootSchema)
	for _, block := range content.Blocks.OfType("command") {
		cmd, cmdDiags := decodeCommand(block)
		diags = append(diags, cmdDiags...)
		if cmdDiags.HasErrors() {
			continue
		}

		if _, exists := m.commands[cmd.Name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate command definition",
				Detail:   fmt.Sprintf("A command named '%s' has already been defined.", cmd.Name),
				Subject:  &block.DefRange,
			})
			continue
		}
		m.commands[cmd.Name] = cmd
		m.order = append(m.order, cmd.Name)
	}

	if diags.HasErrors() {
		return fmt.Errorf("invalid manifest %s: %s", path, diags.Error())
	}
	return nil
}

// decodeCommand turns one `command` block into a Command with a validated
// parameter spec.
func decodeCommand(block *hcl.Block) (*Command, hcl.Diagnostics) {
	content, diags := block.Body.Content(commandSchema)
	name := block.Labels[0]

	var description string
	if attr, ok := content.Attributes["description"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &description)...)
	}

	var params []argspec.Param
	paramDocs := make(map[string]string)
	seen := make(map[string]bool)

	for _, pb := range content.Blocks.OfType("param") {
		paramName := pb.Labels[0]
		if seen[paramName] {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate parameter definition",
				Detail:   fmt.Sprintf("A parameter named '%s' has already been defined for command '%s'.", paramName, name),
				Subject:  &pb.DefRange,
			})
			continue
		}
		seen[paramName] = true

		param, doc, paramDiags := decodeParam(pb)
		diags = append(diags, paramDiags...)
		if paramDiags.HasErrors() {
			continue
		}
		params = append(params, param)
		if doc != "" {
			paramDocs[param.Name] = doc
		}
	}

	if diags.HasErrors() {
		return nil, diags
	}

	spec, err := argspec.New(params)
	if err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid parameter list",
			Detail:   fmt.Sprintf("Command '%s' declares an invalid parameter list: %s.", name, err),
			Subject:  &block.DefRange,
		})
		return nil, diags
	}

	return &Command{
		Name:        name,
		Description: description,
		spec:        spec,
		paramDocs:   paramDocs,
	}, diags
}

// decodeParam turns one `param` block into an argspec.Param plus its
// optional description.
func decodeParam(block *hcl.Block) (argspec.Param, string, hcl.Diagnostics) {
	param := argspec.Param{Name: block.Labels[0]}

	content, diags := block.Body.Content(paramSchema)
	if diags.HasErrors() {
		return param, "", diags
	}

	var kindStr string
	kindDiags := gohcl.DecodeExpression(content.Attributes["kind"].Expr, nil, &kindStr)
	diags = append(diags, kindDiags...)
	if kindDiags.HasErrors() {
		return param, "", diags
	}

	kind, ok := paramKinds[kindStr]
	if !ok {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unknown parameter kind",
			Detail: fmt.Sprintf("The kind '%s' is not recognized. Valid kinds are: "+
				"positional, positional_or_named, named, variadic_positional, variadic_named.", kindStr),
			Subject: content.Attributes["kind"].Expr.Range().Ptr(),
		})
		return param, "", diags
	}
	param.Kind = kind

	if attr, ok := content.Attributes["default"]; ok {
		// Defaults must be literal values, so a nil EvalContext is used.
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			return param, "", diags
		}
		param.Default = &val
	}

	var description string
	if attr, ok := content.Attributes["description"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &description)...)
	}

	return param, description, diags
}
