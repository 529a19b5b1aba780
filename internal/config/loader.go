package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/subosito/gotenv"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gopkg.in/yaml.v2"

	"nifty-filter/internal/errors"
)

// LoadFile reads a seed file of named inputs. The format is chosen by
// extension: .hcl, .yaml/.yml, anything else is dotenv.
func LoadFile(path string) (Inputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Inputs{}, errors.Wrapf(err, errors.KindIO, "failed to read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return LoadHCL(data, path)
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return LoadDotenv(data)
	}
}

// LoadDotenv parses KEY=VALUE lines. Names are kept as written.
func LoadDotenv(data []byte) (Inputs, error) {
	env, err := gotenv.StrictParse(bytes.NewReader(data))
	if err != nil {
		return Inputs{}, errors.Wrap(err, errors.KindValidation, "invalid env file")
	}
	return NewInputs(env), nil
}

// LoadHCL reads top-level attributes, e.g. `tcp_accept_lan = [22, 80]`.
// Attribute names are upper-cased; lists are joined with ", ".
func LoadHCL(data []byte, filename string) (Inputs, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Inputs{}, errors.Wrap(diags, errors.KindValidation, "invalid HCL")
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return Inputs{}, errors.Wrap(diags, errors.KindValidation, "invalid HCL")
	}

	values := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return Inputs{}, errors.Wrapf(diags, errors.KindValidation, "invalid HCL attribute %s", name)
		}
		s, err := ctyString(val)
		if err != nil {
			return Inputs{}, errors.Wrapf(err, errors.KindValidation, "invalid HCL attribute %s", name)
		}
		values[strings.ToUpper(name)] = s
	}
	return NewInputs(values), nil
}

func ctyString(v cty.Value) (string, error) {
	if v.IsNull() || !v.IsWhollyKnown() {
		return "", fmt.Errorf("value must be known and not null")
	}

	ty := v.Type()
	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			s, err := ctyString(elem)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, listSeparator), nil
	}

	s, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
	return s.AsString(), nil
}

// LoadYAML reads a flat mapping, e.g. `TCP_ACCEPT_LAN: [22, 80]`.
// Keys are upper-cased; lists are joined with ", ".
func LoadYAML(data []byte) (Inputs, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Inputs{}, errors.Wrap(err, errors.KindValidation, "invalid YAML")
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string]string, len(raw))
	for _, k := range keys {
		s, err := yamlString(raw[k])
		if err != nil {
			return Inputs{}, errors.Wrapf(err, errors.KindValidation, "invalid YAML value for %s", k)
		}
		values[strings.ToUpper(k)] = s
	}
	return NewInputs(values), nil
}

func yamlString(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t), nil
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, elem := range t {
			s, err := yamlString(elem)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, listSeparator), nil
	}
	return "", fmt.Errorf("unsupported value type %T", v)
}
