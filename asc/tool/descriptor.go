package tool

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/viant/asc-mcp/internal/conv"
)

// QueryRule describes how one argument is translated into a query parameter.
type QueryRule struct {
	Arg   string   // argument name in the tool input
	Param string   // outgoing query parameter name
	Join  bool     // list-valued argument, comma-joined in input order
	Bool  bool     // boolean argument, passed through as literal true/false
	Max   int      // clamp ceiling for numeric arguments
	Def   int      // emitted when a numeric argument is absent or below 1
	Enum  []string // permitted values; applies per element for Join rules
}

// Fixed is a query parameter sent on every request regardless of arguments.
type Fixed struct {
	Param string
	Value string
}

// Envelope describes the JSON:API body of a write tool: one attribute copied
// from an argument plus one to-one relationship referencing another resource.
type Envelope struct {
	Type         string // resource type of the created object
	Attribute    string // attribute name inside data.attributes
	AttributeArg string // argument supplying the attribute value
	Relationship string // relationship name inside data.relationships
	RelatedType  string // resource type of the related object
	RelatedArg   string // argument supplying the related resource id
}

// Descriptor is one row of the tool registry. Descriptors are immutable
// configuration; the generic executor never branches on tool identity.
type Descriptor struct {
	Name        string
	Description string
	Method      string
	Path        string // template with at most one {placeholder}
	PathArg     string // argument substituted into the template
	Required    []string
	Query       []QueryRule
	Fixed       []Fixed
	Body        *Envelope
	Confirm     string       // printf format for empty-body success, keyed on PathArg
	Args        reflect.Type // typed argument record, source of the input schema
}

// ArgumentError reports a required or malformed tool argument. It is
// detected before any network activity.
type ArgumentError struct {
	Tool   string
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for %v: %v: %v", e.Tool, e.Arg, e.Reason)
}

// Validate checks required arguments and coerces the raw map into the
// descriptor's typed argument record. It never touches the network.
func (d *Descriptor) Validate(args map[string]interface{}) error {
	for _, name := range d.Required {
		value, ok := args[name]
		if !ok || value == nil {
			return &ArgumentError{Tool: d.Name, Arg: name, Reason: "required argument missing"}
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			return &ArgumentError{Tool: d.Name, Arg: name, Reason: "required argument empty"}
		}
	}
	record := reflect.New(d.Args).Interface()
	if err := conv.Convert(args, record); err != nil {
		return &ArgumentError{Tool: d.Name, Arg: "arguments", Reason: err.Error()}
	}
	return nil
}

// BuildPath substitutes the path argument into the URL template.
func (d *Descriptor) BuildPath(args map[string]interface{}) (string, error) {
	if d.PathArg == "" {
		return d.Path, nil
	}
	value, err := asString(args[d.PathArg])
	if err != nil {
		return "", &ArgumentError{Tool: d.Name, Arg: d.PathArg, Reason: err.Error()}
	}
	return strings.Replace(d.Path, "{"+d.PathArg+"}", url.PathEscape(value), 1), nil
}

// BuildQuery translates arguments into query parameters following the
// descriptor rules: comma-joined lists, literal booleans, clamped and
// defaulted numeric limits, fixed parameters appended last.
func (d *Descriptor) BuildQuery(args map[string]interface{}) (url.Values, error) {
	values := url.Values{}
	for i := range d.Query {
		rule := &d.Query[i]
		raw, ok := args[rule.Arg]
		switch {
		case rule.Def > 0:
			n := rule.Def
			if ok {
				supplied, err := asInt(raw)
				if err != nil {
					return nil, &ArgumentError{Tool: d.Name, Arg: rule.Arg, Reason: err.Error()}
				}
				if supplied >= 1 {
					n = supplied
				}
			}
			if rule.Max > 0 && n > rule.Max {
				n = rule.Max
			}
			values.Set(rule.Param, strconv.Itoa(n))
		case !ok || raw == nil:
			continue
		case rule.Join:
			elements, err := asStrings(raw)
			if err != nil {
				return nil, &ArgumentError{Tool: d.Name, Arg: rule.Arg, Reason: err.Error()}
			}
			if err := checkEnum(rule.Enum, elements...); err != nil {
				return nil, &ArgumentError{Tool: d.Name, Arg: rule.Arg, Reason: err.Error()}
			}
			values.Set(rule.Param, strings.Join(elements, ","))
		case rule.Bool:
			flag, err := asBool(raw)
			if err != nil {
				return nil, &ArgumentError{Tool: d.Name, Arg: rule.Arg, Reason: err.Error()}
			}
			values.Set(rule.Param, strconv.FormatBool(flag))
		default:
			value, err := asString(raw)
			if err != nil {
				return nil, &ArgumentError{Tool: d.Name, Arg: rule.Arg, Reason: err.Error()}
			}
			if err := checkEnum(rule.Enum, value); err != nil {
				return nil, &ArgumentError{Tool: d.Name, Arg: rule.Arg, Reason: err.Error()}
			}
			values.Set(rule.Param, value)
		}
	}
	for _, fixed := range d.Fixed {
		values.Set(fixed.Param, fixed.Value)
	}
	return values, nil
}

// BuildBody marshals the JSON:API envelope for write tools. Tools without a
// body descriptor return nil.
func (d *Descriptor) BuildBody(args map[string]interface{}) ([]byte, error) {
	if d.Body == nil {
		return nil, nil
	}
	attribute, err := asString(args[d.Body.AttributeArg])
	if err != nil {
		return nil, &ArgumentError{Tool: d.Name, Arg: d.Body.AttributeArg, Reason: err.Error()}
	}
	related, err := asString(args[d.Body.RelatedArg])
	if err != nil {
		return nil, &ArgumentError{Tool: d.Name, Arg: d.Body.RelatedArg, Reason: err.Error()}
	}
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"type": d.Body.Type,
			"attributes": map[string]interface{}{
				d.Body.Attribute: attribute,
			},
			"relationships": map[string]interface{}{
				d.Body.Relationship: map[string]interface{}{
					"data": map[string]interface{}{
						"id":   related,
						"type": d.Body.RelatedType,
					},
				},
			},
		},
	}
	return json.Marshal(payload)
}

func checkEnum(enum []string, values ...string) error {
	if len(enum) == 0 {
		return nil
	}
	for _, value := range values {
		matched := false
		for _, permitted := range enum {
			if value == permitted {
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("value %q not one of %v", value, strings.Join(enum, ", "))
		}
	}
	return nil
}
