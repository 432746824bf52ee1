package conv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert coerces the input value into the type pointed to by outPtr.
//
// Fast-path: when input is already assignable to the destination element
// type it is copied directly. Otherwise Convert falls back to a JSON
// marshal/unmarshal round-trip, which is how raw tool argument maps become
// typed argument records. Decode failures are returned verbatim so that the
// caller can surface which field was malformed.
//
// A nil input leaves outPtr's value untouched (zero value).
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}

	if in == nil {
		return nil // leave zero value
	}

	inVal := reflect.ValueOf(in)
	if inVal.Type().AssignableTo(v.Elem().Type()) {
		v.Elem().Set(inVal)
		return nil
	}

	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	return decoder.Decode(outPtr)
}

// ToMap converts an arbitrary input value into a map[string]interface{}
// using the same strategy as Convert. Used to coerce CLI-supplied argument
// payloads before dispatch.
func ToMap(in any) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := Convert(in, &m); err != nil {
		return nil, err
	}
	return m, nil
}
