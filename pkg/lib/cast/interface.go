/*
Copyright 2022 TrainCfg Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cast

import (
	s "github.com/traincfg/traincfg/pkg/lib/strings"
)

func InterfaceToInt(in interface{}) (int, bool) {
	switch casted := in.(type) {
	case int:
		return casted, true
	case int8:
		return int(casted), true
	case int16:
		return int(casted), true
	case int32:
		return int(casted), true
	case int64:
		return int(casted), true
	case uint8:
		return int(casted), true
	case uint16:
		return int(casted), true
	case uint32:
		return int(casted), true
	}
	return 0, false
}

func InterfaceToInt64(in interface{}) (int64, bool) {
	casted, ok := InterfaceToInt(in)
	if !ok {
		return 0, false
	}
	return int64(casted), true
}

// InterfaceToFloat64 also accepts integer-typed values, and the bare
// "inf"/"-inf" string literals that the YAML resolver leaves untyped
// (go-yaml only resolves ".inf").
func InterfaceToFloat64(in interface{}) (float64, bool) {
	switch casted := in.(type) {
	case float64:
		return casted, true
	case float32:
		return float64(casted), true
	case string:
		return s.ParseFloat64(casted)
	}
	if casted, ok := InterfaceToInt64(in); ok {
		return float64(casted), true
	}
	return 0, false
}

func InterfaceToStr(in interface{}) (string, bool) {
	casted, ok := in.(string)
	return casted, ok
}

func InterfaceToBool(in interface{}) (bool, bool) {
	casted, ok := in.(bool)
	return casted, ok
}

func InterfaceToInterfaceSlice(in interface{}) ([]interface{}, bool) {
	if in == nil {
		return nil, true
	}
	casted, ok := in.([]interface{})
	return casted, ok
}

func InterfaceToIntSlice(in interface{}) ([]int, bool) {
	interSlice, ok := InterfaceToInterfaceSlice(in)
	if !ok {
		return nil, false
	}
	if interSlice == nil {
		return nil, true
	}
	casted := make([]int, len(interSlice))
	for i, inter := range interSlice {
		castedVal, ok := InterfaceToInt(inter)
		if !ok {
			return nil, false
		}
		casted[i] = castedVal
	}
	return casted, true
}

func InterfaceToStrSlice(in interface{}) ([]string, bool) {
	interSlice, ok := InterfaceToInterfaceSlice(in)
	if !ok {
		return nil, false
	}
	if interSlice == nil {
		return nil, true
	}
	casted := make([]string, len(interSlice))
	for i, inter := range interSlice {
		castedVal, ok := InterfaceToStr(inter)
		if !ok {
			return nil, false
		}
		casted[i] = castedVal
	}
	return casted, true
}

func InterfaceToStrInterfaceMap(in interface{}) (map[string]interface{}, bool) {
	if in == nil {
		return nil, true
	}

	if casted, ok := in.(map[string]interface{}); ok {
		return casted, true
	}

	interMap, ok := in.(map[interface{}]interface{})
	if !ok {
		return nil, false
	}

	casted := make(map[string]interface{}, len(interMap))
	for key, value := range interMap {
		keyStr, ok := key.(string)
		if !ok {
			return nil, false
		}
		casted[keyStr] = value
	}
	return casted, true
}
