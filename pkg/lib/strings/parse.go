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

package strings

import (
	"math"
	"strconv"
	"strings"
)

func ParseBool(valStr string) (bool, bool) {
	casted, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, false
	}
	return casted, true
}

func ParseInt(valStr string) (int, bool) {
	casted, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return int(casted), true
}

func ParseInt64(valStr string) (int64, bool) {
	casted, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return casted, true
}

// ParseFloat64 accepts the bare infinity literals used in experiment
// config files ("inf", "-inf") in addition to what strconv handles.
func ParseFloat64(valStr string) (float64, bool) {
	switch strings.ToLower(strings.TrimSpace(valStr)) {
	case "inf", "+inf", ".inf", "+.inf", "infinity":
		return math.Inf(1), true
	case "-inf", "-.inf", "-infinity":
		return math.Inf(-1), true
	}
	casted, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, false
	}
	return casted, true
}
