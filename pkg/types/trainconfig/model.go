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

package trainconfig

type Model int

const (
	UnknownModel Model = iota
	RegressionNetModel
	DenseNetModel
)

var _models = []string{
	"unknown",
	"regressionnet",
	"densenet",
}

func ModelFromString(s string) Model {
	for i := 0; i < len(_models); i++ {
		if s == _models[i] {
			return Model(i)
		}
	}
	return UnknownModel
}

func ModelStrings() []string {
	return _models[1:]
}

func (t Model) String() string {
	return _models[t]
}

// MarshalText satisfies TextMarshaler
func (t Model) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *Model) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(_models); i++ {
		if enum == _models[i] {
			*t = Model(i)
			return nil
		}
	}

	*t = UnknownModel
	return nil
}
