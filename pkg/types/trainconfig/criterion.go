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

type Criterion int

const (
	UnknownCriterion Criterion = iota
	MSECriterion
	CrossEntropyCriterion
)

var _criterions = []string{
	"unknown",
	"mse",
	"cross_entropy",
}

func CriterionFromString(s string) Criterion {
	for i := 0; i < len(_criterions); i++ {
		if s == _criterions[i] {
			return Criterion(i)
		}
	}
	return UnknownCriterion
}

func CriterionStrings() []string {
	return _criterions[1:]
}

func (t Criterion) String() string {
	return _criterions[t]
}

// MarshalText satisfies TextMarshaler
func (t Criterion) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *Criterion) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(_criterions); i++ {
		if enum == _criterions[i] {
			*t = Criterion(i)
			return nil
		}
	}

	*t = UnknownCriterion
	return nil
}
