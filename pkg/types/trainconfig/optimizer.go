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

type Optimizer int

const (
	UnknownOptimizer Optimizer = iota
	SGDOptimizer
	AdamOptimizer
)

var _optimizers = []string{
	"unknown",
	"SGD",
	"Adam",
}

func OptimizerFromString(s string) Optimizer {
	for i := 0; i < len(_optimizers); i++ {
		if s == _optimizers[i] {
			return Optimizer(i)
		}
	}
	return UnknownOptimizer
}

func OptimizerStrings() []string {
	return _optimizers[1:]
}

func (t Optimizer) String() string {
	return _optimizers[t]
}

// MarshalText satisfies TextMarshaler
func (t Optimizer) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *Optimizer) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(_optimizers); i++ {
		if enum == _optimizers[i] {
			*t = Optimizer(i)
			return nil
		}
	}

	*t = UnknownOptimizer
	return nil
}
