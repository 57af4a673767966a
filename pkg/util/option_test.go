// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Option_00(t *testing.T) {
	some := Some(3)
	none := None[int]()
	//
	assert.True(t, some.HasValue())
	assert.False(t, some.IsEmpty())
	assert.Equal(t, 3, some.Unwrap())
	assert.True(t, none.IsEmpty())
	assert.Equal(t, 7, none.UnwrapOr(7))
	assert.Panics(t, func() { none.Unwrap() })
}

func Test_Option_01(t *testing.T) {
	n, ok := Map(Some("abc"), func(s string) int { return len(s) }).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.True(t, Map(None[string](), func(s string) int { return len(s) }).IsEmpty())
}
