// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package errorchain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/lexis/internal/x/errorchain"
)

var (
	errTest1 = errors.New("test error 1")
	errTest2 = errors.New("test error 2")
	errTest3 = errors.New("test error 3")
)

type testError struct{ code int }

func (e *testError) Error() string { return "test error" }

func TestErrorChainNew(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.New(errTest1)

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, errTest1)
	assert.Equal(t, errTest1.Error(), err.Error())
	assert.NotErrorIs(t, err, errTest2)
}

func TestErrorChainNewWithMessage(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.NewWithMessage(errTest1, "foobar")

	// THEN
	require.ErrorIs(t, err, errTest1)
	assert.Equal(t, errTest1.Error()+": foobar", err.Error())
}

func TestErrorChainNewWithFormattedMessage(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.NewWithMessagef(errTest1, "%s%s", "foo", "bar")

	// THEN
	require.ErrorIs(t, err, errTest1)
	assert.Equal(t, errTest1.Error()+": foobar", err.Error())
	assert.Equal(t, err.Error(), err.String())
}

func TestErrorChainWithCauses(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2).CausedBy(errTest3)

	// THEN
	require.ErrorIs(t, err, errTest1)
	require.ErrorIs(t, err, errTest2)
	require.ErrorIs(t, err, errTest3)
	assert.Equal(t, "test error 1: foo: test error 2: test error 3", err.Error())
	assert.Equal(t, []error{errTest1, errTest2, errTest3}, err.Errors())
}

func TestErrorChainAs(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := errorchain.New(errTest1).CausedBy(&testError{code: 42})

	// WHEN
	var target *testError

	ok := errors.As(err, &target)

	// THEN
	require.True(t, ok)
	assert.Equal(t, 42, target.code)
}

func TestErrorChainMarshalJSON(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		err    *errorchain.ErrorChain
		expRes string
	}{
		{
			uc:     "without causes",
			err:    errorchain.NewWithMessage(errTest1, "foo"),
			expRes: `{"code":"testError1","message":"foo"}`,
		},
		{
			uc:     "with causes",
			err:    errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2),
			expRes: `{"code":"testError1","message":"foo","causes":["test error 2"]}`,
		},
		{
			uc:     "without message",
			err:    errorchain.New(errTest1),
			expRes: `{"code":"testError1"}`,
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// WHEN
			res, err := tc.err.MarshalJSON()

			// THEN
			require.NoError(t, err)
			assert.JSONEq(t, tc.expRes, string(res))
		})
	}
}
