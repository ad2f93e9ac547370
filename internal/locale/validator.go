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

package locale

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// SupportedLocaleValidator implements the "supported_locale" validation tag.
type SupportedLocaleValidator struct{}

func (SupportedLocaleValidator) Tag() string { return "supported_locale" }

func (SupportedLocaleValidator) Validate(fl validator.FieldLevel) bool {
	return IsSupported(fl.Field().String())
}

func (SupportedLocaleValidator) MessageTemplate() string { return "{0} must be one of [{1}]" }

func (SupportedLocaleValidator) Translate(ut ut.Translator, fe validator.FieldError) string {
	msg, _ := ut.T(fe.Tag(), fe.Field(), strings.Join(Supported(), " "))

	return msg
}
