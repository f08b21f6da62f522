// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"strings"
	"testing"
)

type testForm struct {
	Name    string `validate:"required,max=5"`
	Company string `validate:"omitempty,max=3"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name        string
		form        testForm
		expectedErr string
	}{
		{name: "valid", form: testForm{Name: "Jane"}},
		{name: "max counts characters not bytes", form: testForm{Name: "ééééé"}},
		{name: "missing name", form: testForm{}, expectedErr: "name is required"},
		{name: "name too long", form: testForm{Name: "Janette"}, expectedErr: "name must be at most 5 characters"},
		{
			name:        "every failing field is reported",
			form:        testForm{Company: strings.Repeat("a", 4)},
			expectedErr: "name is required; company must be at most 3 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.form)

			if tt.expectedErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil || err.Error() != tt.expectedErr {
				t.Errorf("expected error %q, got %v", tt.expectedErr, err)
			}
		})
	}
}
