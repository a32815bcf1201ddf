package handler

import (
	"strings"
	"testing"
)

func TestValidator_Messages(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		req  any
		want string
	}{
		{
			name: "missing tracking number",
			req:  &trackingRequest{},
			want: "trackingnumber is required",
		},
		{
			name: "short tracking number",
			req:  &trackingRequest{TrackingNumber: "x"},
			want: "trackingnumber must be at least 5 characters",
		},
		{
			name: "unknown document kind",
			req:  &documentRequest{TrackingNumber: "GW123456", Kind: "receipt"},
			want: "kind must be one of: details invoice",
		},
		{
			name: "unknown share surface",
			req:  &shareRequest{TrackingNumber: "GW123456", Surface: "carrier-pigeon"},
			want: "surface must be one of: auto native clipboard",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req)
			if err == nil {
				t.Fatal("want a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("message: want %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestValidator_AcceptsValidRequests(t *testing.T) {
	v := NewValidator()

	valid := []any{
		&trackingRequest{TrackingNumber: "GW123456"},
		&documentRequest{TrackingNumber: "GW123456", Kind: "invoice"},
		&shareRequest{TrackingNumber: "GW123456"},
		&shareRequest{TrackingNumber: "GW123456", Surface: "clipboard"},
	}
	for _, req := range valid {
		if err := v.Validate(req); err != nil {
			t.Errorf("%T: unexpected validation error: %v", req, err)
		}
	}
}
