package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"parcel_backend/internal/feature/parcels/domain/entity"
)

func ptr(s string) *string { return &s }

// TestClassify は説明文キーワードの優先順位どおりに分類されることを検証します。
func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description *string
		want        Category
	}{
		{"delivered wins over customs", ptr("Package delivered to customs warehouse"), Delivered},
		{"nil description", nil, Unknown},
		{"empty description", ptr(""), Unknown},
		{"in transit", ptr("In transit to hub"), InTransit},
		{"customs only", ptr("Held at Customs"), Customs},
		{"customs before transit", ptr("Customs transit check"), Customs},
		{"case insensitive", ptr("DELIVERED"), Delivered},
		{"no keyword", ptr("Pending"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.description))
		})
	}
}

func TestClassifyParcel_CodeTakesPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		code        *string
		description *string
		want        Category
	}{
		{"delivered code without text", ptr(DeliveredCode), ptr("Arrived at facility"), Delivered},
		{"delivered code overrides customs", ptr("501"), ptr("Held at customs"), Delivered},
		{"delivered code, nil description", ptr("501"), nil, Delivered},
		{"other code falls back to text", ptr("300"), ptr("In transit"), InTransit},
		{"nil code", nil, ptr("customs"), Customs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyParcel(tt.code, tt.description))
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	parcels := []entity.Parcel{
		{Status: ptr("501")},
		{StatusDescription: ptr("Delivered to recipient")},
		{StatusDescription: ptr("Customs clearance")},
		{StatusDescription: ptr("In transit")},
		{StatusDescription: ptr("Pending")},
		{},
	}

	got := Summarize(parcels)

	assert.Equal(t, Summary{Total: 6, Delivered: 2, Customs: 1, InTransit: 1, Unknown: 2}, got)
	assert.Equal(t, got.Total, got.Delivered+got.Customs+got.InTransit+got.Unknown)
	assert.Equal(t, got, Summarize(parcels), "deterministic")
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Summary{}, Summarize(nil))
}
