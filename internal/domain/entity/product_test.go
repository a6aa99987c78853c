package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_OptionLookups(t *testing.T) {
	p := &Product{
		MaterialOptions: []MaterialOption{{ID: "pla", Name: "PLA"}},
		ColorOptions:    []ColorOption{{ID: "white", Name: "White"}},
		SizeOptions:     []SizeOption{{ID: "small", Name: "Small"}},
	}

	material, ok := p.MaterialByID("pla")
	assert.True(t, ok)
	assert.Equal(t, "PLA", material.Name)

	_, ok = p.MaterialByID("resin")
	assert.False(t, ok)

	_, ok = p.ColorByID("white")
	assert.True(t, ok)
	_, ok = p.ColorByID("black")
	assert.False(t, ok)

	_, ok = p.SizeByID("small")
	assert.True(t, ok)
	_, ok = p.SizeByID("large")
	assert.False(t, ok)
}

func TestProduct_FormatLeadTime(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     string
	}{
		{"range", 3, 5, "3–5 business days"},
		{"single day", 1, 1, "1 business day"},
		{"equal bounds", 4, 4, "4 business days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{LeadTimeDaysMin: tt.min, LeadTimeDaysMax: tt.max}
			assert.Equal(t, tt.want, p.FormatLeadTime())
		})
	}
}

func TestProduct_HasTag(t *testing.T) {
	p := &Product{Tags: []string{"lamp", "gift"}}

	assert.True(t, p.HasTag("gift"))
	assert.False(t, p.HasTag("vase"))
}
