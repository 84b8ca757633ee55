package scene

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connorcarpenter/morph"
)

func TestParseUnits(t *testing.T) {
	type tc struct {
		in      string
		want    morph.Units
		wantErr bool
	}

	tests := map[string]tc{
		"empty":         {in: "", want: morph.Auto()},
		"auto":          {in: "auto", want: morph.Auto()},
		"auto any case": {in: "Auto", want: morph.Auto()},
		"pixels":        {in: "12px", want: morph.Pixels(12)},
		"bare number":   {in: "12", want: morph.Pixels(12)},
		"fraction":      {in: "1.5px", want: morph.Pixels(1.5)},
		"percent":       {in: "50%", want: morph.Percent(50)},
		"stretch":       {in: "2s", want: morph.Stretch(2)},
		"spaces":        {in: " 3 px ", want: morph.Pixels(3)},
		"negative":      {in: "-4px", want: morph.Pixels(-4)},
		"garbage":       {in: "wide", wantErr: true},
		"unit only":     {in: "px", wantErr: true},
		"bad suffix":    {in: "12em", wantErr: true},
		"nan":           {in: "nan", wantErr: true},
		"infinite":      {in: "inf%", wantErr: true},
		"overflow":      {in: "1e39px", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseUnits(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnits)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLength_UnmarshalTOML(t *testing.T) {
	var doc struct {
		A Length `toml:"a"`
		B Length `toml:"b"`
		C Length `toml:"c"`
		D Length `toml:"d"`
	}
	_, err := toml.Decode("a = \"50%\"\nb = 12\nc = 2.5\n", &doc)
	require.NoError(t, err)

	assert.Equal(t, L("50%"), doc.A)
	assert.Equal(t, L("12"), doc.B)
	assert.Equal(t, L("2.5"), doc.C)
	assert.False(t, doc.D.IsSet())

	_, err = toml.Decode("a = true\n", &doc)
	assert.Error(t, err)
}
