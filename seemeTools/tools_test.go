package seemeTools

import (
	"strconv"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{src: "36201234567", want: "36201234567"},
		{src: "+36 20 123-4567", want: "36201234567"},
		{src: "06201234567", want: "36201234567"},
		{src: "0036201234567", want: "36201234567"},
		{src: " (06) 20/123-4567 ", want: "36201234567"},
		{src: "+", want: "+"},
	}

	for cI, c := range cases {
		t.Run(strconv.Itoa(cI+1), func(t *testing.T) {
			require.Equal(t, c.want, NormalizePhone(c.src))
		})
	}
}

func TestPtrHelpers(t *testing.T) {
	require.Nil(t, NewPtrOrNil(""))
	require.Equal(t, "x", *NewPtrOrNil("x"))
	require.Equal(t, "v", *NewPtr("v"))
}

func TestFmtFloat(t *testing.T) {
	require.Equal(t, "12,50", FmtFloat(12.5, 2))
}

func TestSetViperDefaultsFromObj(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetViperDefaultsFromObj(struct {
		Format  string `mapstructure:"format"`
		Workers int    `mapstructure:"workers,omitempty"`
		skipped string
		NoTag   string
	}{Format: "json", Workers: 4})

	require.Equal(t, "json", viper.GetString("format"))
	require.Equal(t, 4, viper.GetInt("workers"))
	require.False(t, viper.IsSet("notag"))
}
