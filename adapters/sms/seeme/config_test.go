package seeme

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewboy/see-me/seemeErrs"
)

func flipChar(c byte) byte {
	if c == 'a' {
		return 'b'
	}
	return 'a'
}

func TestValidateApiKey(t *testing.T) {
	for _, body := range []string{"x", "0123456789abcdef", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6", "árvíztűrő tükörfúrógép"} {
		checksum := ApiKeyChecksum(body)
		require.Len(t, checksum, 4)
		require.True(t, ValidateApiKey(body+checksum), body)

		for i := 0; i < len(checksum); i++ {
			bad := []byte(checksum)
			bad[i] = flipChar(bad[i])
			require.False(t, ValidateApiKey(body+string(bad)), body+string(bad))
		}
	}

	// md5("abc") = 900150983cd24fb0d6963f7d28e17f72
	require.True(t, ValidateApiKey("abc9001"))
	require.False(t, ValidateApiKey("abc9001 "))
	require.False(t, ValidateApiKey("abc9001"[:4]))
	require.False(t, ValidateApiKey(""))
}

func TestConfigValidate(t *testing.T) {
	key := testApiKey()

	cases := []struct {
		cfg      ConfigSt
		wantCode int
	}{
		{cfg: ConfigSt{ApiKey: key}},
		{cfg: ConfigSt{ApiKey: key, Format: FormatXml, Method: MethodFileGetContents}},
		{cfg: ConfigSt{ApiKey: key, Format: FormatString, Method: MethodCurl}},
		{cfg: ConfigSt{ApiKey: "invalid-key"}, wantCode: CodeInvalidApiKey},
		{cfg: ConfigSt{}, wantCode: CodeInvalidApiKey},
		{cfg: ConfigSt{ApiKey: key, Format: "yaml"}, wantCode: CodeInvalidType},
		{cfg: ConfigSt{ApiKey: key, Format: "JSON"}, wantCode: CodeInvalidType},
		{cfg: ConfigSt{ApiKey: key, Method: "socket"}, wantCode: CodeInvalidType},
	}

	for cI, c := range cases {
		t.Run(strconv.Itoa(cI+1), func(t *testing.T) {
			err := c.cfg.withDefaults().validate()
			if c.wantCode == 0 {
				require.Nil(t, err)
				return
			}

			require.ErrorIs(t, err, seemeErrs.ErrInvalidConfig)

			var cErr *seemeErrs.Error
			require.ErrorAs(t, err, &cErr)
			require.Equal(t, c.wantCode, cErr.Code)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := ConfigSt{ApiKey: testApiKey()}.withDefaults()

	require.Equal(t, FormatJson, cfg.Format)
	require.Equal(t, MethodCurl, cfg.Method)
	require.Equal(t, ApiUrl, cfg.BaseUrl)
	require.Empty(t, cfg.LogFile)
}
