package seeme

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"github.com/andrewboy/see-me/seemeErrs"
	"github.com/andrewboy/see-me/seemeTools"
)

type ConfigSt struct {
	ApiKey string
	// Format of the gateway response, FormatJson when empty.
	Format string
	// Method is kept for parity with older clients, both values issue the same GET request.
	Method string
	// LogFile is an append-only diagnostic log, disabled when empty.
	LogFile string
	BaseUrl string
	Timeout time.Duration
}

func (c ConfigSt) withDefaults() ConfigSt {
	if c.Format == "" {
		c.Format = FormatJson
	}
	if c.Method == "" {
		c.Method = MethodCurl
	}
	if c.BaseUrl == "" {
		c.BaseUrl = ApiUrl
	}
	return c
}

func (c ConfigSt) validate() error {
	if !ValidateApiKey(c.ApiKey) {
		return seemeErrs.NewInvalidConfig("Invalid API key", CodeInvalidApiKey)
	}

	if !seemeTools.SliceHasValue(validFormats, c.Format) {
		return seemeErrs.NewInvalidConfig(
			"Invalid format. Format have to be in ["+strings.Join(validFormats, ", ")+"]",
			CodeInvalidType,
		)
	}

	if !seemeTools.SliceHasValue(validMethods, c.Method) {
		return seemeErrs.NewInvalidConfig(
			"Invalid method. Method have to be in ["+strings.Join(validMethods, ", ")+"]",
			CodeInvalidType,
		)
	}

	return nil
}

// ValidateApiKey checks that the last 4 characters of key equal the first
// 4 hex characters of the md5 of the rest of the key.
func ValidateApiKey(key string) bool {
	if len(key) <= apiKeyChecksumLen {
		return false
	}

	body := key[:len(key)-apiKeyChecksumLen]

	return ApiKeyChecksum(body) == key[len(key)-apiKeyChecksumLen:]
}

func ApiKeyChecksum(body string) string {
	sum := md5.Sum([]byte(body))
	return hex.EncodeToString(sum[:])[:apiKeyChecksumLen]
}
