package seeme

import (
	"regexp"
)

const (
	ApiUrl = "https://seeme.hu/gateway"

	// ApiVersion is the gateway protocol revision sent with every request.
	ApiVersion = "2.0.1"

	FormatJson   = "json"
	FormatXml    = "xml"
	FormatString = "string"

	MethodCurl            = "curl"
	MethodFileGetContents = "file_get_contents"

	callbackAllCodes = "1,2,3,4,5,6,7,8,9,10"

	apiKeyChecksumLen = 4
)

// numeric codes reported by validation errors
const (
	CodeInvalidType   = 1
	CodeInvalidNumber = 2
	CodeInvalidIp     = 15
	CodeInvalidApiKey = 18
)

var (
	validFormats = []string{FormatJson, FormatXml, FormatString}
	validMethods = []string{MethodCurl, MethodFileGetContents}

	numberRegexp   = regexp.MustCompile(`^[0-9]+$`)
	numericRegexp  = regexp.MustCompile(`^\s*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?\s*$`)
	callbackRegexp = regexp.MustCompile(`^[0-9]{1,2}(,[0-9]{1,2})*$`)
	ipv4Regexp     = regexp.MustCompile(`^(([1-9]?[0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])\.){3}([1-9]?[0-9]|1[0-9]{2}|2[0-4][0-9]|25[0-5])$`)
)
