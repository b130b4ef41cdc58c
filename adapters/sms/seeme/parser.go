package seeme

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"

	"github.com/andrewboy/see-me/adapters/sms"
	"github.com/andrewboy/see-me/seemeErrs"
)

func parseResult(format string, raw []byte) (sms.ResultSt, error) {
	decoded, err := decodeResult(format, raw)
	if err != nil {
		return nil, err
	}

	return classifyResult(decoded, string(raw))
}

func decodeResult(format string, raw []byte) (map[string]any, error) {
	switch format {
	case FormatString:
		return decodeString(raw)
	case FormatJson:
		return decodeJson(raw)
	case FormatXml:
		return decodeXml(raw)
	}

	return nil, seemeErrs.NewParse(format, string(raw), seemeErrs.Err("unexpected return format"))
}

func decodeString(raw []byte) (map[string]any, error) {
	if !utf8.Valid(raw) {
		return nil, seemeErrs.NewParse(FormatString, string(raw), seemeErrs.NotText)
	}

	res := map[string]any{}

	for _, pair := range strings.Split(strings.TrimSpace(string(raw)), "&") {
		k, v, _ := strings.Cut(pair, "=")

		k = unescapeQuery(k)
		if k == "" {
			continue
		}

		res[k] = unescapeQuery(v)
	}

	return res, nil
}

// unescapeQuery keeps the part as is when it holds a malformed escape.
func unescapeQuery(v string) string {
	res, err := url.QueryUnescape(v)
	if err != nil {
		return v
	}
	return res
}

func decodeJson(raw []byte) (map[string]any, error) {
	var v any

	err := json.Unmarshal(raw, &v)
	if err != nil {
		return nil, seemeErrs.NewParse(FormatJson, string(raw), err)
	}

	res, ok := v.(map[string]any)
	if !ok {
		return nil, seemeErrs.NewMalformedResponse("Bad result format", string(raw))
	}

	return res, nil
}

type xmlNodeSt struct {
	XMLName xml.Name
	Attrs   []xml.Attr  `xml:",any,attr"`
	Content string      `xml:",chardata"`
	Nodes   []xmlNodeSt `xml:",any"`
}

func decodeXml(raw []byte) (map[string]any, error) {
	root := xmlNodeSt{}

	dec := xml.NewDecoder(bytes.NewReader(raw))

	err := dec.Decode(&root)
	if err != nil {
		return nil, seemeErrs.NewParse(FormatXml, string(raw), err)
	}

	// only whitespace, comments and processing instructions may follow the root
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, seemeErrs.NewParse(FormatXml, string(raw), err)
		}

		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, seemeErrs.NewParse(FormatXml, string(raw), seemeErrs.Err("content after root element"))
			}
		default:
			return nil, seemeErrs.NewParse(FormatXml, string(raw), seemeErrs.Err("content after root element"))
		}
	}

	return root.toMap(), nil
}

func isXmlns(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// toMap flattens attributes and child elements of the node into one mapping.
// Leaf children become their trimmed text, repeated children become lists.
func (n xmlNodeSt) toMap() map[string]any {
	res := make(map[string]any, len(n.Attrs)+len(n.Nodes))

	for _, a := range n.Attrs {
		if isXmlns(a) {
			continue
		}
		res[a.Name.Local] = a.Value
	}

	for _, child := range n.Nodes {
		name := child.XMLName.Local
		value := child.value()

		switch prev := res[name].(type) {
		case nil:
			res[name] = value
		case []any:
			res[name] = append(prev, value)
		default:
			res[name] = []any{prev, value}
		}
	}

	return res
}

func (n xmlNodeSt) value() any {
	if len(n.Nodes) == 0 && !n.hasAttrs() {
		return strings.TrimSpace(n.Content)
	}

	res := n.toMap()
	if text := strings.TrimSpace(n.Content); text != "" {
		res["#text"] = text
	}

	return res
}

func (n xmlNodeSt) hasAttrs() bool {
	for _, a := range n.Attrs {
		if !isXmlns(a) {
			return true
		}
	}
	return false
}

func classifyResult(decoded map[string]any, raw string) (sms.ResultSt, error) {
	result, ok := decoded["result"]
	if !ok {
		return nil, seemeErrs.NewMalformedResponse("Bad result format", raw)
	}

	switch strings.ToLower(cast.ToString(result)) {
	case sms.ResultOk:
		return sms.ResultSt(decoded), nil
	case sms.ResultErr:
		return nil, seemeErrs.NewGateway(cast.ToString(decoded["message"]), resultCode(decoded["code"]))
	}

	return nil, seemeErrs.NewMalformedResponse("unimplemented result code", raw)
}

func resultCode(v any) int {
	if s, ok := v.(string); ok {
		code, _ := strconv.Atoi(strings.TrimSpace(s))
		return code
	}

	return cast.ToInt(v)
}
