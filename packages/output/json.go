package output

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ColorizeJSON pretty-prints body and adds terminal color escapes.
// Bodies that are not valid JSON are returned unchanged.
func ColorizeJSON(body []byte) []byte {
	if !gjson.ValidBytes(body) {
		return body
	}
	return pretty.Color(pretty.Pretty(body), nil)
}
