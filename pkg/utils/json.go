package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON formata um corpo JSON (ou qualquer valor serializável) com indentação.
// Quando a entrada não é JSON válido, devolve o texto original.
func PrettyJSON(in any) string {
	var buffer []byte

	switch v := in.(type) {
	case []byte:
		buffer = v
	case string:
		buffer = []byte(v)
	default:
		encoded, err := jsonAPI.Marshal(in)
		if err != nil {
			return ""
		}
		buffer = encoded
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "  "); err != nil {
		return string(buffer)
	}

	return out.String()
}
