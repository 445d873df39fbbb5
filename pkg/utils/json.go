package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa in com indentação, aceitando também JSON já em bytes
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("PrettyJson: erro ao serializar")
			return ""
		}
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		logrus.WithError(err).Warn("PrettyJson: JSON inválido")
		return string(buffer)
	}

	return out.String()
}
