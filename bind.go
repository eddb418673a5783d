// bind.go: binds configuration file content to options structs
//
// Binding uses a hybrid strategy, mirroring the format support of the file
// watcher: YAML goes through gopkg.in/yaml.v3 for full spec support, JSON
// through encoding/json, and everything else (TOML, HCL, INI, Properties)
// through Argus parsing followed by a mapstructure decode.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"encoding/json"

	"github.com/agilira/argus"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// bindBytes unmarshals raw configuration content into out according to the
// detected format. Options structs should carry both json and yaml tags;
// the mapstructure leg reads the json tag.
func bindBytes(data []byte, format argus.ConfigFormat, out any) error {
	switch format {
	case argus.FormatYAML:
		return yaml.Unmarshal(data, out)

	case argus.FormatJSON:
		return json.Unmarshal(data, out)

	default:
		configMap, err := argus.ParseConfig(data, format)
		if err != nil {
			return err
		}
		return decodeMap(configMap, out)
	}
}

// decodeMap binds a parsed configuration map to out. Durations may be given
// as strings ("30s") and any encoding.TextUnmarshaler field accepts its
// text form.
func decodeMap(configMap map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return decoder.Decode(configMap)
}
