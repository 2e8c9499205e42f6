// internal/publish/attributes.go
package publish

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

var validDataTypes = []string{DataTypeString, DataTypeNumber, DataTypeBinary, DataTypeStringArray}

// parseMessageAttributes decodes the raw JSON attribute map into SNS
// message attributes. The expected shape is
//
//	{"<Name>": {"DataType": "String", "StringValue": "..."}}
//
// with BinaryValue (base64) in place of StringValue for Binary attributes.
// Any failure aborts the whole parse.
func parseMessageAttributes(raw string) (map[string]types.MessageAttributeValue, error) {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var entries map[string]map[string]interface{}
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse attribute JSON: %w", err)
	}

	if len(entries) > MaxMessageAttributes {
		return nil, fmt.Errorf("too many message attributes: %d (maximum is %d)", len(entries), MaxMessageAttributes)
	}

	attributes := make(map[string]types.MessageAttributeValue, len(entries))
	for name, entry := range entries {
		dataType, ok := entry["DataType"].(string)
		if !ok {
			if _, present := entry["DataType"]; !present {
				return nil, fmt.Errorf("attribute %q is missing DataType; valid types are %s", name, strings.Join(validDataTypes, ", "))
			}
			return nil, fmt.Errorf("attribute %q has invalid DataType %v; valid types are %s", name, entry["DataType"], strings.Join(validDataTypes, ", "))
		}

		switch dataType {
		case DataTypeString, DataTypeNumber, DataTypeStringArray:
			value, err := coerceString(entry["StringValue"])
			if err != nil {
				return nil, fmt.Errorf("attribute %q with DataType %q requires a StringValue", name, dataType)
			}
			attributes[name] = types.MessageAttributeValue{
				DataType:    aws.String(dataType),
				StringValue: aws.String(value),
			}
		case DataTypeBinary:
			encoded, err := coerceString(entry["BinaryValue"])
			if err != nil {
				return nil, fmt.Errorf("attribute %q with DataType Binary requires a BinaryValue", name)
			}
			// Best-effort decode: malformed base64 is left for SNS to reject.
			decoded, _ := base64.StdEncoding.DecodeString(encoded)
			attributes[name] = types.MessageAttributeValue{
				DataType:    aws.String(dataType),
				BinaryValue: decoded,
			}
		default:
			return nil, fmt.Errorf("attribute %q has invalid DataType %q; valid types are %s", name, dataType, strings.Join(validDataTypes, ", "))
		}
	}

	return attributes, nil
}

// coerceString renders a JSON string or number as text. Number attributes
// are carried as their textual form on the wire, never as native numerics.
func coerceString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("value is %T, expected a string", value)
	}
}
